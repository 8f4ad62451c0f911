// Package ui is the terminal front-end over the task store.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"taskpad/internal/models"
	"taskpad/internal/tasks"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	completedStyle = lipgloss.NewStyle().Strikethrough(true).Faint(true)
	cursorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	statusStyle    = lipgloss.NewStyle().Faint(true)
	helpStyle      = lipgloss.NewStyle().Faint(true)
)

type Model struct {
	store  *tasks.Store
	list   []models.Task
	cursor int
	mode   mode
	input  textinput.Model
	editID string
	status string
}

func NewModel(store *tasks.Store) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 0
	ti.Width = 48

	return Model{
		store:  store,
		list:   store.All(),
		input:  ti,
		status: "Press 'a' to add, space to toggle, 'e' to edit, 'd' to delete.",
	}
}

func Run(store *tasks.Store) error {
	program := tea.NewProgram(NewModel(store))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateAddMode(msg)
		case modeEdit:
			return m.updateEditMode(msg)
		default:
			return m.updateListMode(msg.String())
		}
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case "enter":
		task := m.store.Add(m.input.Value())
		if task == nil {
			m.status = "Nothing to add"
			return m, nil
		}
		m.list = m.store.All()
		m.cursor = clampCursor(len(m.list)-1, len(m.list))
		m.status = "Added task"
		m.mode = modeList
		m.input.SetValue("")
		m.input.Blur()
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.editID = ""
		m.input.SetValue("")
		m.input.Blur()
		m.status = "Edit cancelled"
		return m, nil
	case "enter":
		if !m.store.Edit(m.editID, m.input.Value()) {
			m.status = "Task is gone"
		} else {
			m.status = "Saved"
		}
		m.list = m.store.All()
		m.cursor = clampCursor(m.cursor, len(m.list))
		m.mode = modeList
		m.editID = ""
		m.input.SetValue("")
		m.input.Blur()
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "down", "j":
		if len(m.list) > 0 {
			m.cursor = clampCursor(m.cursor+1, len(m.list))
		}
	case "up", "k":
		if m.cursor > 0 {
			m.cursor = clampCursor(m.cursor-1, len(m.list))
		}
	case "a":
		m.mode = modeAdd
		m.input.Placeholder = "What needs doing?"
		m.input.Focus()
		m.status = "Add mode: type the task and press Enter, Esc to cancel"
	case " ":
		if len(m.list) == 0 {
			return m, nil
		}
		m.store.Toggle(m.list[m.cursor].ID)
		m.list = m.store.All()
		m.status = "Toggled task"
	case "e":
		if len(m.list) == 0 {
			m.status = "No tasks to edit"
			return m, nil
		}
		task := m.list[m.cursor]
		m.mode = modeEdit
		m.editID = task.ID
		m.input.Placeholder = "New text"
		m.input.SetValue(task.Text)
		m.input.Focus()
		m.status = "Edit mode: Enter saves, Esc cancels"
	case "d":
		if len(m.list) == 0 {
			return m, nil
		}
		m.store.Delete(m.list[m.cursor].ID)
		m.list = m.store.All()
		m.cursor = clampCursor(m.cursor, len(m.list))
		m.status = "Deleted task"
	}
	return m, nil
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("taskpad"))
	b.WriteString("\n\n")

	if len(m.list) == 0 {
		b.WriteString("No tasks yet. Press 'a' to add one.")
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderTaskList())
	}

	if m.mode != modeList {
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}

	counts := m.store.Counts()
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf("%d total, %d completed, %d remaining",
		counts.Total, counts.Completed, counts.Remaining)))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("j/k move • a add • space toggle • e edit • d delete • q quit"))

	return b.String()
}

func (m Model) renderTaskList() string {
	var b strings.Builder
	for i, t := range m.list {
		cursor := " "
		if m.cursor == i && m.mode == modeList {
			cursor = cursorStyle.Render(">")
		}

		checkbox := "[ ]"
		text := t.Text
		if t.Completed {
			checkbox = "[x]"
			text = completedStyle.Render(text)
		}

		b.WriteString(fmt.Sprintf("%s %s %s\n", cursor, checkbox, text))
	}
	return b.String()
}

func clampCursor(i, n int) int {
	if n == 0 {
		return 0
	}
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
