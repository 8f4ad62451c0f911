// Package tasks holds the in-memory task collection and its mutations.
package tasks

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"taskpad/internal/models"
	"taskpad/internal/storage"
)

// Counts are derived by a full scan of the collection.
type Counts struct {
	Total     int
	Completed int
	Remaining int
}

// Store is the ordered in-memory task collection. Every successful
// mutation is mirrored synchronously through the persistence bridge.
// The mutex covers concurrent HTTP handlers; there is still exactly
// one collection and one writer at a time.
type Store struct {
	mu     sync.Mutex
	logger zerolog.Logger
	bridge *storage.Bridge
	list   []models.Task
}

// NewStore rehydrates the collection from the bridge.
func NewStore(logger zerolog.Logger, bridge *storage.Bridge) *Store {
	return &Store{
		logger: logger,
		bridge: bridge,
		list:   bridge.Load(),
	}
}

// Add appends a new incomplete task and returns it.
// Empty text is a no-op and returns nil.
func (s *Store) Add(text string) *models.Task {
	if text == "" {
		s.logger.Warn().Msg("ignored empty task text")
		return nil
	}

	task := models.Task{
		ID:        uuid.NewString(),
		Text:      text,
		Completed: false,
		CreatedAt: time.Now(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.list = append(s.list, task)
	s.bridge.Save(s.list)

	s.logger.Info().
		Str("task_id", task.ID).
		Msg("added task")
	return &task
}

// Toggle flips the completed flag of the task with the given id.
// It reports whether the task was found.
func (s *Store) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.list {
		if s.list[i].ID == id {
			s.list[i].Completed = !s.list[i].Completed
			s.bridge.Save(s.list)

			s.logger.Info().
				Str("task_id", id).
				Bool("completed", s.list[i].Completed).
				Msg("toggled task")
			return true
		}
	}

	s.logger.Warn().
		Str("task_id", id).
		Msg("toggle: task not found")
	return false
}

// Edit replaces the text of the task with the given id unconditionally;
// any validation of the new text is the caller's business.
// It reports whether the task was found.
func (s *Store) Edit(id, text string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.list {
		if s.list[i].ID == id {
			s.list[i].Text = text
			s.bridge.Save(s.list)

			s.logger.Info().
				Str("task_id", id).
				Msg("edited task")
			return true
		}
	}

	s.logger.Warn().
		Str("task_id", id).
		Msg("edit: task not found")
	return false
}

// Delete removes the task with the given id.
// It reports whether the task was found.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.list {
		if s.list[i].ID == id {
			s.list = append(s.list[:i], s.list[i+1:]...)
			s.bridge.Save(s.list)

			s.logger.Info().
				Str("task_id", id).
				Msg("deleted task")
			return true
		}
	}

	s.logger.Warn().
		Str("task_id", id).
		Msg("delete: task not found")
	return false
}

// All returns a snapshot copy of the collection in insertion order.
func (s *Store) All() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := make([]models.Task, len(s.list))
	copy(snapshot, s.list)
	return snapshot
}

// Counts derives the totals by a full scan.
func (s *Store) Counts() Counts {
	s.mu.Lock()
	defer s.mu.Unlock()

	counts := Counts{Total: len(s.list)}
	for i := range s.list {
		if s.list[i].Completed {
			counts.Completed++
		}
	}
	counts.Remaining = counts.Total - counts.Completed
	return counts
}
