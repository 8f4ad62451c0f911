package storage

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"taskpad/internal/models"
)

//go:embed schema.json
var tasksSchemaJSON string

var tasksSchema = mustCompileTasksSchema()

func mustCompileTasksSchema() *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true
	err := compiler.AddResource("tasks.schema.json", strings.NewReader(tasksSchemaJSON))
	if err != nil {
		panic(err)
	}
	return compiler.MustCompile("tasks.schema.json")
}

// Bridge mirrors the task collection into a Slot. Decode failures on load
// are swallowed: the corrupted slot is cleared and an empty collection is
// returned, with a diagnostic log as the only trace.
type Bridge struct {
	logger zerolog.Logger
	slot   Slot
}

func NewBridge(logger zerolog.Logger, slot Slot) *Bridge {
	return &Bridge{
		logger: logger,
		slot:   slot,
	}
}

// Load rehydrates the task collection from the slot.
func (b *Bridge) Load() []models.Task {
	data, err := b.slot.Read()
	if err != nil {
		if errors.Is(err, ErrSlotNotFound) {
			b.logger.Info().Msg("no persisted tasks, starting empty")
			return []models.Task{}
		}

		b.logger.Error().
			Err(err).
			Msg("failed to read slot")
		return []models.Task{}
	}

	tasks, err := decodeTasks(data)
	if err != nil {
		b.logger.Error().
			Err(err).
			Msg("discarding corrupted persisted tasks")

		err = b.slot.Clear()
		if err != nil {
			b.logger.Error().
				Err(err).
				Msg("failed to clear corrupted slot")
		}
		return []models.Task{}
	}

	b.logger.Info().
		Int("count", len(tasks)).
		Msg("loaded persisted tasks")
	return tasks
}

// Save overwrites the slot with the full collection.
func (b *Bridge) Save(tasks []models.Task) {
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		b.logger.Error().
			Err(err).
			Msg("failed to marshal tasks")
		return
	}

	err = b.slot.Write(data)
	if err != nil {
		b.logger.Error().
			Err(err).
			Msg("failed to write slot")
		return
	}

	b.logger.Debug().
		Int("count", len(tasks)).
		Msg("saved tasks")
}

// decodeTasks parses the persisted blob, rejecting anything that fails
// the embedded schema, not just invalid syntax.
func decodeTasks(data []byte) ([]models.Task, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse persisted tasks: %w", err)
	}

	if err := tasksSchema.Validate(raw); err != nil {
		return nil, fmt.Errorf("validate persisted tasks: %w", err)
	}

	var tasks []models.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse persisted tasks: %w", err)
	}
	return tasks, nil
}
