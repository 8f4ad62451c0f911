// Package storage persists the task collection to a durable key-value slot.
package storage

import "errors"

// ErrSlotNotFound is returned by Slot.Read when the slot was never written.
var ErrSlotNotFound = errors.New("slot not found")

// Slot is a single durable cell holding the serialized task collection.
type Slot interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Clear() error
}
