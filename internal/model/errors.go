package model

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput — значение вне допустимого диапазона (отрицательная ёмкость, current > max и т.п.).
	ErrInvalidInput = errors.New("invalid input")

	// ErrMissingReference — ссылка на gear/ship, которого нет в master data.
	ErrMissingReference = errors.New("missing master data reference")
)

// MissingReferenceError attributes a failed master data lookup.
// A missing gear is never treated as an empty slot.
type MissingReferenceError struct {
	Kind  string // "ship" or "gear"
	ID    int
	Fleet int // fleet index in the plan, -1 if unknown
	Ship  int // ship index in the fleet, -1 if unknown
	Slot  int // slot index, -1 for ship references
}

func (e *MissingReferenceError) Error() string {
	msg := fmt.Sprintf("missing %s %d", e.Kind, e.ID)
	if e.Fleet >= 0 {
		msg += fmt.Sprintf(" (fleet %d", e.Fleet)
		if e.Ship >= 0 {
			msg += fmt.Sprintf(", ship %d", e.Ship)
		}
		if e.Slot >= 0 {
			msg += fmt.Sprintf(", slot %d", e.Slot)
		}
		msg += ")"
	}
	return msg
}

// Unwrap allows errors.Is(err, ErrMissingReference).
func (e *MissingReferenceError) Unwrap() error {
	return ErrMissingReference
}
