package leveltree

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is matched by [EmptyInputError] through [errors.Is].
var ErrEmptyInput = errors.New("cannot build a tree over zero items")

// EmptyInputError is returned from [Build] and [FromLevels]
// when there is nothing to root a tree over.
type EmptyInputError struct{}

func (EmptyInputError) Error() string {
	return ErrEmptyInput.Error()
}

func (EmptyInputError) Is(target error) bool {
	return target == ErrEmptyInput
}

// ShapeError is returned from [FromLevels]
// when a level does not have the width implied by the level below it.
type ShapeError struct {
	// Index of the offending level.
	Level int

	Want, Got int
}

func (e ShapeError) Error() string {
	return fmt.Sprintf(
		"level %d has width %d; expected %d", e.Level, e.Got, e.Want,
	)
}

// NodeMismatchError is returned from [*Tree.Verify]
// for the first node whose value does not match
// the combination of its children.
type NodeMismatchError struct {
	Level, Index int
}

func (e NodeMismatchError) Error() string {
	return fmt.Sprintf("node %d at level %d does not match its children", e.Index, e.Level)
}
