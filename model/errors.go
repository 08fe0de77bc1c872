package model

import "errors"

// Sentinel errors for model operations. Callers match with errors.Is.
var (
	// ErrInvalidPageType is returned when a tag name is not part of the
	// PAGE element vocabulary.
	ErrInvalidPageType = errors.New("pagexml: invalid page type")

	// ErrDuplicateID is returned when inserting a region whose id is
	// already present in the reading order.
	ErrDuplicateID = errors.New("pagexml: id already in reading order")

	// ErrCycle is returned when an insertion would make an element a
	// descendant of itself.
	ErrCycle = errors.New("pagexml: element cannot contain itself or an ancestor")
)
