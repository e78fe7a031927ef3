package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCapacity is returned when a lab has a non-positive capacity.
	ErrInvalidCapacity = errors.New("invalid capacity")
	// ErrEmptyCatalog is returned when items must be placed but no lab exists.
	ErrEmptyCatalog = errors.New("empty catalog")
)

// CapacityError identifies the lab rejected by Build.
type CapacityError struct {
	Center   string
	Lab      string
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: center %q lab %q has capacity %d", ErrInvalidCapacity, e.Center, e.Lab, e.Capacity)
}

func (e *CapacityError) Unwrap() error { return ErrInvalidCapacity }
