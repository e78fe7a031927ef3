package allocation

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned for a malformed schedule configuration.
	ErrInvalidConfig = errors.New("invalid schedule config")
	// ErrZeroCapacity is returned when items must be placed but no seat exists per day.
	ErrZeroCapacity = errors.New("zero daily capacity")
	// ErrRecordCountMismatch is returned when export records do not match the plan.
	ErrRecordCountMismatch = errors.New("record count mismatch")
	// ErrCapacityOverflow signals that the fill walk ran out of slots.
	ErrCapacityOverflow = errors.New("capacity overflow")
)

// CountMismatchError carries both sides of a record count mismatch.
type CountMismatchError struct {
	Expected int
	Got      int
}

func (e *CountMismatchError) Error() string {
	return fmt.Sprintf("%s: plan has %d items, got %d records", ErrRecordCountMismatch, e.Expected, e.Got)
}

func (e *CountMismatchError) Unwrap() error { return ErrRecordCountMismatch }
