package catalog

import (
	"fmt"

	"github.com/kilianp07/examdist/core/model"
)

// Catalog is an immutable, ordered list of resource units.
type Catalog struct {
	units   []model.ResourceUnit
	centers []string
	total   int
}

// Build flattens centers into units. It fails on the first lab whose
// capacity is below one. An empty input yields an empty catalog; use
// Validate to reject it once the item count is known.
func Build(centers []model.Center) (*Catalog, error) {
	c := &Catalog{}
	for _, ctr := range centers {
		c.centers = append(c.centers, ctr.Name)
		for _, lab := range ctr.Labs {
			if lab.Capacity < 1 {
				return nil, &CapacityError{Center: ctr.Name, Lab: lab.Name, Capacity: lab.Capacity}
			}
			c.units = append(c.units, model.ResourceUnit{
				Center:   ctr.Name,
				Link:     ctr.Link,
				Name:     lab.Name,
				Capacity: lab.Capacity,
			})
			c.total += lab.Capacity
		}
	}
	return c, nil
}

// TotalRoundCapacity returns the number of seats available in one round
// across every unit.
func (c *Catalog) TotalRoundCapacity() int {
	if c == nil {
		return 0
	}
	return c.total
}

// Units returns a copy of the units in fill order.
func (c *Catalog) Units() []model.ResourceUnit {
	if c == nil {
		return nil
	}
	out := make([]model.ResourceUnit, len(c.units))
	copy(out, c.units)
	return out
}

// Len returns the number of units.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.units)
}

// Centers returns the center names in input order.
func (c *Catalog) Centers() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.centers))
	copy(out, c.centers)
	return out
}

// Validate reports ErrEmptyCatalog when totalItems must be placed on a
// catalog without units.
func (c *Catalog) Validate(totalItems int) error {
	if totalItems > 0 && c.Len() == 0 {
		return fmt.Errorf("%w: %d items to place", ErrEmptyCatalog, totalItems)
	}
	return nil
}
