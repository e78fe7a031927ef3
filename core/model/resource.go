package model

import "fmt"

// Lab is a room inside a center with a fixed number of seats per round.
type Lab struct {
	Name     string
	Capacity int
}

// Center groups labs sharing a location. Link is passed through untouched,
// typically a maps URL shown to examinees.
type Center struct {
	Name string
	Link string
	Labs []Lab
}

// ResourceUnit is a single lab flattened out of its center. The order of
// units in a catalog defines the fill priority.
type ResourceUnit struct {
	Center   string
	Link     string
	Name     string
	Capacity int // seats per round
}

// String returns "center/lab".
func (u ResourceUnit) String() string {
	return fmt.Sprintf("%s/%s", u.Center, u.Name)
}
