// Package catalog flattens exam centers and their labs into the ordered list
// of resource units consumed by the allocation engine. Units keep the input
// order, centers first then labs within each center.
package catalog
