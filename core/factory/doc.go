// Package factory provides a small generic registry used to build pluggable
// modules, such as exporters and metrics recorders, from configuration.
package factory
