// Package ports defines interfaces for host and infrastructure operations.
// These ports enable dependency inversion - hook logic depends on
// abstractions, and the host bridge and infrastructure adapters implement
// these interfaces.
package ports
