// Package ids hands out process-unique identifiers.
//
// The first call to Next returns 1. There is no teardown; the counter lives
// for the whole process and is safe for concurrent use.
package ids

import "sync/atomic"

// ID is a process-unique, non-zero identifier.
type ID uint64

// Allocator is a monotonically increasing counter. The zero value is ready
// to use.
type Allocator struct {
	last atomic.Uint64
}

// Next returns the next identifier.
func (a *Allocator) Next() ID {
	return ID(a.last.Add(1))
}

var global Allocator

// Next returns an identifier from the process-wide allocator.
func Next() ID {
	return global.Next()
}
