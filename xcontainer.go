// Package xcontainer provides extra container types to supplement
// the standard library.
//
// The containers in this package are plain, single-threaded data
// structures. None of them are safe for concurrent use without
// external synchronization.
package xcontainer
