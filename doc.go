// Package omap implements a generic hash map that iterates in
// insertion order.
//
// The container couples two structures: a doubly linked list owning
// every key/value entry in the order it was first inserted, and a
// bucket table of handle chains providing average O(1) lookup through
// separate chaining. The table doubles in capacity whenever the load
// factor reaches 1, rebuilding only the chains; entries and the
// handles pointing at them survive every resize.
//
// Insertion is first-wins: a later Insert of an existing key is a
// silent no-op and the originally stored value is kept.
//
// A Map is not safe for concurrent use; callers that share one across
// goroutines must provide their own synchronization.
package omap
