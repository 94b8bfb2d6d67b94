package omap

// Entry is a single key/value pair owned by a Map. Entries are linked
// in insertion order; an *Entry obtained from Find, Oldest or Newest
// stays valid until that entry is deleted, surviving insertions and
// deletions of other keys as well as table growth.
//
// Key must not be modified while the entry belongs to a map: the slot
// the entry occupies is derived from the key's hash. Value may be
// rewritten freely.
type Entry[K comparable, V any] struct {
	Key   K
	Value V

	prev, next *Entry[K, V]
}

// Next returns the entry inserted after e, or nil at the end.
func (e *Entry[K, V]) Next() *Entry[K, V] { return e.next }

// Prev returns the entry inserted before e, or nil at the front.
func (e *Entry[K, V]) Prev() *Entry[K, V] { return e.prev }

// entryList is the element store: a doubly linked list holding every
// entry in insertion order. It is the sole owner of entries; bucket
// chains only reference them.
type entryList[K comparable, V any] struct {
	front, back *Entry[K, V]
}

func (l *entryList[K, V]) pushBack(e *Entry[K, V]) {
	e.prev = l.back
	e.next = nil
	if l.back != nil {
		l.back.next = e
	} else {
		l.front = e
	}
	l.back = e
}

// remove unlinks e in O(1). Only e's own links are cleared; every
// other entry keeps its position.
func (l *entryList[K, V]) remove(e *Entry[K, V]) {
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		l.front = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		l.back = e.prev
	}
	e.prev, e.next = nil, nil
}
