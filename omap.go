package omap

import (
	"fmt"
	"iter"
)

const (
	// initialTableLen is the bucket count a map starts with and the
	// count Clear resets to. Growth always doubles, so capacities stay
	// powers of two.
	initialTableLen = 1
	growthFactor    = 2
)

// Map is a hash map with separate chaining that iterates in insertion
// order.
//
// Entries live in a doubly linked list (the element store) in the
// order they were first inserted. The bucket table holds, per slot,
// a chain of handles into that list; a key's slot is
// hasher(key) % capacity. When the load factor reaches exactly 1 the
// table is rebuilt at double capacity by rehashing every handle. The
// list is untouched by a rebuild, so *Entry handles and iteration
// order survive every resize.
//
// Insert is first-wins: inserting an existing key keeps the stored
// value. Capacity never shrinks except through Clear, which resets it
// to the initial capacity.
//
// The zero Map is empty and ready to use.
//
// A Map is not safe for concurrent use. A single insert may rebuild
// the whole table, so an individual Insert can cost O(n) in the
// amortized-rare case.
type Map[K comparable, V any] struct {
	table  [][]*Entry[K, V] // slot -> chain of handles into list
	list   entryList[K, V]
	size   int
	hasher Hasher[K]
}

// New builds an empty map. Accepts WithHasher and WithInitialData.
func New[K comparable, V any](opts ...Option[K, V]) *Map[K, V] {
	var c config[K, V]
	for _, opt := range opts {
		opt(&c)
	}
	m := &Map[K, V]{hasher: c.hasher}
	m.lazyInit()
	for i := range c.pairs {
		m.Insert(c.pairs[i].Key, c.pairs[i].Value)
	}
	return m
}

// From builds a map from a key/value sequence, inserting in sequence
// order. The first occurrence of a key wins.
func From[K comparable, V any](seq iter.Seq2[K, V], opts ...Option[K, V]) *Map[K, V] {
	m := New[K, V](opts...)
	for k, v := range seq {
		m.Insert(k, v)
	}
	return m
}

func (m *Map[K, V]) lazyInit() {
	if m.hasher == nil {
		m.hasher = DefaultHasher[K]()
	}
	if m.table == nil {
		m.table = make([][]*Entry[K, V], initialTableLen)
	}
}

// Size returns the number of entries.
func (m *Map[K, V]) Size() int {
	if m == nil {
		return 0
	}
	return m.size
}

// IsZero reports whether the map holds no entries.
func (m *Map[K, V]) IsZero() bool {
	return m.Size() == 0
}

// HashFunc returns the hash function the map selects slots with.
func (m *Map[K, V]) HashFunc() Hasher[K] {
	m.lazyInit()
	return m.hasher
}

func (m *Map[K, V]) slot(key K) uint64 {
	return m.hasher(key) % uint64(len(m.table))
}

// lookup scans the chain of key's slot. The table must be initialized.
func (m *Map[K, V]) lookup(key K) *Entry[K, V] {
	for _, e := range m.table[m.slot(key)] {
		if e.Key == key {
			return e
		}
	}
	return nil
}

// Load returns the value stored for key.
func (m *Map[K, V]) Load(key K) (V, bool) {
	if e := m.Find(key); e != nil {
		return e.Value, true
	}
	var zero V
	return zero, false
}

// Find returns the entry for key, or nil when the key is absent. The
// entry can be used to read or rewrite the value in place and to walk
// neighbouring entries in insertion order.
func (m *Map[K, V]) Find(key K) *Entry[K, V] {
	if m == nil || m.size == 0 {
		return nil
	}
	return m.lookup(key)
}

// At returns the value stored for key. When the key is absent it
// fails with a *KeyNotFoundError and the map is left unchanged.
func (m *Map[K, V]) At(key K) (V, error) {
	if e := m.Find(key); e != nil {
		return e.Value, nil
	}
	var zero V
	return zero, &KeyNotFoundError[K]{Key: key}
}

// Insert adds key with value and reports whether an entry was
// created. If the key is already present the call is a no-op and the
// stored value is kept: the first successful insert of a key wins.
func (m *Map[K, V]) Insert(key K, value V) bool {
	m.lazyInit()
	if m.lookup(key) != nil {
		return false
	}
	m.insertEntry(key, value)
	return true
}

// insertEntry registers a new entry in both structures. The caller
// has already ruled out a duplicate, so no chain is scanned twice.
func (m *Map[K, V]) insertEntry(key K, value V) *Entry[K, V] {
	e := &Entry[K, V]{Key: key, Value: value}
	m.list.pushBack(e)
	i := m.slot(key)
	m.table[i] = append(m.table[i], e)
	m.size++
	m.grow()
	return e
}

// grow doubles the table when the load factor reaches exactly 1.
// Only the bucket table is rebuilt; entries and the handles to them
// are untouched, so a resize is invisible to iteration.
func (m *Map[K, V]) grow() {
	if m.size != len(m.table) {
		return
	}
	m.table = rebuild(m.list.front, len(m.table)*growthFactor, m.hasher)
}

// rebuild rehashes every live entry into a fresh table of the given
// capacity. It is pure: the new table becomes visible in a single
// assignment, never half-built.
func rebuild[K comparable, V any](front *Entry[K, V], capacity int, hasher Hasher[K]) [][]*Entry[K, V] {
	table := make([][]*Entry[K, V], capacity)
	for e := front; e != nil; e = e.next {
		i := hasher(e.Key) % uint64(capacity)
		table[i] = append(table[i], e)
	}
	return table
}

// Ref returns a pointer to the value stored for key, inserting the
// zero value first when the key is absent. The insertion is a
// documented side effect: Ref of a missing key grows the map by one.
// The pointer stays valid until the entry is deleted.
func (m *Map[K, V]) Ref(key K) *V {
	m.lazyInit()
	e := m.lookup(key)
	if e == nil {
		var zero V
		e = m.insertEntry(key, zero)
	}
	return &e.Value
}

// Delete removes key's entry from the table chain and the element
// store and reports whether one existed. Deleting an absent key is a
// no-op.
func (m *Map[K, V]) Delete(key K) bool {
	if m.size == 0 {
		return false
	}
	i := m.slot(key)
	chain := m.table[i]
	for j, e := range chain {
		if e.Key == key {
			m.table[i] = append(chain[:j], chain[j+1:]...)
			m.list.remove(e)
			m.size--
			return true
		}
	}
	return false
}

// Clear removes every entry and shrinks the table back to its initial
// capacity, the one place capacity ever goes down. Clearing an empty
// map is a no-op.
func (m *Map[K, V]) Clear() {
	m.table = make([][]*Entry[K, V], initialTableLen)
	m.list = entryList[K, V]{}
	m.size = 0
}

// Assign replaces the contents with a copy of other's entries,
// preserving other's insertion order, and adopts other's hash
// function. Assigning a map to itself is a no-op.
func (m *Map[K, V]) Assign(other *Map[K, V]) {
	if m == other {
		return
	}
	m.Clear()
	m.hasher = other.HashFunc()
	for e := other.Oldest(); e != nil; e = e.Next() {
		m.Insert(e.Key, e.Value)
	}
}

// Clone returns a new map holding a copy of every entry in insertion
// order, using the same hash function.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{}
	c.Assign(m)
	return c
}

// Oldest returns the first-inserted entry, or nil when the map is
// empty.
func (m *Map[K, V]) Oldest() *Entry[K, V] {
	if m == nil {
		return nil
	}
	return m.list.front
}

// Newest returns the most recently inserted entry, or nil when the
// map is empty.
func (m *Map[K, V]) Newest() *Entry[K, V] {
	if m == nil {
		return nil
	}
	return m.list.back
}

// Range calls f for each entry in insertion order until f returns
// false. The walk tolerates deleting the entry just visited.
func (m *Map[K, V]) Range(f func(K, V) bool) {
	for e := m.Oldest(); e != nil; {
		next := e.next
		if !f(e.Key, e.Value) {
			return
		}
		e = next
	}
}

// All returns an insertion-order iterator over key/value pairs.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := m.Oldest(); e != nil; {
			next := e.next
			if !yield(e.Key, e.Value) {
				return
			}
			e = next
		}
	}
}

// Backward returns an iterator from the newest entry to the oldest.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := m.Newest(); e != nil; {
			prev := e.prev
			if !yield(e.Key, e.Value) {
				return
			}
			e = prev
		}
	}
}

// Keys returns an insertion-order iterator over keys.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an insertion-order iterator over values.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// KeyNotFoundError is returned by At for keys the map does not hold.
type KeyNotFoundError[K comparable] struct {
	Key K
}

func (e *KeyNotFoundError[K]) Error() string {
	return fmt.Sprintf("omap: key not found: %v", e.Key)
}
