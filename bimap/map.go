// Package bimap provides a bidirectional associative container: a
// one-to-one mapping where both the keys and the values are unique, with
// constant-time lookup in either direction.
package bimap

import (
	"fmt"
	"iter"
	"strings"
)

// Entry is a single key/value pair held by a Map.
type Entry[K comparable, V comparable] struct {
	Key   K
	Value V
}

// entry is the internal pair record, linked in insertion order.
type entry[K comparable, V comparable] struct {
	key        K
	value      V
	prev, next *entry[K, V]
}

// Map is a bidirectional map of unique keys to unique values.
// Its zero value is an empty map ready for use.
// It keeps a forward and an inverse table over the same pair records, so
// lookups in either direction are O(1); iteration follows insertion order
// of the pairs still present.
//
// A Map is not safe for concurrent use; callers sharing one across
// goroutines must synchronize externally.
type Map[K comparable, V comparable] struct {
	fwd  map[K]*entry[K, V]
	inv  map[V]*entry[K, V]
	head *entry[K, V]
	tail *entry[K, V]
}

func (m *Map[K, V]) init() {
	if m.fwd == nil {
		m.fwd = map[K]*entry[K, V]{}
		m.inv = map[V]*entry[K, V]{}
	}
}

// push appends a fresh pair; neither side may be present yet.
func (m *Map[K, V]) push(k K, v V) {
	e := &entry[K, V]{key: k, value: v, prev: m.tail}
	if m.tail != nil {
		m.tail.next = e
	} else {
		m.head = e
	}
	m.tail = e
	m.fwd[k] = e
	m.inv[v] = e
}

// unlink removes e from both tables and the order list.
func (m *Map[K, V]) unlink(e *entry[K, V]) {
	delete(m.fwd, e.key)
	delete(m.inv, e.value)
	if e.prev != nil {
		e.prev.next = e.next
	} else {
		m.head = e.next
	}
	if e.next != nil {
		e.next.prev = e.prev
	} else {
		m.tail = e.prev
	}
}

// Len returns the number of pairs held.
func (m *Map[K, V]) Len() (length int) {
	return len(m.fwd)
}

// HasKey reports whether k is present as a key.
func (m *Map[K, V]) HasKey(k K) (ok bool) {
	_, ok = m.fwd[k]
	return
}

// HasValue reports whether v is present as a value.
func (m *Map[K, V]) HasValue(v V) (ok bool) {
	_, ok = m.inv[v]
	return
}

// GetValue returns the value paired with k.
func (m *Map[K, V]) GetValue(k K) (v V, has bool) {
	e, has := m.fwd[k]
	if has {
		v = e.value
	}
	return
}

// GetKey returns the key paired with v.
func (m *Map[K, V]) GetKey(v V) (k K, has bool) {
	e, has := m.inv[v]
	if has {
		k = e.key
	}
	return
}

// RequireKey returns a NoSuchKeyError unless k is present.
func (m *Map[K, V]) RequireKey(k K) error {
	if _, ok := m.fwd[k]; !ok {
		return &NoSuchKeyError[K]{Key: k}
	}
	return nil
}

// RequireValue returns a NoSuchValueError unless v is present.
func (m *Map[K, V]) RequireValue(v V) error {
	if _, ok := m.inv[v]; !ok {
		return &NoSuchValueError[V]{Value: v}
	}
	return nil
}

// Set inserts the pair (k, v), first evicting any pair already keyed k
// and any pair already valued v: zero, one or two existing pairs make
// way. It never fails. The fresh pair lands at the end of iteration
// order.
func (m *Map[K, V]) Set(k K, v V) {
	m.init()

	if e, ok := m.fwd[k]; ok {
		m.unlink(e)
	}
	if e, ok := m.inv[v]; ok {
		m.unlink(e)
	}
	m.push(k, v)
}

// Add inserts the pair (k, v) only when neither side is taken: it fails
// with a KeyConflictError if k is already a key, or failing that with a
// ValueConflictError if v is already a value. On failure the Map is left
// unchanged.
func (m *Map[K, V]) Add(k K, v V) error {
	m.init()

	if _, ok := m.fwd[k]; ok {
		return &KeyConflictError[K]{Key: k}
	}
	if _, ok := m.inv[v]; ok {
		return &ValueConflictError[V]{Value: v}
	}

	m.push(k, v)
	return nil
}

// DeleteKey removes the pair keyed k, reporting whether one was present.
func (m *Map[K, V]) DeleteKey(k K) (change bool) {
	e, change := m.fwd[k]
	if change {
		m.unlink(e)
	}
	return
}

// DeleteValue removes the pair valued v, reporting whether one was
// present.
func (m *Map[K, V]) DeleteValue(v V) (change bool) {
	e, change := m.inv[v]
	if change {
		m.unlink(e)
	}
	return
}

// DeleteKeys deletes once per key of ks, in order, returning how many
// pairs were actually removed. Missing or repeated keys don't count.
func (m *Map[K, V]) DeleteKeys(ks iter.Seq[K]) (removed int) {
	for k := range ks {
		if m.DeleteKey(k) {
			removed++
		}
	}
	return
}

// DeleteValues deletes once per value of vs, in order, returning how
// many pairs were actually removed.
func (m *Map[K, V]) DeleteValues(vs iter.Seq[V]) (removed int) {
	for v := range vs {
		if m.DeleteValue(v) {
			removed++
		}
	}
	return
}

// SetAll applies Set once per pair of src, in src's order.
func (m *Map[K, V]) SetAll(src iter.Seq2[K, V]) {
	for k, v := range src {
		m.Set(k, v)
	}
}

// AddAll applies Add once per pair of src, in src's order, stopping at
// the first conflict and returning its error. Pairs applied before the
// failing one stay applied.
func (m *Map[K, V]) AddAll(src iter.Seq2[K, V]) error {
	for k, v := range src {
		if err := m.Add(k, v); err != nil {
			return err
		}
	}
	return nil
}

// Clear removes every pair, returning the Map to its empty state.
func (m *Map[K, V]) Clear() {
	m.fwd = nil
	m.inv = nil
	m.head = nil
	m.tail = nil
}

// All returns a lazy sequence over every pair, in insertion order.
// The sequence is restartable: each range walks the pairs present at
// that moment.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for e := m.head; e != nil; e = e.next {
			if !yield(e.key, e.value) {
				return
			}
		}
	}
}

// Keys returns a lazy sequence over every key, in insertion order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for e := m.head; e != nil; e = e.next {
			if !yield(e.key) {
				return
			}
		}
	}
}

// Values returns a lazy sequence over every value, in insertion order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for e := m.head; e != nil; e = e.next {
			if !yield(e.value) {
				return
			}
		}
	}
}

// ForEach calls fn once per pair, in insertion order.
func (m *Map[K, V]) ForEach(fn func(k K, v V)) {
	for e := m.head; e != nil; e = e.next {
		fn(e.key, e.value)
	}
}

// Clone returns an independent copy holding the same pairs in the same
// order. Mutating either Map afterwards never affects the other.
func (m *Map[K, V]) Clone() (out *Map[K, V]) {
	out = New[K, V]()
	for e := m.head; e != nil; e = e.next {
		out.push(e.key, e.value)
	}
	return
}

// Invert returns an independent copy with keys and values swapped,
// keeping insertion order.
func (m *Map[K, V]) Invert() (out *Map[V, K]) {
	out = New[V, K]()
	for e := m.head; e != nil; e = e.next {
		out.push(e.value, e.key)
	}
	return
}

// String renders the pairs in insertion order.
func (m *Map[K, V]) String() string {
	var sb strings.Builder
	sb.WriteString("bimap[")
	for e := m.head; e != nil; e = e.next {
		if e != m.head {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v:%v", e.key, e.value)
	}
	sb.WriteByte(']')
	return sb.String()
}
