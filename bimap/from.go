package bimap

import (
	"fmt"
	"iter"
	"maps"
	"reflect"
)

// New builds an empty Map.
// The zero value of Map is also directly usable.
func New[K comparable, V comparable]() *Map[K, V] {
	m := &Map[K, V]{}
	m.init()
	return m
}

// From builds a Map from an ordered pair sequence, inserting strictly:
// the first key or value conflict aborts with that pair's error.
// Use From(other.All()) to copy pairs out of another Map.
func From[K comparable, V comparable](src iter.Seq2[K, V]) (*Map[K, V], error) {
	m := New[K, V]()
	if err := m.AddAll(src); err != nil {
		return nil, err
	}
	return m, nil
}

// FromMap builds a Map from an existing Go map. Iteration order is the
// map's own, so when input holds the same value under two keys, which
// pair reports the ValueConflictError is unspecified.
func FromMap[K comparable, V comparable](input map[K]V) (*Map[K, V], error) {
	return From(maps.All(input))
}

// FromPairs builds a Map from a pair list, strictly, in list order.
func FromPairs[K comparable, V comparable](pairs []Entry[K, V]) (*Map[K, V], error) {
	m := New[K, V]()
	for _, p := range pairs {
		if err := m.Add(p.Key, p.Value); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// FromFields builds a string-keyed Map from the exported fields of a
// struct (or pointer to struct), in declaration order: each field name
// becomes a key paired with that field's value. Fields must be
// assignable to V; unexported and embedded fields are skipped.
func FromFields[V comparable](src any) (*Map[string, V], error) {
	rv := reflect.ValueOf(src)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, fmt.Errorf("bimap: cannot read fields of nil %s", rv.Type())
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("bimap: cannot read fields of %T", src)
	}

	m := New[string, V]()
	rt := rv.Type()
	for i := range rt.NumField() {
		f := rt.Field(i)
		if !f.IsExported() || f.Anonymous {
			continue
		}
		fv, ok := rv.Field(i).Interface().(V)
		if !ok {
			return nil, fmt.Errorf("bimap: field %s is %s, not %s", f.Name, f.Type, reflect.TypeFor[V]())
		}
		if err := m.Add(f.Name, fv); err != nil {
			return nil, err
		}
	}
	return m, nil
}
