package bimap

import (
	"errors"
	"fmt"
)

// Sentinels for the four failure kinds. Every error returned by this
// package also carries the offending key or value in a typed wrapper:
// match the kind with errors.Is against one of these, or pull the
// payload out with errors.As.
var (
	ErrNoSuchKey     = errors.New("bimap: no such key")
	ErrNoSuchValue   = errors.New("bimap: no such value")
	ErrKeyConflict   = errors.New("bimap: key conflict")
	ErrValueConflict = errors.New("bimap: value conflict")
)

// NoSuchKeyError is returned by RequireKey for an absent key.
type NoSuchKeyError[K comparable] struct {
	Key K
}

func (e *NoSuchKeyError[K]) Error() string {
	return fmt.Sprintf("bimap: no such key %v", e.Key)
}

func (e *NoSuchKeyError[K]) Unwrap() error { return ErrNoSuchKey }

// NoSuchValueError is returned by RequireValue for an absent value.
type NoSuchValueError[V comparable] struct {
	Value V
}

func (e *NoSuchValueError[V]) Error() string {
	return fmt.Sprintf("bimap: no such value %v", e.Value)
}

func (e *NoSuchValueError[V]) Unwrap() error { return ErrNoSuchValue }

// KeyConflictError is returned by strict insertion when the key is
// already present.
type KeyConflictError[K comparable] struct {
	Key K
}

func (e *KeyConflictError[K]) Error() string {
	return fmt.Sprintf("bimap: key %v already present", e.Key)
}

func (e *KeyConflictError[K]) Unwrap() error { return ErrKeyConflict }

// ValueConflictError is returned by strict insertion when the value is
// already present.
type ValueConflictError[V comparable] struct {
	Value V
}

func (e *ValueConflictError[V]) Error() string {
	return fmt.Sprintf("bimap: value %v already present", e.Value)
}

func (e *ValueConflictError[V]) Unwrap() error { return ErrValueConflict }
