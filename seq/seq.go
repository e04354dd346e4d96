// Package seq holds small adapters for building and consuming lazy
// sequences.
package seq

import (
	"iter"
)

// Of returns an iter.Seq yielding the given items in order.
func Of[X any](items ...X) iter.Seq[X] {
	return func(yield func(X) bool) {
		for _, x := range items {
			if !yield(x) {
				return
			}
		}
	}
}

// Empty returns an iter.Seq with no values in it.
func Empty[X any]() iter.Seq[X] {
	return func(yield func(X) bool) {}
}

// Empty2 returns an iter.Seq2 with no values in it.
func Empty2[X any, Y any]() iter.Seq2[X, Y] {
	return func(yield func(X, Y) bool) {}
}

// Zip pairs up two slices into an iter.Seq2.
// It stops at the end of the shorter slice.
func Zip[X any, Y any](xs []X, ys []Y) iter.Seq2[X, Y] {
	return func(yield func(X, Y) bool) {
		for i, x := range xs {
			if i == len(ys) {
				return
			}
			if !yield(x, ys[i]) {
				return
			}
		}
	}
}

// Keys yields just the first half of every pair in src.
func Keys[X any, Y any](src iter.Seq2[X, Y]) iter.Seq[X] {
	return func(yield func(X) bool) {
		for x := range src {
			if !yield(x) {
				return
			}
		}
	}
}

// Values yields just the second half of every pair in src.
func Values[X any, Y any](src iter.Seq2[X, Y]) iter.Seq[Y] {
	return func(yield func(Y) bool) {
		for _, y := range src {
			if !yield(y) {
				return
			}
		}
	}
}

// Count drains src and returns the number of values it yielded.
func Count[X any](src iter.Seq[X]) (n int) {
	for range src {
		n++
	}
	return
}

// Count2 drains src and returns the number of pairs it yielded.
func Count2[X any, Y any](src iter.Seq2[X, Y]) (n int) {
	for range src {
		n++
	}
	return
}
