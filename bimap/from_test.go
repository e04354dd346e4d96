package bimap

import (
	"slices"
	"testing"

	"github.com/Leawind/go-bimap/seq"
	"github.com/stretchr/testify/require"
)

func TestConstructionEquivalence(t *testing.T) {
	type fields struct {
		One int
		Two int
	}

	fromSeq, err := From(seq.Zip([]string{"One", "Two"}, []int{1, 2}))
	require.NoError(t, err)
	fromMap, err := FromMap(map[string]int{"One": 1, "Two": 2})
	require.NoError(t, err)
	fromPairs, err := FromPairs([]Entry[string, int]{{"One", 1}, {"Two", 2}})
	require.NoError(t, err)
	fromFields, err := FromFields[int](fields{One: 1, Two: 2})
	require.NoError(t, err)
	copied, err := From(fromSeq.All())
	require.NoError(t, err)

	for _, m := range []*Map[string, int]{fromSeq, fromMap, fromPairs, fromFields, copied} {
		require.Equal(t, 2, m.Len())
		require.True(t, m.HasKey("One"))
		require.True(t, m.HasValue(2))
		require.False(t, m.HasKey("Three"))

		v, ok := m.GetValue("One")
		require.True(t, ok)
		require.Equal(t, 1, v)

		k, ok := m.GetKey(2)
		require.True(t, ok)
		require.Equal(t, "Two", k)

		requireMirror(t, m)
	}
}

func TestFromConflicts(t *testing.T) {
	_, err := FromPairs([]Entry[string, int]{{"a", 1}, {"a", 2}})
	require.ErrorIs(t, err, ErrKeyConflict)

	_, err = FromPairs([]Entry[string, int]{{"a", 1}, {"b", 1}})
	require.ErrorIs(t, err, ErrValueConflict)

	_, err = From(seq.Zip([]string{"a", "b"}, []int{1, 1}))
	require.ErrorIs(t, err, ErrValueConflict)

	// A Go map can't repeat keys, but it can repeat values.
	_, err = FromMap(map[string]int{"a": 1, "b": 1})
	require.ErrorIs(t, err, ErrValueConflict)
}

func TestFromPairsOrder(t *testing.T) {
	m, err := FromPairs([]Entry[string, int]{{"c", 3}, {"a", 1}, {"b", 2}})
	require.NoError(t, err)
	require.Equal(t, []string{"c", "a", "b"}, slices.Collect(m.Keys()))
}

func TestFromFields(t *testing.T) {
	type labels struct {
		One   int
		Two   int
		three int // unexported, skipped
	}

	m, err := FromFields[int](labels{One: 1, Two: 2, three: 3})
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())
	require.Equal(t, []string{"One", "Two"}, slices.Collect(m.Keys()))

	// A pointer to struct works too.
	m, err = FromFields[int](&labels{One: 1, Two: 2})
	require.NoError(t, err)
	require.Equal(t, 2, m.Len())
}

func TestFromFieldsErrors(t *testing.T) {
	_, err := FromFields[int](42)
	require.Error(t, err)

	_, err = FromFields[int]((*struct{ A int })(nil))
	require.Error(t, err)

	// Field type must match V.
	_, err = FromFields[int](struct {
		A int
		B string
	}{A: 1, B: "x"})
	require.Error(t, err)

	// Duplicate field values hit the strict value check.
	_, err = FromFields[int](struct {
		A int
		B int
	}{A: 1, B: 1})
	require.ErrorIs(t, err, ErrValueConflict)
}
