package formula

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIndexAssignsOneBasedOccurrences(t *testing.T) {
	f, err := Parse("a & (a | b)")
	require.NoError(t, err)

	indexed, names := Index(f)
	require.Equal(t, []string{"a", "b"}, names)

	var keys []Key
	var collect func(n *Node)
	collect = func(n *Node) {
		if n.Kind() == KindVar {
			keys = append(keys, n.Key())
			return
		}
		for _, c := range n.Children() {
			collect(c)
		}
	}
	collect(indexed)

	require.Equal(t, []Key{
		{Name: "a", Occurrence: 1},
		{Name: "a", Occurrence: 2},
		{Name: "b", Occurrence: 1},
	}, keys)
}

func TestIndexIsDeterministic(t *testing.T) {
	f, err := Parse("(XXX & T2(x & y, b | c, d, e)) | (b & c & d & e)")
	require.NoError(t, err)

	i1, n1 := Index(f)
	i2, n2 := Index(f)
	require.True(t, i1.Equal(i2))
	require.Equal(t, n1, n2)
}

func TestOccurrenceCountsMatchPartShape(t *testing.T) {
	f, err := Parse("(XXX & T2(x & y, b | c, d, e)) | (b & c & d & e)")
	require.NoError(t, err)
	indexed, _ := Index(f)
	counts := OccurrenceCounts(indexed)

	require.Equal(t, 1, counts["XXX"])
	require.Equal(t, 1, counts["x"])
	require.Equal(t, 1, counts["y"])
	require.Equal(t, 2, counts["b"])
	require.Equal(t, 2, counts["c"])
	require.Equal(t, 2, counts["d"])
	require.Equal(t, 2, counts["e"])
}

func TestNamesOrderIsFirstOccurrence(t *testing.T) {
	f, err := Parse("c & a & b & a")
	require.NoError(t, err)
	require.Equal(t, []string{"c", "a", "b"}, Names(f))
}
