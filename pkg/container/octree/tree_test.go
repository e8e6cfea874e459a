package octree

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestNewEmpty(t *testing.T) {
	t.Parallel()
	tree := New[testPoint](nil)

	require.Equal(t, 0, tree.Len())
	require.Equal(t, EmptyBox(), tree.Bounds())
	require.False(t, tree.Insert(pt(0, 0, 0)), "the sentinel box covers nothing")
	require.Empty(t, tree.Query(Box{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}}))
}

// The half-open root box excludes the point set's maximum corner, so that
// point is rejected during construction.
func TestNewRejectsMaxCorner(t *testing.T) {
	t.Parallel()
	tree := New([]testPoint{pt(0, 0, 0), pt(10, 10, 10)})

	require.Equal(t, 1, tree.Len())
	require.True(t, tree.Contains(pt(0, 0, 0)))
	require.False(t, tree.Contains(pt(10, 10, 10)))
	require.Equal(t, Box{Max: mgl32.Vec3{10, 10, 10}}, tree.Bounds())
}

func TestInsert(t *testing.T) {
	t.Parallel()
	tree := New([]testPoint{pt(0, 0, 0), pt(10, 10, 10)})

	require.True(t, tree.Insert(pt(5, 5, 5)))
	require.True(t, tree.Equal(New([]testPoint{pt(0, 0, 0), pt(10, 10, 10), pt(5, 5, 5)})))
}

func TestInsertOutOfRange(t *testing.T) {
	t.Parallel()
	tree := New([]testPoint{pt(0, 0, 0), pt(10, 10, 10)})
	unchanged := New([]testPoint{pt(0, 0, 0), pt(10, 10, 10)})

	require.False(t, tree.Insert(pt(20, 20, 20)))
	require.True(t, tree.Equal(unchanged))
}

func TestInsertIdempotent(t *testing.T) {
	t.Parallel()
	tree := New([]testPoint{pt(0, 0, 0), pt(10, 10, 10)})

	require.True(t, tree.Insert(pt(4, 4, 4)))
	before := tree.Len()
	require.True(t, tree.Insert(pt(4, 4, 4)))
	require.Equal(t, before, tree.Len(), "re-inserting a bit-identical point must not grow the set")
}

func TestDelete(t *testing.T) {
	t.Parallel()
	tree := New([]testPoint{pt(0, 0, 0), pt(5, 5, 5), pt(10, 10, 10)})

	require.True(t, tree.Delete(pt(5, 5, 5)))
	require.True(t, tree.Equal(New([]testPoint{pt(0, 0, 0), pt(10, 10, 10)})))
}

func TestDeleteAbsent(t *testing.T) {
	t.Parallel()
	tree := New([]testPoint{pt(0, 0, 0), pt(5, 5, 5), pt(10, 10, 10)})
	unchanged := New([]testPoint{pt(0, 0, 0), pt(5, 5, 5), pt(10, 10, 10)})

	require.False(t, tree.Delete(pt(100, 100, 100)))
	require.True(t, tree.Equal(unchanged))
}

func TestQuery(t *testing.T) {
	t.Parallel()
	tree := New([]testPoint{pt(0, 0, 0), pt(10, 10, 10)})
	tree.Insert(pt(4, 4, 4))
	tree.Insert(pt(5, 10, 5))

	got := tree.Query(Box{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{5, 10, 5}})
	require.ElementsMatch(t, []testPoint{pt(0, 0, 0), pt(4, 4, 4)}, got)
}

func TestQueryPrunesDisjointRegion(t *testing.T) {
	t.Parallel()
	tree := New([]testPoint{pt(0, 0, 0), pt(10, 10, 10)})
	tree.Insert(pt(4, 4, 4))

	require.Empty(t, tree.Query(Box{Min: mgl32.Vec3{20, 20, 20}, Max: mgl32.Vec3{30, 30, 30}}))
}

func TestCoversAndOverlaps(t *testing.T) {
	t.Parallel()
	tree := New([]testPoint{pt(0, 0, 0), pt(10, 10, 10)})

	require.True(t, tree.Covers(pt(5, 5, 5)))
	require.False(t, tree.Covers(pt(10, 10, 10)))
	require.True(t, tree.Overlaps(Box{Min: mgl32.Vec3{1, 1, 1}, Max: mgl32.Vec3{9, 9, 9}}))
	require.False(t, tree.Overlaps(Box{Min: mgl32.Vec3{11, 0, 0}, Max: mgl32.Vec3{20, 20, 20}}))
}

// Overflow splits the root exactly once and routes only the overflowing
// point downward; the eight points stored before the split stay at the root.
func TestOverflowSplit(t *testing.T) {
	t.Parallel()
	base := []testPoint{
		pt(0, 0, 0), pt(10, 10, 10), // max corner rejected
		pt(1, 1, 1), pt(2, 1, 1), pt(1, 2, 1), pt(1, 1, 2),
		pt(8, 8, 8), pt(8, 1, 8), pt(1, 8, 8),
	}
	tree := New(base)
	require.Equal(t, 8, tree.Len())
	require.Equal(t, 1, tree.Depth())

	overflowing := pt(6, 6, 6)
	require.True(t, tree.Insert(overflowing))
	require.Equal(t, 9, tree.Len())
	require.Equal(t, 2, tree.Depth())

	// Routed into a child, not stored at the root.
	require.False(t, tree.Contains(overflowing))
	require.True(t, tree.Contains(pt(1, 1, 1)))

	// Still reachable through a range query.
	got := tree.Query(Box{Min: mgl32.Vec3{5.5, 5.5, 5.5}, Max: mgl32.Vec3{7, 7, 7}})
	require.ElementsMatch(t, []testPoint{overflowing}, got)
}

// Deletion is level-local: a point living only in a child is not found at
// the root, so the removal never descends.
func TestDeleteIsLevelLocal(t *testing.T) {
	t.Parallel()
	tree := New([]testPoint{pt(0, 0, 0), pt(9, 9, 9)}, WithCapacity(1))

	child := pt(4, 4, 4)
	require.True(t, tree.Insert(child))
	require.False(t, tree.Delete(child))
	require.Equal(t, 2, tree.Len())

	// Root-level points remain deletable.
	require.True(t, tree.Delete(pt(0, 0, 0)))
	require.Equal(t, 1, tree.Len())
}

func TestWithCapacity(t *testing.T) {
	t.Parallel()
	tree := New([]testPoint{pt(0, 0, 0), pt(9, 9, 9)}, WithCapacity(1))
	require.Equal(t, 1, tree.Len())
	require.Equal(t, 1, tree.Depth())

	require.True(t, tree.Insert(pt(4, 4, 4)))
	require.Equal(t, 2, tree.Len())
	require.Equal(t, 2, tree.Depth())
	require.False(t, tree.Contains(pt(4, 4, 4)))

	got := tree.Query(Box{Min: mgl32.Vec3{0, 0, 0}, Max: mgl32.Vec3{9, 9, 9}})
	require.ElementsMatch(t, []testPoint{pt(0, 0, 0), pt(4, 4, 4)}, got)
}

func TestEqual(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		tree     *Tree[testPoint]
		other    *Tree[testPoint]
		expected bool
	}{
		{
			name:     "same_points",
			tree:     New([]testPoint{pt(0, 0, 0), pt(10, 10, 10)}),
			other:    New([]testPoint{pt(0, 0, 0), pt(10, 10, 10)}),
			expected: true,
		},
		{
			name:     "different_boxes",
			tree:     New([]testPoint{pt(0, 0, 0), pt(10, 10, 10)}),
			other:    New([]testPoint{pt(0, 0, 0), pt(11, 11, 11)}),
			expected: false,
		},
		{
			name:     "different_point_sets",
			tree:     New([]testPoint{pt(0, 0, 0), pt(5, 5, 5), pt(10, 10, 10)}),
			other:    New([]testPoint{pt(0, 0, 0), pt(10, 10, 10)}),
			expected: false,
		},
		{
			name:     "both_empty",
			tree:     New[testPoint](nil),
			other:    New[testPoint](nil),
			expected: true,
		},
	}
	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, test.expected, test.tree.Equal(test.other))
			require.Equal(t, test.expected, test.other.Equal(test.tree))
		})
	}
}

func TestEqualSplitState(t *testing.T) {
	t.Parallel()
	split := New([]testPoint{pt(0, 0, 0), pt(9, 9, 9)}, WithCapacity(1))
	require.True(t, split.Insert(pt(4, 4, 4)))

	unsplit := New([]testPoint{pt(0, 0, 0), pt(9, 9, 9)}, WithCapacity(2))
	require.True(t, unsplit.Insert(pt(4, 4, 4)))

	require.False(t, split.Equal(unsplit))
}
