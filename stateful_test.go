package rangers_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	rangers "github.com/brynbellomy/go-rangers"
)

func TestUnique(t *testing.T) {
	t.Run("collapses adjacent runs", func(t *testing.T) {
		rng := rangers.Unique(rangers.All([]int{1, 1, 2, 2, 2, 3, 1, 1}))
		require.Equal(t, []int{1, 2, 3, 1}, rangers.Collect(rng))
	})

	t.Run("no duplicates", func(t *testing.T) {
		rng := rangers.Unique(rangers.All([]int{1, 2, 3}))
		require.Equal(t, []int{1, 2, 3}, rangers.Collect(rng))
	})

	t.Run("single element", func(t *testing.T) {
		rng := rangers.Unique(rangers.All([]int{7}))
		require.Equal(t, []int{7}, rangers.Collect(rng))
	})

	t.Run("empty", func(t *testing.T) {
		rng := rangers.Unique(rangers.All([]int{}))
		require.Empty(t, rangers.Collect(rng))
		require.True(t, rng.Drive(func(rangers.Cursor[int]) bool { return true }))
	})

	t.Run("all equal", func(t *testing.T) {
		rng := rangers.Unique(rangers.All([]int{5, 5, 5, 5}))
		require.Equal(t, []int{5}, rangers.Collect(rng))
	})

	t.Run("idempotent", func(t *testing.T) {
		s := []int{1, 1, 2, 3, 3, 3, 2, 2, 4}
		once := rangers.Collect(rangers.Unique(rangers.All(s)))
		twice := rangers.Collect(rangers.Unique(rangers.Unique(rangers.All(s))))
		require.Equal(t, once, twice)
	})

	t.Run("resumes after decline", func(t *testing.T) {
		rng := rangers.Unique(rangers.All([]int{1, 1, 2, 3, 3, 4}))
		var first []int
		done := rng.Drive(func(c rangers.Cursor[int]) bool {
			first = append(first, c.Get())
			return len(first) < 2
		})
		require.False(t, done)
		require.Equal(t, []int{1, 2}, first)
		require.Equal(t, []int{3, 4}, rangers.Collect(rng))
	})

	t.Run("decline on the primed element", func(t *testing.T) {
		rng := rangers.Unique(rangers.All([]int{1, 1, 2}))
		done := rng.Drive(func(rangers.Cursor[int]) bool { return false })
		require.False(t, done)
		require.Equal(t, []int{2}, rangers.Collect(rng))
	})

	t.Run("works over transform", func(t *testing.T) {
		rng := rangers.Unique(rangers.Transform(func(x int) int { return x / 2 }, rangers.All([]int{2, 3, 4, 5, 8})))
		require.Equal(t, []int{1, 2, 4}, rangers.Collect(rng))
	})

	t.Run("uuid elements", func(t *testing.T) {
		a, b, c := uuid.New(), uuid.New(), uuid.New()
		rng := rangers.Unique(rangers.Of(a, a, b, b, b, c))
		require.Equal(t, []uuid.UUID{a, b, c}, rangers.Collect(rng))
	})
}

func TestJoin(t *testing.T) {
	t.Run("flattens slices in outer-then-inner order", func(t *testing.T) {
		rng := rangers.JoinSlices(rangers.Of([]int{1, 2}, []int{3}, []int{4, 5}))
		require.Equal(t, []int{1, 2, 3, 4, 5}, rangers.Collect(rng))
	})

	t.Run("flattens rangers", func(t *testing.T) {
		rng := rangers.Join(rangers.Of[rangers.Ranger[int]](
			rangers.All([]int{1, 2}),
			rangers.Range(10, 13),
		))
		require.Equal(t, []int{1, 2, 10, 11, 12}, rangers.Collect(rng))
	})

	t.Run("empty inner sequences", func(t *testing.T) {
		rng := rangers.JoinSlices(rangers.Of([]int{}, []int{1}, []int{}, []int{2, 3}, []int{}))
		require.Equal(t, []int{1, 2, 3}, rangers.Collect(rng))
	})

	t.Run("empty outer sequence", func(t *testing.T) {
		rng := rangers.JoinSlices(rangers.Of[[]int]())
		require.Empty(t, rangers.Collect(rng))
	})

	t.Run("resumes the open sub-ranger", func(t *testing.T) {
		rng := rangers.JoinSlices(rangers.Of([]int{1, 2, 3}, []int{4, 5}))
		var first []int
		done := rng.Drive(func(c rangers.Cursor[int]) bool {
			first = append(first, c.Get())
			return len(first) < 2
		})
		require.False(t, done)
		require.Equal(t, []int{1, 2}, first)
		require.Equal(t, []int{3, 4, 5}, rangers.Collect(rng))
	})

	t.Run("custom adaptation policy", func(t *testing.T) {
		rng := rangers.JoinWith(func(n int) rangers.Ranger[int] {
			return rangers.Range(0, n)
		}, rangers.Of(1, 2, 3))
		require.Equal(t, []int{0, 0, 1, 0, 1, 2}, rangers.Collect(rng))
	})
}

func TestZip2(t *testing.T) {
	sum := func(p rangers.Pair[int, int]) int { return p.First + p.Second }

	t.Run("filtered zip then fold", func(t *testing.T) {
		I := []int{0, 1, 2, 3}
		S := []int{1, 2, 3, 4}
		rng := rangers.Transform(sum, rangers.Zip2(rangers.All(I), rangers.Filter(isOdd, rangers.All(S))))
		require.Equal(t, 5, rangers.Accumulate(rng, 0)) // 0 + 1 + 1 + 3
	})

	t.Run("length is the minimum component length", func(t *testing.T) {
		rng := rangers.Zip2(rangers.All([]int{1, 2, 3, 4}), rangers.All([]string{"a", "b"}))
		require.Equal(t, []rangers.Pair[int, string]{{1, "a"}, {2, "b"}}, rangers.Collect(rng))

		rng2 := rangers.Zip2(rangers.All([]int{1}), rangers.All([]string{"a", "b", "c"}))
		require.Equal(t, []rangers.Pair[int, string]{{1, "a"}}, rangers.Collect(rng2))
	})

	t.Run("pairs keep lockstep order", func(t *testing.T) {
		rng := rangers.Zip2(rangers.Range(0, 3), rangers.Range(10, 13))
		require.Equal(t, []rangers.Pair[int, int]{{0, 10}, {1, 11}, {2, 12}}, rangers.Collect(rng))
	})

	t.Run("either side empty", func(t *testing.T) {
		rng := rangers.Zip2(rangers.All([]int{}), rangers.All([]string{"a"}))
		require.Empty(t, rangers.Collect(rng))

		rng2 := rangers.Zip2(rangers.All([]int{1}), rangers.All([]string{}))
		require.Empty(t, rangers.Collect(rng2))
	})

	t.Run("resumes in lockstep", func(t *testing.T) {
		rng := rangers.Zip2(rangers.All([]int{1, 2, 3}), rangers.All([]string{"a", "b", "c"}))
		var first []rangers.Pair[int, string]
		done := rng.Drive(func(c rangers.Cursor[rangers.Pair[int, string]]) bool {
			first = append(first, c.Get())
			return false
		})
		require.False(t, done)
		require.Equal(t, []rangers.Pair[int, string]{{1, "a"}}, first)
		require.Equal(t, []rangers.Pair[int, string]{{2, "b"}, {3, "c"}}, rangers.Collect(rng))
	})
}

func TestZip(t *testing.T) {
	t.Run("three components", func(t *testing.T) {
		rng := rangers.Zip(
			rangers.All([]int{1, 2, 3}),
			rangers.All([]int{10, 20, 30}),
			rangers.All([]int{100, 200, 300}),
		)
		require.Equal(t, [][]int{{1, 10, 100}, {2, 20, 200}, {3, 30, 300}}, rangers.Collect(rng))
	})

	t.Run("single component", func(t *testing.T) {
		rng := rangers.Zip(rangers.All([]int{1, 2}))
		require.Equal(t, [][]int{{1}, {2}}, rangers.Collect(rng))
	})

	t.Run("shortest component wins", func(t *testing.T) {
		rng := rangers.Zip(
			rangers.All([]int{1, 2, 3}),
			rangers.All([]int{10}),
			rangers.All([]int{100, 200}),
		)
		require.Equal(t, [][]int{{1, 10, 100}}, rangers.Collect(rng))
	})
}
