package stream

import (
	"slices"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intCmp(a, b int) int { return a - b }

func isEven(i int) bool { return i%2 == 0 }

func TestSkipLimitFilter(t *testing.T) {
	v := []int{21, 8, 3, 4, 6, 5, 1, 2}
	got := FromSlice(v).Skip(2).Limit(3).Filter(isEven).ToSlice()
	assert.Equal(t, []int{4, 6}, got)
	assert.Equal(t, []int{21, 8, 3, 4, 6, 5, 1, 2}, v)
}

func TestLazyPulls(t *testing.T) {
	var pulled atomic.Int64
	got := Iota(0).Peek(func(int) { pulled.Add(1) }).Skip(2).Limit(3).ToSlice()
	assert.Equal(t, []int{2, 3, 4}, got)
	assert.EqualValues(t, 5, pulled.Load())
}

func TestIotaPrimesTerminate(t *testing.T) {
	isPrime := func(i int) bool {
		for j := 2; j*j <= i; j++ {
			if i%j == 0 {
				return false
			}
		}
		return true
	}
	got := Iota(1000000).Filter(isPrime).Limit(10).ToSlice()
	require.Len(t, got, 10)
	assert.Equal(t, []int{1000003, 1000033, 1000037, 1000039, 1000081,
		1000099, 1000117, 1000121, 1000133, 1000151}, got)
	assert.True(t, slices.IsSorted(got))
}

func TestRestartable(t *testing.T) {
	s := Of(1, 2, 3, 4, 5, 6).Filter(isEven).Limit(2)
	assert.Equal(t, []int{2, 4}, s.ToSlice())
	assert.Equal(t, []int{2, 4}, s.ToSlice())
	assert.EqualValues(t, 2, s.Count())

	u := Iota(10).Limit(3)
	assert.Equal(t, []int{10, 11, 12}, u.ToSlice())
	assert.Equal(t, []int{10, 11, 12}, u.ToSlice())
}

func TestLimitZero(t *testing.T) {
	assert.Empty(t, Iota(0).Limit(0).ToSlice())
	assert.Empty(t, Of(1, 2).Skip(5).ToSlice())
}

func TestRange(t *testing.T) {
	assert.Equal(t, []int{3, 4, 5}, Range(3, 6).ToSlice())
	assert.Empty(t, Range(6, 3).ToSlice())
}

func TestSorted(t *testing.T) {
	got := Of(5, 3, 5, 1, 9, 3).Sorted(intCmp, false).ToSlice()
	assert.Equal(t, []int{1, 3, 3, 5, 5, 9}, got)

	got = Of(5, 3, 5, 1, 9, 3).Sorted(intCmp, false).Limit(3).ToSlice()
	assert.Equal(t, []int{1, 3, 3}, got)
}

type person struct {
	Name string
	Age  int
}

func TestSortedKeepsEqualElements(t *testing.T) {
	byAge := func(a, b person) int { return a.Age - b.Age }
	in := []person{{"a", 30}, {"b", 20}, {"c", 30}, {"d", 20}, {"e", 30}}

	got := FromSlice(in).Sorted(byAge, false).ToSlice()
	assert.Equal(t, []person{{"b", 20}, {"d", 20}, {"a", 30}, {"c", 30}, {"e", 30}}, got)

	got = FromSlice(in).Sorted(byAge, false).Limit(3).ToSlice()
	assert.Equal(t, []person{{"b", 20}, {"d", 20}, {"a", 30}}, got)

	par := FromSlice(in).Parallel(4).Sorted(byAge, false).ToSlice()
	require.Len(t, par, 5)
	names := make([]string, 0, len(par))
	for _, p := range par {
		names = append(names, p.Name)
	}
	slices.Sort(names)
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, names)
	assert.True(t, slices.IsSortedFunc(par, byAge))
}

func TestSortedParallel(t *testing.T) {
	in := make([]int, 0, 200)
	for i := 200; i > 0; i-- {
		in = append(in, i%50)
	}
	want := slices.Clone(in)
	slices.Sort(want)

	got := FromSlice(in).Parallel(8).Sorted(intCmp, false).ToSlice()
	assert.Equal(t, want, got)

	kept := FromSlice(in).Parallel(8).Sorted(intCmp, true).ToSlice()
	slices.Sort(kept)
	assert.Equal(t, want, kept)
}

func TestParallel(t *testing.T) {
	s := Range(0, 1000).Parallel(16).Map(func(i int) int { return i * 2 })
	assert.EqualValues(t, 1000, s.Count())

	got := s.ToSlice()
	slices.Sort(got)
	require.Len(t, got, 1000)
	assert.Equal(t, 0, got[0])
	assert.Equal(t, 1998, got[999])
}

func TestParallelLimit(t *testing.T) {
	got := Iota(0).Parallel(4).Limit(25).ToSlice()
	assert.Len(t, got, 25)
}

func TestDistinct(t *testing.T) {
	got := Of(1, 2, 2, 3, 1, 4, 3).Distinct(func(i int) int { return i }).ToSlice()
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	mod3 := Range(0, 10).Distinct(func(i int) int { return i % 3 }).ToSlice()
	assert.Equal(t, []int{0, 1, 2}, mod3)
}

func TestMatch(t *testing.T) {
	s := Of(2, 4, 6, 7)
	assert.True(t, s.AnyMatch(func(i int) bool { return i == 7 }))
	assert.False(t, s.AllMatch(isEven))
	assert.True(t, s.NoneMatch(func(i int) bool { return i > 10 }))
	assert.True(t, Of[int]().AllMatch(isEven))
	assert.True(t, Iota(1).AnyMatch(func(i int) bool { return i > 1000 }))
}

func TestReduce(t *testing.T) {
	sum := func(a, b int) int { return a + b }

	v, ok := Range(1, 5).Reduce(sum).Get()
	assert.True(t, ok)
	assert.Equal(t, 10, v)

	assert.True(t, Of[int]().Reduce(sum).IsAbsent())
	assert.Equal(t, 110, Range(1, 5).ReduceFrom(100, sum))
}

func TestFindFirst(t *testing.T) {
	v, ok := Iota(100).Filter(func(i int) bool { return i%7 == 0 }).FindFirst().Get()
	require.True(t, ok)
	assert.Equal(t, 105, v)

	assert.Equal(t, 8, Of(1, 3, 8, 10).FindFirstMatch(isEven).MustGet())
	assert.True(t, Of(1, 3).FindFirstMatch(isEven).IsAbsent())
}

func TestAllBreak(t *testing.T) {
	var got []int
	for e := range Iota(0).Filter(isEven).All() {
		if e > 8 {
			break
		}
		got = append(got, e)
	}
	assert.Equal(t, []int{0, 2, 4, 6, 8}, got)
}

func TestFold(t *testing.T) {
	n := Fold(Of(3, 4, 5), "", func(acc string, e int) string {
		return acc + string(rune('a'+e))
	})
	assert.Equal(t, "def", n)
}

func TestFlatMap(t *testing.T) {
	got := Of(1, 2, 3).FlatMap(func(i int) Stream[int] {
		return Of(i, -i)
	}).Limit(5).ToSlice()
	assert.Equal(t, []int{1, -1, 2, -2, 3}, got)
}

func TestForEachOrder(t *testing.T) {
	var got []int
	Of(21, 8, 3).ForEach(func(e int) { got = append(got, e) })
	assert.Equal(t, []int{21, 8, 3}, got)
}
