package types

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSliceIterator(t *testing.T) {
	s := Slice[int]{21, 8, 3}
	it := s.Iterator()
	assert.Equal(t, 3, it.Len())

	var got []int
	for it.HasNext() {
		v, ok := it.Next()
		require.True(t, ok)
		got = append(got, v)
	}
	assert.Equal(t, []int{21, 8, 3}, got)
	_, ok := it.Next()
	assert.False(t, ok)

	require.True(t, it.Seek(1))
	v, _ := it.Next()
	assert.Equal(t, 8, v)
	assert.False(t, it.Seek(3))

	*it.At(0) = 5
	assert.Equal(t, 5, s[0])
}

func TestIota(t *testing.T) {
	it := Iota(int64(1_000_000))
	assert.Equal(t, -1, it.Len())
	for want := int64(1_000_000); want < 1_000_100; want++ {
		v, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, want, v)
	}
	assert.True(t, it.HasNext())
}

func TestIotaN(t *testing.T) {
	it := IotaN(uint8(3), 6)
	assert.Equal(t, 3, it.Len())
	var got []uint8
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	assert.Equal(t, []uint8{3, 4, 5}, got)
	assert.Equal(t, 0, it.Len())
	assert.Equal(t, 0, IotaN(5, 2).Len())
}

func TestGenerate(t *testing.T) {
	n := 0
	it := Generate(func() (int, bool) {
		n++
		return n * n, n <= 3
	})
	assert.True(t, it.HasNext())
	assert.True(t, it.HasNext(), "HasNext does not consume")

	var got []int
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	assert.Equal(t, []int{1, 4, 9}, got)
	assert.False(t, it.HasNext())
	assert.Equal(t, -1, it.Len())
}

func TestSortFrom(t *testing.T) {
	v := []int{21, 8, 3, 4, 6, 5, 1, 2}
	SortFrom(v, 2, func(a, b int) int { return a - b })
	assert.Equal(t, []int{21, 8, 1, 2, 3, 4, 5, 6}, v)
}

type info struct {
	Age   int
	Intro string
}

type employee struct {
	Name     string
	SelfInfo *info
}

func TestFieldPath(t *testing.T) {
	e := employee{Name: "ycy", SelfInfo: &info{Age: 22, Intro: "Hello"}}

	v, ok := GetFieldInterfaceByPath(e, "SelfInfo.Intro")
	require.True(t, ok)
	assert.Equal(t, "Hello", v)

	v, ok = GetFieldInterfaceByPath(&e, "Name")
	require.True(t, ok)
	assert.Equal(t, "ycy", v)

	_, ok = GetFieldInterfaceByPath(e, "SelfInfo.Salary")
	assert.False(t, ok)
	_, ok = GetFieldInterfaceByPath(e, "Name.Len")
	assert.False(t, ok)
}

func TestTypePath(t *testing.T) {
	idx, ok := TypePath2Index(reflect.TypeFor[employee](), "SelfInfo.Age")
	require.True(t, ok)
	assert.Equal(t, []int{1, 0}, idx)

	_, ok = TypePath2Index(reflect.TypeFor[employee](), "SelfInfo.Salary")
	assert.False(t, ok)

	_, ok = FieldByIndex(reflect.ValueOf(employee{Name: "ycy"}), idx)
	assert.False(t, ok, "nil SelfInfo")

	v, ok := FieldByIndex(reflect.ValueOf(employee{SelfInfo: &info{Age: 22}}), idx)
	require.True(t, ok)
	assert.EqualValues(t, 22, v.Int())
}

func TestIotaStopsAtMax(t *testing.T) {
	it := Iota(int8(125))
	var got []int8
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		got = append(got, v)
	}
	assert.Equal(t, []int8{125, 126, 127}, got)
	assert.False(t, it.HasNext())

	u := Iota(uint8(254))
	a, _ := u.Next()
	b, _ := u.Next()
	_, ok := u.Next()
	assert.Equal(t, []uint8{254, 255}, []uint8{a, b})
	assert.False(t, ok)
}
