package demo

import (
	"github.com/kabu1204/go-views/ordering"
)

// MyInt takes its ordering from its only field.
type MyInt struct {
	Value int
}

func NewMyInt(v int) MyInt { return MyInt{Value: v} }

var myIntOrder = ordering.Derived[MyInt]()

func (m MyInt) Compare(other MyInt) ordering.Ordering { return myIntOrder(m, other) }

// MyInts compares raw ints against a MyInt in either order.
var MyInts = ordering.Promote(NewMyInt)

func isLt(a, b MyInt) bool { return ordering.Lt(a, b) }

func isGt42(a MyInt) bool { return MyInts.CompareRaw(42, a).Lt() }

type Basics struct {
	I int32
	C byte
	F float32
	D float64
}

type Arrays struct {
	AI [1]int32
	AC [2]byte
	AF [3]float32
	AD [2][2]float64
}

// Bases orders by Basics first, then Arrays.
type Bases struct {
	Basics
	Arrays
}

var basicsOrder = ordering.Lexicographic(
	ordering.By(func(b Basics) int32 { return b.I }),
	ordering.By(func(b Basics) byte { return b.C }),
	ordering.By(func(b Basics) float32 { return b.F }),
	ordering.By(func(b Basics) float64 { return b.D }),
)

var arraysOrder = ordering.Lexicographic(
	ordering.ByWith(func(a Arrays) []int32 { return a.AI[:] }, ordering.Elementwise(ordering.Natural[int32]())),
	ordering.ByWith(func(a Arrays) []byte { return a.AC[:] }, ordering.Elementwise(ordering.Natural[byte]())),
	ordering.ByWith(func(a Arrays) []float32 { return a.AF[:] }, ordering.Elementwise(ordering.Natural[float32]())),
	ordering.ByWith(func(a Arrays) [][2]float64 { return a.AD[:] }, ordering.Elementwise(
		ordering.ByWith(func(row [2]float64) []float64 { return row[:] }, ordering.Elementwise(ordering.Natural[float64]())))),
)

var basesOrder = ordering.Lexicographic(
	ordering.ByWith(func(b Bases) Basics { return b.Basics }, ordering.Method[Basics]()),
	ordering.ByWith(func(b Bases) Arrays { return b.Arrays }, ordering.Method[Arrays]()),
)

func (b Basics) Compare(other Basics) ordering.Ordering { return basicsOrder(b, other) }
func (a Arrays) Compare(other Arrays) ordering.Ordering { return arraysOrder(a, other) }
func (b Bases) Compare(other Bases) ordering.Ordering   { return basesOrder(b, other) }

func sampleBases() Bases {
	return Bases{
		Basics{0, 'c', 1, 1},
		Arrays{[1]int32{1}, [2]byte{'a', 'b'}, [3]float32{1, 2, 3}, [2][2]float64{{1, 2}, {3, 4}}},
	}
}

func (r Runner) Spaceship() int {
	a := NewMyInt(1)
	b := NewMyInt(50)

	must(a.Compare(b) == ordering.Less, "a <=> b is less")
	must(isLt(a, b), "a < b")
	must(ordering.Le(a, b), "a <= b")

	must(isGt42(b), "42 < b")
	const i = 40
	must(MyInts.CompareRaw(i, a).Gt(), "40 <=> a is greater")

	c, d := sampleBases(), sampleBases()
	must(ordering.Eq(c, d), "c == d")
	must(!ordering.Ne(c, d), "!(c != d)")
	must(!ordering.Lt(c, d), "!(c < d)")
	must(ordering.Le(c, d), "c <= d")
	must(!ordering.Gt(c, d), "!(c > d)")
	must(ordering.Ge(c, d), "c >= d")
	must(ordering.Derived[Bases]()(c, d) == c.Compare(d), "derived agrees with declared")

	return 0
}
