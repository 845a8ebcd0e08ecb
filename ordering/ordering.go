// Package ordering provides three-way comparison.
//
// A single comparison classifies two values as Less, Equal or Greater; the
// six relational operators are each a check against that classification.
// Comparators for composite types are assembled from per-field comparators
// with Lexicographic, By and Elementwise, or derived by reflection with
// Derived.
package ordering

type Ordering int8

const (
	Less    Ordering = -1
	Equal   Ordering = 0
	Greater Ordering = 1
)

// Of classifies the sign of c.
func Of(c int) Ordering {
	switch {
	case c < 0:
		return Less
	case c > 0:
		return Greater
	default:
		return Equal
	}
}

func (o Ordering) Lt() bool { return o == Less }
func (o Ordering) Le() bool { return o != Greater }
func (o Ordering) Gt() bool { return o == Greater }
func (o Ordering) Ge() bool { return o != Less }
func (o Ordering) Eq() bool { return o == Equal }
func (o Ordering) Ne() bool { return o != Equal }

func (o Ordering) Reverse() Ordering { return -o }

// Then returns o unless it is Equal, in which case next decides.
func (o Ordering) Then(next Ordering) Ordering {
	if o != Equal {
		return o
	}
	return next
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	}
	return "invalid"
}
