// Package demo holds three small walkthroughs: lazy pipelines over a vector,
// three-way comparison of value types, and non-owning views over contiguous
// storage.
//
// Each walkthrough is a method on Runner returning a status code, which is 0
// whenever it returns at all. The properties the walkthroughs illustrate are
// checked as they run; a violated property panics.
package demo

import (
	"fmt"
	"io"
	"os"
)

type Runner struct {
	Out io.Writer
}

func Ranges() int    { return Runner{Out: os.Stdout}.Ranges() }
func Spaceship() int { return Runner{Out: os.Stdout}.Spaceship() }
func Span() int      { return Runner{Out: os.Stdout}.Span() }

func (r Runner) printf(format string, args ...any) {
	fmt.Fprintf(r.Out, format, args...)
}

func must(cond bool, what string) {
	if !cond {
		panic("demo: does not hold: " + what)
	}
}
