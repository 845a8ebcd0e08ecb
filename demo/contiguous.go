package demo

import (
	"slices"
	"strconv"
	"strings"

	"github.com/kabu1204/go-views/span"
	"github.com/samber/lo"
)

func (r Runner) printContent(container span.Span[int]) {
	r.printf("container.size(): %d\n", container.Size())
	items := lo.Map(slices.Collect(container.Values()), func(e int, _ int) string {
		return strconv.Itoa(e) + " "
	})
	r.printf("%s\n", strings.Join(items, ""))
}

func (r Runner) Span() int {
	arr := [...]int{1, 2, 3, 4}
	r.printContent(span.Fixed(arr[:]))
	r.printContent(span.FromPointer(&arr[0], 2))

	vec := []int{1, 2, 3, 4, 5}
	r.printContent(span.Of(vec))

	arr2 := [6]int{1, 2, 3, 4, 5, 6}
	r.printContent(span.Fixed(arr2[:]))

	a := lo.Range(9)
	b := [...]int{8, 7, 6}
	must(span.Contains(span.Fixed(a), span.FromPointer(&a[1], 4)), "[1 2 3 4] in [0..8]")
	must(!span.Contains(span.Fixed(a), span.Fixed(b[:])), "[8 7 6] not in [0..8]")

	return 0
}
