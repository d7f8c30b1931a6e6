package langtour

import (
	"fmt"
	"io"
)

// SequencesIntro builds, indexes, concatenates, appends to and slices an
// ordered sequence of strings, then prints every element.
func SequencesIntro(w io.Writer) {
	xs := []string{"A", "BB", "CCC"}

	fmt.Fprintln(w, xs[0])

	xs = Append(xs, []string{"DDD"})
	xs = append(xs, "EEE")

	tail := xs[1:]
	_ = tail

	for _, x := range xs {
		fmt.Fprintln(w, x)
	}
}

// Append concatenates xs and ys into a new slice.
// The result never shares a backing array with xs.
func Append[T any](xs, ys []T) []T {
	out := make([]T, 0, len(xs)+len(ys))
	out = append(out, xs...)
	return append(out, ys...)
}
