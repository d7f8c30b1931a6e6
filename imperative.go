package langtour

import (
	"fmt"
	"io"
)

// Main is the entry-point demonstration.
//
// It greets twice, counts 1..10 printing each value twice, counts down
// from 10 to 1, counts up from 1 to 9 and finally prints the last loop
// value doubled (18).
func Main(w io.Writer) {
	fmt.Fprintln(w, "Hello World!")
	fmt.Fprintln(w, "Hello World!")

	// Binding: the type is inferred, or stated explicitly.
	i := 0
	var j int = 0
	_ = j

	i = i + 2

	i = 0
	for i < 10 {
		i = i + 1
		fmt.Fprintln(w, i)
		fmt.Fprintf(w, "%d\n", i)
	}

	for i = 10; i > 0; i-- {
		fmt.Fprintf(w, "%d\n", i)
	}

	for i = 1; i < 10; i++ {
		fmt.Fprintf(w, "%d\n", i)
	}
	// The post statement leaves i one past the last printed value.
	i--

	PrintDouble(w, i)
}

// PrintDouble writes i doubled.
func PrintDouble(w io.Writer, i int) {
	fmt.Fprintf(w, "%d\n", i+i)
}

// Double returns i doubled.
func Double(i int) int {
	return i + i
}

// IsPositive reports whether i >= 0 using an early return.
func IsPositive(i int) bool {
	if i >= 0 {
		return true
	}

	return false
}

// IsPositiveAgain reports whether i >= 0 using if/else.
func IsPositiveAgain(i int) bool {
	if i >= 0 {
		return true
	} else {
		return false
	}
}

// IsPositiveAgainAgain reports whether i >= 0 directly.
func IsPositiveAgainAgain(i int) bool {
	return i >= 0
}

// DoubleIfPositive returns 2*i for non-negative i and i otherwise.
// Go has no conditional expression, so the result is bound first.
func DoubleIfPositive(i int) int {
	result := i
	if i >= 0 {
		result = i + i
	}
	return result
}
