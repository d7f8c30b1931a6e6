// Package langtour is a runnable tour of basic language features.
//
// # Overview
//
// Each demonstration is a small, total function that shows one feature:
// binding and looping, returning values, branching, sequences, generics,
// enumerations with exhaustive matching, simple objects, records, tuples
// and optional values. Demonstrations write plain text lines to an
// io.Writer and share no state.
//
// # Architecture
//
// The package components:
//
//   - imperative  - entry-point demo, doubling helpers, sign predicates
//   - sequences   - ordered sequence demo and generic Append
//   - tuples      - Pair and Triple with destructuring
//   - size        - Size enumeration and its matchers
//   - objects     - Simple object and Person record
//   - optional    - *string, MaybeStr and Maybe[T] dispatch
//   - registry    - named demos for the CLI
//   - tour        - runs demos against a writer with structured logging
//   - config      - YAML configuration with env overrides
//   - assertions  - test helpers for demo output
//
// # Quick Start
//
// Run the entry-point demonstration:
//
//	langtour.Main(os.Stdout)
//
// Output:
//
//	Hello World!
//	Hello World!
//	1
//	1
//	...
//	10
//	10
//	10
//	9
//	...
//	1
//	1
//	2
//	...
//	9
//	18
//
// Run demos by name through a Tour:
//
//	tour := langtour.NewTour(langtour.DefaultRegistry(), slog.Default())
//	if err := tour.Run(ctx, os.Stdout, "main", "sequences"); err != nil {
//	    log.Fatal(err)
//	}
//
// # Matching
//
// Enumerations are iota constants matched with a switch that always carries
// a default arm:
//
//	switch s {
//	case langtour.Small:
//	    // ...
//	default:
//	    // values outside the enumeration
//	}
//
// Optional values are either a *string (nil means absent) or the generic
// Maybe[T] wrapper:
//
//	v := langtour.FromJust("fallback", langtour.None[string]()) // "fallback"
//
// # Testing
//
// Use assertions to check demo output line by line:
//
//	func TestMyDemo(t *testing.T) {
//	    langtour.AssertOutput(t, myDemo, []string{"Hello World!"})
//	}
//
// # See Also
//
//   - cmd/langtour - command line front end
//   - examples/    - embedding the tour in another program
package langtour
