package langtour

import (
	"errors"
	"fmt"
	"io"
)

var (
	// ErrUnknownDemo is returned when a demo name is not registered.
	ErrUnknownDemo = errors.New("unknown demo")
	// ErrDuplicateDemo is returned when a name is registered twice.
	ErrDuplicateDemo = errors.New("duplicate demo")
)

// Demo is one runnable demonstration.
type Demo struct {
	Name    string          // Lookup key, e.g. "main"
	Summary string          // One line for listings
	Notes   string          // Markdown walkthrough
	Run     func(io.Writer) // Writes the demo output
}

// Registry holds demos by name and remembers registration order.
type Registry struct {
	demos map[string]Demo
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		demos: make(map[string]Demo),
	}
}

// Register adds a demo. Names must be unique and non-empty.
func (r *Registry) Register(d Demo) error {
	if d.Name == "" {
		return errors.New("demo name must not be empty")
	}
	if d.Run == nil {
		return fmt.Errorf("demo %s has no Run function", d.Name)
	}
	if _, ok := r.demos[d.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateDemo, d.Name)
	}
	r.demos[d.Name] = d
	r.order = append(r.order, d.Name)
	return nil
}

// Lookup returns the demo registered under name.
func (r *Registry) Lookup(name string) (Demo, error) {
	d, ok := r.demos[name]
	if !ok {
		return Demo{}, fmt.Errorf("%w: %s (have: %v)", ErrUnknownDemo, name, r.order)
	}
	return d, nil
}

// Names returns demo names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Demos returns every demo in registration order.
func (r *Registry) Demos() []Demo {
	out := make([]Demo, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.demos[name])
	}
	return out
}

// DefaultRegistry returns a registry with every demonstration in the tour.
// It panics if the built-in demos fail to register.
func DefaultRegistry() *Registry {
	return MustRegistry(builtinDemos()...)
}

// MustRegistry registers demos into a new registry and panics on error.
func MustRegistry(demos ...Demo) *Registry {
	r := NewRegistry()
	for _, d := range demos {
		if err := r.Register(d); err != nil {
			panic(fmt.Sprintf("langtour: %v", err))
		}
	}
	return r
}

func builtinDemos() []Demo {
	return []Demo{
		{
			Name:    "main",
			Summary: "Greeting, while and for loops, a method call",
			Notes:   mainNotes,
			Run:     Main,
		},
		{
			Name:    "functions",
			Summary: "Returning values and the three sign predicates",
			Notes:   functionsNotes,
			Run:     runFunctions,
		},
		{
			Name:    "sequences",
			Summary: "Indexing, concatenating, appending and slicing",
			Notes:   sequencesNotes,
			Run:     SequencesIntro,
		},
		{
			Name:    "generics",
			Summary: "A generic Append over any element type",
			Notes:   genericsNotes,
			Run:     runGenerics,
		},
		{
			Name:    "tuples",
			Summary: "Pairs, triples and destructuring",
			Notes:   tuplesNotes,
			Run:     runTuples,
		},
		{
			Name:    "sizes",
			Summary: "An enumeration matched with a default arm",
			Notes:   sizesNotes,
			Run:     runSizes,
		},
		{
			Name:    "objects",
			Summary: "A simple object and a record",
			Notes:   objectsNotes,
			Run:     runObjects,
		},
		{
			Name:    "optional",
			Summary: "Present or absent values, three ways",
			Notes:   optionalNotes,
			Run:     runOptional,
		},
	}
}

func runFunctions(w io.Writer) {
	PrintDouble(w, 5)
	fmt.Fprintf(w, "Double(21) = %d\n", Double(21))
	for _, i := range []int{-1, 0, 1} {
		fmt.Fprintf(w, "IsPositive(%d) = %t\n", i, IsPositive(i))
	}
	for _, i := range []int{-3, 3} {
		fmt.Fprintf(w, "DoubleIfPositive(%d) = %d\n", i, DoubleIfPositive(i))
	}
}

func runGenerics(w io.Writer) {
	fmt.Fprintln(w, Append([]string{"A", "B"}, []string{"C", "D"}))
	fmt.Fprintln(w, Append([]int{1, 2}, []int{3}))
}

func runTuples(w io.Writer) {
	a, b := ExamplePairs().Unpack()
	fmt.Fprintf(w, "(%d, %s)\n", a, b)
	x, y, z := UsingTuples()
	fmt.Fprintf(w, "(%d, %s, %g)\n", x, y, z)
}

func runSizes(w io.Writer) {
	for _, s := range Sizes {
		fmt.Fprintf(w, "%d %s %s\n", int(s), ToString(s), ToString2(s))
	}
}

func runObjects(w io.Writer) {
	fmt.Fprintln(w, CreatingObjects().Field2())
	fmt.Fprintln(w, CreatingAndAccessingData())
	fmt.Fprintln(w, Person{Name: "Hello", DOB: "123", Height: 12})
}

func runOptional(w io.Writer) {
	s := "hello"
	Trial(w, &s)
	Trial(w, nil)
	Trial2(w, &s)
	Trial2(w, nil)
	Trial3(w, Just(s))
	Trial3(w, None[string]())
	fmt.Fprintln(w, FromJust(0, Just(7)))
	fmt.Fprintln(w, FromJust(0, None[int]()))
}
