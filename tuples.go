package langtour

// Pair is a two-element tuple.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair returns (a, b).
func MakePair[A, B any](a A, b B) Pair[A, B] {
	return Pair[A, B]{First: a, Second: b}
}

// Unpack destructures the pair.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Triple is a three-element tuple.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// MakeTriple returns (a, b, c).
func MakeTriple[A, B, C any](a A, b B, c C) Triple[A, B, C] {
	return Triple[A, B, C]{First: a, Second: b, Third: c}
}

// Unpack destructures the triple.
func (t Triple[A, B, C]) Unpack() (A, B, C) {
	return t.First, t.Second, t.Third
}

// ExamplePairs returns (1, "This").
func ExamplePairs() Pair[int, string] {
	return MakePair(1, "This")
}

// UsingTuples builds (1, "this", 2.3) and destructures it.
func UsingTuples() (int, string, float64) {
	t := MakeTriple(1, "this", 2.3)
	a, b, c := t.Unpack()
	return a, b, c
}
