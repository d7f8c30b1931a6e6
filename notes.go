package langtour

// Walkthrough text shown by `langtour explain`.

const mainNotes = `# main

The entry point. Printing is a method: it has effects and can fail.

- ` + "`i := 0`" + ` binds with an inferred type; ` + "`var j int = 0`" + ` states it.
- A ` + "`for cond {}`" + ` loop is Go's while loop. There is no ` + "`i++`" + ` expression,
  only a statement.
- Three-clause ` + "`for`" + ` loops count down 10..1 and up 1..9.
- The last loop value is passed to ` + "`PrintDouble`" + `, which prints 18.
`

const functionsNotes = `# functions

` + "`Double`" + ` returns a value; ` + "`PrintDouble`" + ` only prints one.

The sign predicate is written three ways that agree on every input:

1. early ` + "`return true`" + ` then fall through to ` + "`return false`" + `
2. ` + "`if`" + `/` + "`else`" + ` with a return in each arm
3. ` + "`return i >= 0`" + `

Zero counts as positive. ` + "`DoubleIfPositive`" + ` binds a result and
overwrites it, since Go has no conditional expression.
`

const sequencesNotes = `# sequences

A slice is an ordered, indexable sequence.

- ` + "`xs[0]`" + ` indexes
- ` + "`Append(xs, ys)`" + ` concatenates into a new slice
- ` + "`append(xs, v)`" + ` adds one element
- ` + "`xs[1:]`" + ` is the tail

Indexing past the end panics.
`

const genericsNotes = `# generics

` + "`Append[T any](xs, ys []T) []T`" + ` works for any element type. The result
keeps order and has length ` + "`len(xs)+len(ys)`" + `.
`

const tuplesNotes = `# tuples

Go has no tuple literal; a small generic struct plays the part.

` + "```go" + `
a, b, c := MakeTriple(1, "this", 2.3).Unpack()
` + "```" + `
`

const sizesNotes = `# sizes

An enumeration is a named integer type with ` + "`iota`" + ` constants:
Small, Medium and Large.

A ` + "`switch`" + ` matches each member. The ` + "`default`" + ` arm catches
everything else, including values converted from arbitrary integers.
` + "`ToString2`" + ` examines only Small and lets the rest fall through.
`

const objectsNotes = `# objects

` + "`Simple`" + ` keeps its fields unexported and offers one accessor.
A constructor function, ` + "`NewSimple`" + `, fills them in.

` + "`Person`" + ` is a record: exported fields, ` + "`==`" + ` equality for free,
and a ` + "`String`" + ` method for printing.
`

const optionalNotes = `# optional

A value that may be absent, spelled three ways:

- ` + "`*string`" + `, where nil means absent
- ` + "`MaybeStr`" + `, an alias naming the same type
- ` + "`Maybe[T]`" + `, a generic wrapper with ` + "`Just`" + ` and ` + "`None`" + `

` + "`FromJust(base, m)`" + ` extracts the payload or falls back to base.
`
