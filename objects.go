package langtour

import "fmt"

// Simple is a plain object with two fields and one accessor.
type Simple struct {
	field1  int
	field2  string
	private int // twice field1, never exposed
}

// NewSimple is the constructor.
func NewSimple(i int, s string) *Simple {
	return &Simple{
		field1:  i,
		field2:  s,
		private: i + i,
	}
}

// Field2 returns the string field.
func (s *Simple) Field2() string {
	return s.field2
}

// CreatingObjects builds a Simple and returns it.
func CreatingObjects() *Simple {
	return NewSimple(1, "Hello")
}

// Person is a record: three fields, value equality, a printed form.
type Person struct {
	Name   string
	DOB    string
	Height int
}

func (p Person) String() string {
	return fmt.Sprintf("Person(name=%q, dob=%q, height=%d)", p.Name, p.DOB, p.Height)
}

// CreatingAndAccessingData builds a Person and reads its name.
func CreatingAndAccessingData() string {
	obj := Person{Name: "Hello", DOB: "123", Height: 12}
	return obj.Name
}
