package langtour

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestDefaultRegistry_Names(t *testing.T) {
	want := []string{"main", "functions", "sequences", "generics", "tuples", "sizes", "objects", "optional"}
	got := DefaultRegistry().Names()
	if len(got) != len(want) {
		t.Fatalf("Expected %d demos, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Names()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestDefaultRegistry_DemosHaveNotes(t *testing.T) {
	for _, d := range DefaultRegistry().Demos() {
		if d.Summary == "" || d.Notes == "" {
			t.Errorf("Demo %s missing summary or notes", d.Name)
		}
	}
}

func TestRegistry_Duplicate(t *testing.T) {
	r := NewRegistry()
	d := Demo{Name: "x", Run: func(io.Writer) {}}
	if err := r.Register(d); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	err := r.Register(d)
	if !errors.Is(err, ErrDuplicateDemo) {
		t.Errorf("Expected ErrDuplicateDemo, got %v", err)
	}
}

func TestMustRegistry_PanicsOnDuplicate(t *testing.T) {
	d := Demo{Name: "main", Run: Main}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("MustRegistry should panic on a duplicate demo")
		}
		msg, ok := r.(string)
		if !ok || !strings.Contains(msg, "duplicate demo: main") {
			t.Errorf("Unexpected panic value: %v", r)
		}
	}()

	MustRegistry(d, d)
}

func TestBuiltinDemos_UniqueNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range builtinDemos() {
		if seen[d.Name] {
			t.Errorf("Built-in demo %s registered twice", d.Name)
		}
		seen[d.Name] = true
	}
}

func TestRegistry_RejectsIncomplete(t *testing.T) {
	r := NewRegistry()
	if err := r.Register(Demo{Run: func(io.Writer) {}}); err == nil {
		t.Error("Register should reject an empty name")
	}
	if err := r.Register(Demo{Name: "norun"}); err == nil {
		t.Error("Register should reject a nil Run")
	}
	if len(r.Names()) != 0 {
		t.Errorf("Rejected demos should not be registered: %v", r.Names())
	}
}

func TestRegistry_LookupUnknown(t *testing.T) {
	_, err := DefaultRegistry().Lookup("nope")
	if !errors.Is(err, ErrUnknownDemo) {
		t.Errorf("Expected ErrUnknownDemo, got %v", err)
	}
	t.Logf("✓ Correctly rejected: %v", err)
}

func TestBuiltinDemos_Output(t *testing.T) {
	tests := map[string][]string{
		"functions": {
			"10",
			"Double(21) = 42",
			"IsPositive(-1) = false",
			"IsPositive(0) = true",
			"IsPositive(1) = true",
			"DoubleIfPositive(-3) = -3",
			"DoubleIfPositive(3) = 6",
		},
		"generics": {"[A B C D]", "[1 2 3]"},
		"tuples":   {"(1, This)", "(1, this, 2.3)"},
		"sizes":    {"1 Small Small", "2 Medium Default", "3 Large Default"},
		"objects":  {"Hello", "Hello", `Person(name="Hello", dob="123", height=12)`},
		"optional": {
			"Is String hello", "Is none",
			"Is String hello", "Is none",
			"Is String hello", "Is none",
			"7", "0",
		},
	}

	r := DefaultRegistry()
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			d, err := r.Lookup(name)
			if err != nil {
				t.Fatal(err)
			}
			AssertOutput(t, d.Run, want)
		})
	}
}
