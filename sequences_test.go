package langtour

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSequencesIntro_Output(t *testing.T) {
	AssertOutput(t, SequencesIntro, []string{"A", "A", "BB", "CCC", "DDD", "EEE"})
}

func TestAppend(t *testing.T) {
	got := Append([]string{"A", "B"}, []string{"C", "D"})
	want := []string{"A", "B", "C", "D"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Append mismatch (-want +got):\n%s", diff)
	}
}

func TestAppend_Properties(t *testing.T) {
	tests := []struct {
		name   string
		xs, ys []int
	}{
		{"both empty", nil, nil},
		{"left empty", nil, []int{1, 2}},
		{"right empty", []int{1, 2}, nil},
		{"both set", []int{3, 1, 2}, []int{9, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			AssertAppendPreserves(t, tt.xs, tt.ys)
		})
	}
}

func TestAppend_DoesNotAliasInput(t *testing.T) {
	xs := make([]string, 2, 10)
	xs[0], xs[1] = "A", "B"

	out := Append(xs, []string{"C"})
	out[0] = "changed"
	_ = append(xs, "D")

	if xs[0] != "A" {
		t.Errorf("Append result shares storage with xs: xs[0] = %q", xs[0])
	}
	if out[2] != "C" {
		t.Errorf("Appending to xs clobbered the result: out[2] = %q", out[2])
	}
}
