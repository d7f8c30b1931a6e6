package langtour

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertionConfig controls how demo output is compared.
type AssertionConfig struct {
	// Strip trailing spaces from each line before comparing
	TrimTrailingSpace bool

	// Ignore a missing final newline
	AllowMissingNewline bool
}

// DefaultAssertionConfig compares output exactly.
func DefaultAssertionConfig() AssertionConfig {
	return AssertionConfig{
		TrimTrailingSpace:   false,
		AllowMissingNewline: false,
	}
}

// OutputLines runs a demo into a buffer and splits the result into lines.
// The final newline does not produce an empty trailing element.
func OutputLines(run func(io.Writer)) []string {
	var buf bytes.Buffer
	run(&buf)
	return splitLines(buf.String())
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

// AssertOutput verifies a demo writes exactly the want lines, in order.
func AssertOutput(t *testing.T, run func(io.Writer), want []string) {
	t.Helper()
	AssertOutputWith(t, run, want, DefaultAssertionConfig())
}

// AssertOutputWith is AssertOutput with explicit comparison settings.
func AssertOutputWith(t *testing.T, run func(io.Writer), want []string, cfg AssertionConfig) {
	t.Helper()

	var buf bytes.Buffer
	run(&buf)
	out := buf.String()

	if out != "" && !strings.HasSuffix(out, "\n") && !cfg.AllowMissingNewline {
		t.Errorf("Output does not end with a newline: %q", out)
	}

	got := splitLines(out)
	if cfg.TrimTrailingSpace {
		for i := range got {
			got[i] = strings.TrimRight(got[i], " \t")
		}
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Output mismatch (-want +got):\n%s", diff)
		return
	}

	t.Logf("✓ Output matches: %d lines", len(got))
}

// AssertPredicatesAgree verifies the three sign predicates agree with each
// other and with i >= 0 on every input.
func AssertPredicatesAgree(t *testing.T, inputs []int) {
	t.Helper()

	var failures []string
	for _, i := range inputs {
		want := i >= 0
		a, b, c := IsPositive(i), IsPositiveAgain(i), IsPositiveAgainAgain(i)
		if a != want || b != want || c != want {
			failures = append(failures, fmt.Sprintf(
				"  i=%d: IsPositive=%t IsPositiveAgain=%t IsPositiveAgainAgain=%t (want %t)",
				i, a, b, c, want))
		}
	}

	if len(failures) > 0 {
		t.Errorf("Sign predicates disagree:\n%s", strings.Join(failures, "\n"))
		return
	}

	t.Logf("✓ Sign predicates agree on %d inputs", len(inputs))
}

// AssertAppendPreserves verifies Append keeps order and length.
func AssertAppendPreserves[T comparable](t *testing.T, xs, ys []T) {
	t.Helper()

	got := Append(xs, ys)
	if len(got) != len(xs)+len(ys) {
		t.Fatalf("Append length = %d, want %d", len(got), len(xs)+len(ys))
	}
	for i, x := range xs {
		if got[i] != x {
			t.Errorf("Append[%d] = %v, want %v (from xs)", i, got[i], x)
		}
	}
	for i, y := range ys {
		if got[len(xs)+i] != y {
			t.Errorf("Append[%d] = %v, want %v (from ys)", len(xs)+i, got[len(xs)+i], y)
		}
	}
}

// AssertSizesExhaustive verifies every Size maps to a distinct name and
// none reaches the default arm.
func AssertSizesExhaustive(t *testing.T) {
	t.Helper()

	seen := make(map[string]Size)
	for _, s := range Sizes {
		name := ToString(s)
		if name == "Default" {
			t.Errorf("Size %d reached the default arm", int(s))
			continue
		}
		if prev, ok := seen[name]; ok {
			t.Errorf("Sizes %d and %d both map to %q", int(prev), int(s), name)
		}
		seen[name] = s
	}

	t.Logf("✓ %d sizes map to distinct names", len(seen))
}
