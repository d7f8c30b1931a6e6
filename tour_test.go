package langtour

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

// failingWriter accepts limit bytes and then fails.
type failingWriter struct {
	limit int
	n     int
}

var errDiskFull = errors.New("disk full")

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.n+len(p) > f.limit {
		return 0, errDiskFull
	}
	f.n += len(p)
	return len(p), nil
}

func TestTour_RunMain(t *testing.T) {
	var buf bytes.Buffer
	tour := NewTour(DefaultRegistry(), nil)

	if err := tour.Run(context.Background(), &buf, "main"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := strings.Join(expectedMainOutput(), "\n") + "\n"
	if buf.String() != want {
		t.Errorf("Run(main) output mismatch:\ngot:\n%s\nwant:\n%s", buf.String(), want)
	}
}

func TestTour_Reports(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	tour := NewTour(DefaultRegistry(), logger)

	reports, err := tour.RunWithReports(context.Background(), io.Discard, "main", "sequences")
	if err != nil {
		t.Fatalf("RunWithReports failed: %v", err)
	}
	if len(reports) != 2 {
		t.Fatalf("Expected 2 reports, got %d", len(reports))
	}

	if reports[0].Demo != "main" || reports[0].Lines != 42 {
		t.Errorf("Report 0 = %+v, want main with 42 lines", reports[0])
	}
	if reports[1].Demo != "sequences" || reports[1].Lines != 6 {
		t.Errorf("Report 1 = %+v, want sequences with 6 lines", reports[1])
	}
	if reports[0].RunID == "" || reports[0].RunID != reports[1].RunID {
		t.Errorf("Reports should share a non-empty run id: %q %q", reports[0].RunID, reports[1].RunID)
	}

	if !strings.Contains(logs.String(), "run_id="+reports[0].RunID) {
		t.Errorf("Logs missing run id:\n%s", logs.String())
	}

	for _, want := range []string{
		`msg="demo starting" run_id=` + reports[0].RunID + ` demo=main`,
		`msg="demo finished" run_id=` + reports[0].RunID + ` demo=main`,
		`msg="demo starting" run_id=` + reports[0].RunID + ` demo=sequences`,
		`msg="demo finished" run_id=` + reports[0].RunID + ` demo=sequences`,
	} {
		if !strings.Contains(logs.String(), want) {
			t.Errorf("Logs missing %q:\n%s", want, logs.String())
		}
	}
}

func TestTour_UnknownDemoWritesNothing(t *testing.T) {
	var buf bytes.Buffer
	tour := NewTour(DefaultRegistry(), nil)

	err := tour.Run(context.Background(), &buf, "main", "missing")
	if !errors.Is(err, ErrUnknownDemo) {
		t.Fatalf("Expected ErrUnknownDemo, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Nothing should be written when a name is unknown, got %d bytes", buf.Len())
	}
}

func TestTour_StopsOnWriteError(t *testing.T) {
	w := &failingWriter{limit: 20}
	tour := NewTour(DefaultRegistry(), nil)

	reports, err := tour.RunWithReports(context.Background(), w, "sequences", "main")
	if !errors.Is(err, errDiskFull) {
		t.Fatalf("Expected errDiskFull, got %v", err)
	}
	if !strings.Contains(err.Error(), "demo main") {
		t.Errorf("Error should name the failing demo: %v", err)
	}
	if len(reports) != 1 || reports[0].Demo != "sequences" {
		t.Errorf("Expected only the sequences report, got %+v", reports)
	}
}

func TestTour_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := NewTour(DefaultRegistry(), nil).Run(ctx, &buf, "main")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Expected context.Canceled, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Cancelled tour wrote %d bytes", buf.Len())
	}
}
