package metrics

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNew(t *testing.T) {
	t.Parallel()
	m := New()
	if m == nil || m.Registry() == nil {
		t.Fatal("New should return an initialized Metrics")
	}
	// Independent registries: a second instance must not panic on registration.
	_ = New()
}

func TestObserveRun(t *testing.T) {
	t.Parallel()
	m := New()
	m.ObserveRun("sequential", 3*time.Millisecond, 6, nil)
	m.ObserveRun("parallel", time.Millisecond, 6, nil)
	m.ObserveRun("parallel", time.Millisecond, 0, errors.New("boom"))

	if got := testutil.ToFloat64(m.runs.WithLabelValues("parallel", StatusSuccess)); got != 1 {
		t.Errorf("parallel success runs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.runs.WithLabelValues("parallel", StatusFailure)); got != 1 {
		t.Errorf("parallel failure runs = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.cellsWritten.WithLabelValues("sequential")); got != 6 {
		t.Errorf("sequential cells written = %v, want 6", got)
	}
	if got := testutil.ToFloat64(m.cellsWritten.WithLabelValues("parallel")); got != 6 {
		t.Errorf("failed run should not overwrite cells written, got %v", got)
	}
}

func TestAddMismatches(t *testing.T) {
	t.Parallel()
	m := New()
	m.AddMismatches("parallel", 3)
	m.AddMismatches("parallel", 2)
	if got := testutil.ToFloat64(m.mismatches.WithLabelValues("parallel")); got != 5 {
		t.Errorf("mismatches = %v, want 5", got)
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestWriteText_WriterError(t *testing.T) {
	t.Parallel()
	m := New()
	m.ObserveRun("sequential", time.Millisecond, 6, nil)

	errFull := errors.New("disk full")
	err := m.WriteText(failingWriter{err: errFull})
	if !errors.Is(err, errFull) {
		t.Fatalf("WriteText error = %v, want it to wrap %v", err, errFull)
	}
	if !strings.Contains(err.Error(), "write metric family") {
		t.Errorf("error %q should name the failing family", err.Error())
	}
}

func TestWriteText(t *testing.T) {
	t.Parallel()
	m := New()
	m.ObserveRun("sequential", time.Millisecond, 6, nil)

	var buf bytes.Buffer
	if err := m.WriteText(&buf); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	body := buf.String()
	for _, want := range []string{
		"stencilcalc_runs_total",
		"stencilcalc_run_duration_seconds_bucket",
		"stencilcalc_cells_written",
		`strategy="sequential"`,
		"go_goroutines",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics output should contain %q", want)
		}
	}
}
