package orchestration

import (
	"errors"
	"testing"
)

func TestProgressTracker(t *testing.T) {
	t.Parallel()
	p := NewProgressTracker(3)
	if p.Fraction() != 0 {
		t.Errorf("initial fraction = %v, want 0", p.Fraction())
	}

	p.Update(ProgressUpdate{StrategyIndex: 0})
	p.Update(ProgressUpdate{StrategyIndex: 0})
	p.Update(ProgressUpdate{StrategyIndex: 2, Err: errors.New("x")})
	p.Update(ProgressUpdate{StrategyIndex: 7})
	p.Update(ProgressUpdate{StrategyIndex: -1})

	if p.Done() != 2 {
		t.Errorf("Done() = %d, want 2", p.Done())
	}
	if p.Failed() != 1 {
		t.Errorf("Failed() = %d, want 1", p.Failed())
	}
	if p.Total() != 3 {
		t.Errorf("Total() = %d, want 3", p.Total())
	}
	if got, want := p.Fraction(), 2.0/3.0; got != want {
		t.Errorf("Fraction() = %v, want %v", got, want)
	}
}

func TestProgressTracker_Empty(t *testing.T) {
	t.Parallel()
	if got := NewProgressTracker(0).Fraction(); got != 1 {
		t.Errorf("empty tracker fraction = %v, want 1", got)
	}
}
