package orchestration

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/agbru/stencilcalc/internal/grid"
	"github.com/agbru/stencilcalc/internal/stencil"
)

// slowReporter drains the channel with a delay per update to simulate a
// sluggish terminal.
type slowReporter struct {
	delay time.Duration
	seen  int
}

func (r *slowReporter) DisplayProgress(wg *sync.WaitGroup, ch <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	for range ch {
		time.Sleep(r.delay)
		r.seen++
	}
}

// TestOrchestrationNoDeadlock_MixedBehaviors runs many strategies that
// succeed, fail and stall against a slow reporter and checks that execution
// returns.
func TestOrchestrationNoDeadlock_MixedBehaviors(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	const n = 24

	averagers := make([]stencil.Averager, 0, n)
	for i := range n {
		m := newMockAverager(ctrl, "mock")
		switch i % 3 {
		case 0:
			m.EXPECT().Average(gomock.Any(), gomock.Any()).Return(nil)
		case 1:
			m.EXPECT().Average(gomock.Any(), gomock.Any()).Return(errors.New("fail"))
		default:
			m.EXPECT().Average(gomock.Any(), gomock.Any()).DoAndReturn(func(src, dst *grid.Grid) error {
				time.Sleep(5 * time.Millisecond)
				return nil
			})
		}
		averagers = append(averagers, m)
	}

	reporter := &slowReporter{delay: time.Millisecond}
	done := make(chan []StrategyResult, 1)
	go func() {
		done <- ExecuteStrategies(context.Background(), averagers, grid.Sequence(testGeometry, 0), reporter, io.Discard)
	}()

	select {
	case results := <-done:
		if len(results) != n {
			t.Fatalf("got %d results, want %d", len(results), n)
		}
		if reporter.seen != n {
			t.Errorf("reporter saw %d updates, want %d", reporter.seen, n)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("ExecuteStrategies did not return: possible deadlock")
	}
}
