package orchestration

// ProgressUpdate reports that one strategy has finished.
type ProgressUpdate struct {
	// StrategyIndex is the position of the strategy in the executed slice.
	StrategyIndex int
	// Name is the strategy name.
	Name string
	// Err is the strategy's error, nil on success.
	Err error
}

// ProgressTracker counts finished strategies. It is not safe for concurrent
// use; reporters own one each.
type ProgressTracker struct {
	finished []bool
	failed   int
	done     int
}

// NewProgressTracker returns a tracker for numStrategies strategies.
func NewProgressTracker(numStrategies int) *ProgressTracker {
	return &ProgressTracker{finished: make([]bool, max(numStrategies, 0))}
}

// Update records u. Duplicate or out-of-range updates are ignored.
func (p *ProgressTracker) Update(u ProgressUpdate) {
	if u.StrategyIndex < 0 || u.StrategyIndex >= len(p.finished) || p.finished[u.StrategyIndex] {
		return
	}
	p.finished[u.StrategyIndex] = true
	p.done++
	if u.Err != nil {
		p.failed++
	}
}

// Done returns the number of finished strategies.
func (p *ProgressTracker) Done() int { return p.done }

// Failed returns the number of strategies that finished with an error.
func (p *ProgressTracker) Failed() int { return p.failed }

// Total returns the number of tracked strategies.
func (p *ProgressTracker) Total() int { return len(p.finished) }

// Fraction returns the finished share in [0, 1]. An empty tracker is
// complete.
func (p *ProgressTracker) Fraction() float64 {
	if len(p.finished) == 0 {
		return 1
	}
	return float64(p.done) / float64(len(p.finished))
}
