package orchestration

import "github.com/agbru/stencilcalc/internal/stencil"

// GetStrategiesToRun determines which strategies should be executed for the
// given selection. "all" returns every registered strategy in alphabetical
// order; an unknown name yields nil.
func GetStrategiesToRun(algo string, factory stencil.Factory) []stencil.Averager {
	if algo == "all" {
		names := factory.List()
		averagers := make([]stencil.Averager, 0, len(names))
		for _, name := range names {
			if a, err := factory.Get(name); err == nil {
				averagers = append(averagers, a)
			}
		}
		return averagers
	}
	if a, err := factory.Get(algo); err == nil {
		return []stencil.Averager{a}
	}
	return nil
}
