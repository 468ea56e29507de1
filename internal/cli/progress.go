package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/briandowns/spinner"

	"github.com/agbru/stencilcalc/internal/orchestration"
	"github.com/agbru/stencilcalc/internal/ui"
)

// CLIProgressReporter shows a spinner while strategies run.
type CLIProgressReporter struct{}

var _ orchestration.ProgressReporter = CLIProgressReporter{}

// DisplayProgress implements orchestration.ProgressReporter.
func (CLIProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numStrategies int, out io.Writer) {
	DisplayProgress(wg, progressChan, numStrategies, out)
}

// DisplayProgress drives a spinner from progressChan until it is closed,
// then prints a completion line.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numStrategies int, out io.Writer) {
	defer wg.Done()
	tracker := orchestration.NewProgressTracker(numStrategies)

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(progressSuffix(tracker))
	s.Start()
	for update := range progressChan {
		tracker.Update(update)
		s.UpdateSuffix(progressSuffix(tracker))
	}
	s.Stop()

	color := ui.ColorSuccess()
	if tracker.Failed() > 0 {
		color = ui.ColorWarning()
	}
	fmt.Fprintf(out, "%s%d/%d strategies finished%s\n", color, tracker.Done(), tracker.Total(), ui.ColorReset())
}

func progressSuffix(t *orchestration.ProgressTracker) string {
	suffix := fmt.Sprintf(" Averaging... %d/%d strategies done", t.Done(), t.Total())
	if t.Failed() > 0 {
		suffix += fmt.Sprintf(" (%d failed)", t.Failed())
	}
	return suffix
}
