package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/makechair/text-analyzer/internal/core/domain"
	"github.com/makechair/text-analyzer/internal/core/ports/driving"
	"github.com/makechair/text-analyzer/internal/logger"
)

var watchCmd = &cobra.Command{
	Use:   "watch [path]",
	Short: "Re-analyse a document whenever it changes",
	Long: `Analyse a document, then watch it and analyse it again each time it is
saved. A summary line is printed after every run.

Changes that arrive while an analysis is running, or sooner than
--interval after the previous run, are not queued: the file is analysed
once more after the run finishes or the interval passes. A failed run
keeps the last good result.

Press Ctrl+C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

// watchInterval overrides watch.interval_ms when set.
var watchInterval time.Duration

func init() {
	watchCmd.Flags().DurationVarP(&watchInterval, "interval", "i", 0, "minimum time between runs (default from settings)")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if analysisService == nil {
		return errors.New("analysis service not configured")
	}
	if documentService == nil {
		return errors.New("document service not configured")
	}
	if fileWatcher == nil {
		return errors.New("file watcher not configured")
	}

	path := args[0]
	ctx, stop := signal.NotifyContext(commandContext(cmd), os.Interrupt)
	defer stop()

	w := &watchLoop{cmd: cmd, path: path}
	if err := w.report(w.analyse(ctx)); err != nil {
		cmd.PrintErrf("Error: %v\n", err)
	}

	changes, errs, err := fileWatcher.Watch(ctx, path)
	if err != nil {
		return fmt.Errorf("watching %s: %w", path, err)
	}
	cmd.Printf("Watching %s\n", path)

	return w.run(ctx, changes, errs, rate.NewLimiter(rate.Every(resolveWatchInterval()), 1))
}

func resolveWatchInterval() time.Duration {
	if watchInterval > 0 {
		return watchInterval
	}
	if settingsService != nil {
		if s, err := settingsService.Get(); err == nil && s.Watch.IntervalMS > 0 {
			return time.Duration(s.Watch.IntervalMS) * time.Millisecond
		}
	}
	return time.Duration(domain.DefaultAppSettings().Watch.IntervalMS) * time.Millisecond
}

// watchLoop re-analyses one file as change events arrive.
// A change during its own run or within the interval marks the file
// dirty, and the file is analysed once more when the run finishes or the
// interval passes.
type watchLoop struct {
	cmd  *cobra.Command
	path string

	pending <-chan driving.AnalysisOutcome
	retry   <-chan time.Time
	dirty   bool
}

func (w *watchLoop) run(
	ctx context.Context,
	changes <-chan domain.FileChange,
	errs <-chan error,
	limiter *rate.Limiter,
) error {
	for {
		if changes == nil && w.pending == nil && w.retry == nil {
			return nil
		}

		select {
		case <-ctx.Done():
			return nil

		case change, ok := <-changes:
			if !ok {
				changes = nil
				continue
			}
			if change.Type == domain.ChangeDeleted {
				w.cmd.Printf("%s was removed, keeping last result\n", w.path)
				continue
			}
			if w.pending != nil {
				w.dirty = true
				continue
			}
			w.trigger(ctx, limiter)

		case outcome := <-w.pending:
			w.pending = nil
			if err := w.report(outcome); err != nil {
				w.cmd.PrintErrf("Error: %v (keeping last result)\n", err)
			}
			if w.dirty {
				w.trigger(ctx, limiter)
			}

		case <-w.retry:
			w.retry = nil
			if w.dirty && w.pending == nil {
				w.trigger(ctx, limiter)
			}

		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logger.Warn("watch: %v", err)
		}
	}
}

// trigger starts a run when the limiter allows it, and otherwise leaves
// the file dirty until the interval has passed. A run started elsewhere
// does not wait; the change is skipped.
func (w *watchLoop) trigger(ctx context.Context, limiter *rate.Limiter) {
	if analysisService.Busy() {
		w.dirty = false
		w.cmd.Println("Analysis already running, change skipped")
		return
	}
	r := limiter.Reserve()
	if d := r.Delay(); d > 0 {
		r.Cancel()
		logger.Debug("watch: change to %s within interval, re-checking in %s", w.path, d)
		w.dirty = true
		if w.retry == nil {
			w.retry = time.After(d)
		}
		return
	}
	w.dirty = false
	w.pending = w.start(ctx)
}

// analyse runs one synchronous analysis of the watched file.
func (w *watchLoop) analyse(ctx context.Context) driving.AnalysisOutcome {
	return <-w.start(ctx)
}

// start loads the file and begins an asynchronous run.
func (w *watchLoop) start(ctx context.Context) <-chan driving.AnalysisOutcome {
	doc, err := documentService.Load(ctx, w.path)
	if err != nil {
		ch := make(chan driving.AnalysisOutcome, 1)
		ch <- driving.AnalysisOutcome{Err: fmt.Errorf("loading %s: %w", w.path, err)}
		close(ch)
		return ch
	}
	return analysisService.AnalyzeAsync(ctx, driving.AnalyzeRequest{Text: doc.Content, Source: w.path})
}

func (w *watchLoop) report(outcome driving.AnalysisOutcome) error {
	if outcome.Err != nil {
		return outcome.Err
	}
	w.cmd.Printf("[%s] %s: %s\n", outcome.Result.CreatedAt.Format("15:04:05"), w.path, summaryLine(outcome.Result))
	return nil
}
