package cmd

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"sweeper/internal/classify"
	"sweeper/internal/config"
	"sweeper/internal/platform"
	"sweeper/internal/procs"
	"sweeper/internal/review"
	"sweeper/internal/scan"
	"sweeper/internal/suggest"
)

// scanResult bundles everything one scan pass produces.
type scanResult struct {
	prof     platform.Profile
	opts     config.Options
	snap     *procs.Snapshot
	records  []classify.Classified
	warnings []string
	scanned  int64
}

// interactive reports whether stdout is a terminal.
func interactive() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// runPipeline loads config, snapshots running processes, walks the
// enabled roots, and classifies everything found. With a TTY a spinner
// shows live progress; otherwise the scan runs silently.
func runPipeline(ctx context.Context) (*scanResult, error) {
	opts, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	prof := platform.Detect()
	if prof.IsAdmin() {
		fmt.Fprintln(os.Stderr, "warning: running elevated; be careful with overrides")
	}

	roots := opts.ScanRoots(prof)
	if len(roots) == 0 {
		return nil, fmt.Errorf("no scan roots are enabled or present")
	}

	snap := procs.Capture(ctx, prof)

	conc := opts.Concurrency
	if conc <= 0 {
		conc = platform.Concurrency()
	}
	w := scan.NewWalker(conc, opts.Exclude)
	w.OpenLookup = snap.IsOpen

	var recs []scan.Record
	var walkErr error
	if interactive() {
		done := make(chan struct{})
		go func() {
			recs, walkErr = w.Walk(ctx, roots)
			close(done)
		}()
		prog := tea.NewProgram(review.NewProgress("Scanning", w.Scanned, done))
		if _, err := prog.Run(); err != nil {
			return nil, err
		}
		<-done
	} else {
		recs, walkErr = w.Walk(ctx, roots)
	}
	if walkErr != nil {
		return nil, walkErr
	}

	res := &scanResult{
		prof:     prof,
		opts:     opts,
		snap:     snap,
		records:  classify.All(recs, prof, snap),
		warnings: w.Warnings(),
		scanned:  w.Scanned(),
	}

	if debug {
		for _, warn := range res.warnings {
			fmt.Fprintln(os.Stderr, "warning:", warn)
		}
	}
	return res, nil
}

func newEngine(res *scanResult) *suggest.Engine {
	return suggest.NewEngine(res.prof, res.opts.Thresholds())
}
