package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/nikogura/cv-templater/pkg/renderer"
	"github.com/schollz/progressbar/v3"
)

//nolint:gochecknoglobals // Console styles
var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	failColor    = color.New(color.FgRed)
)

func successf(format string, a ...interface{}) {
	_, _ = successColor.Printf(format, a...)
}

func warnf(format string, a ...interface{}) {
	_, _ = warnColor.Fprintf(os.Stderr, "Warning: "+format, a...)
}

func failf(format string, a ...interface{}) {
	_, _ = failColor.Fprintf(os.Stderr, format, a...)
}

func infof(format string, a ...interface{}) {
	fmt.Printf(format, a...)
}

// newProgressBar returns a bar for a batch of total files.
func newProgressBar(total int, description string) (bar *progressbar.ProgressBar) {
	bar = progressbar.NewOptions(total,
		progressbar.OptionSetDescription(color.BlueString(description)),
		progressbar.OptionSetItsString("files"),
		progressbar.OptionShowCount(),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionSetRenderBlankState(true),
		progressbar.OptionOnCompletion(func() {
			fmt.Println()
		}),
	)
	return bar
}

// batchProgress returns a per-file callback: one line per file in verbose
// mode, a progress bar otherwise. Failures are always reported.
func batchProgress(total int, description string) (progress func(renderer.FileResult), finish func()) {
	if getVerbose() {
		progress = func(r renderer.FileResult) {
			if r.Err != nil {
				failf("❌ %s: %v\n", r.InputPath, r.Err)
				return
			}
			successf("✅ %s -> %s\n", r.InputPath, r.OutputPath)
		}
		finish = func() {}
		return progress, finish
	}

	bar := newProgressBar(total, description)
	var failures []renderer.FileResult
	progress = func(r renderer.FileResult) {
		if r.Err != nil {
			failures = append(failures, r)
		}
		_ = bar.Add(1)
	}
	finish = func() {
		_ = bar.Finish()
		for _, r := range failures {
			failf("❌ %s: %v\n", r.InputPath, r.Err)
		}
	}
	return progress, finish
}

// reportBatch prints the batch summary line.
func reportBatch(results []renderer.FileResult) {
	summary := renderer.Summarize(results)
	if summary.Failed > 0 {
		warnf("%d of %d files failed\n", summary.Failed, summary.Total())
	}
	successf("\n🎉 Successfully processed %d/%d files\n", summary.Succeeded, summary.Total())
}
