package renderer

import (
	"context"

	"github.com/nikogura/cv-templater/pkg/cv"
	"github.com/nikogura/cv-templater/pkg/tags"
	"github.com/pkg/errors"
)

// FileResult is the outcome of processing one file in a batch.
type FileResult struct {
	InputPath  string
	OutputPath string
	Err        error
}

// BatchSummary counts batch outcomes.
type BatchSummary struct {
	Succeeded int
	Failed    int
}

// Total returns the number of files processed.
func (s BatchSummary) Total() (n int) {
	n = s.Succeeded + s.Failed
	return n
}

// Summarize tallies a batch.
func Summarize(results []FileResult) (summary BatchSummary) {
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// RunBatch applies fn to each of paths in order, typically the listing from
// cv.MarkdownFiles. A failing file is recorded and the batch continues.
// progress, when non-nil, is called after each file.
func RunBatch(ctx context.Context, paths []string, fn func(ctx context.Context, inputPath string) (outputPath string, err error), progress func(FileResult)) (results []FileResult, err error) {
	results = make([]FileResult, 0, len(paths))
	for _, path := range paths {
		err = ctx.Err()
		if err != nil {
			err = errors.Wrap(err, "batch cancelled")
			return results, err
		}

		r := FileResult{InputPath: path}
		r.OutputPath, r.Err = fn(ctx, path)
		results = append(results, r)

		if progress != nil {
			progress(r)
		}
	}

	return results, err
}

// ConvertAll converts each CV markdown file in paths with pandoc. OutputPath
// in opts is ignored; each file goes to its default location.
func ConvertAll(ctx context.Context, paths []string, opts ConvertOptions, progress func(FileResult)) (results []FileResult, err error) {
	results, err = RunBatch(ctx, paths, func(ctx context.Context, inputPath string) (outputPath string, err error) {
		fileOpts := opts
		fileOpts.InputPath = inputPath
		fileOpts.OutputPath = ""

		var res ConvertResult
		res, err = Convert(ctx, fileOpts)
		outputPath = res.OutputPath
		return outputPath, err
	}, progress)
	return results, err
}

// ExportFile parses a CV markdown file and writes it as self-contained HTML.
func ExportFile(inputPath, outputPath string, table tags.Table, opts Options) (err error) {
	var doc cv.Document
	doc, err = cv.ParseFile(inputPath)
	if err != nil {
		return err
	}

	var html string
	html, err = ExportHTML(doc, table, opts)
	if err != nil {
		err = errors.Wrapf(err, "failed to export %s", inputPath)
		return err
	}

	err = WriteHTML(html, outputPath)
	return err
}
