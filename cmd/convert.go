package cmd

import (
	"context"

	"github.com/nikogura/cv-templater/pkg/cv"
	"github.com/nikogura/cv-templater/pkg/renderer"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var convertFormat string

//nolint:gochecknoglobals // Cobra boilerplate
var convertOutput string

//nolint:gochecknoglobals // Cobra boilerplate
var convertAll bool

//nolint:gochecknoglobals // Cobra boilerplate
var convertCmd = &cobra.Command{
	Use:   "convert [cv.md]",
	Short: "Convert a CV to PDF, DOCX or HTML with pandoc",
	Long: `Convert runs pandoc on CV markdown files.

PDF engines are tried in the configured order (default weasyprint,
wkhtmltopdf, prince, pdflatex, xelatex). When none works the CV is converted
to standalone HTML instead. DOCX output uses the configured reference document
and HTML output the configured stylesheet when those files exist.

Example:
  cv-templater convert cv_templates/jane.md
  cv-templater convert cv_templates/jane.md -f docx
  cv-templater convert cv_templates/jane.md -o resume.pdf
  cv-templater convert --all -f docx`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "pdf", "Output format: pdf, docx, or html")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output file path")
	convertCmd.Flags().BoolVar(&convertAll, "all", false, "Convert every CV in the templates directory")
}

func runConvert(cmd *cobra.Command, args []string) (err error) {
	ctx := contextOf(cmd)

	err = validateInputArgs(args, convertAll, convertOutput)
	if err != nil {
		return err
	}

	var format renderer.Format
	format, err = renderer.ParseFormat(convertFormat)
	if err != nil {
		return err
	}

	opts := renderer.ConvertOptions{
		OutputPath:   convertOutput,
		OutputDir:    appConfig.OutputDir,
		Format:       format,
		PDFEngines:   appConfig.Pandoc.PDFEngines,
		ReferenceDoc: appConfig.Pandoc.ReferenceDoc,
		CSS:          appConfig.Pandoc.CSS,
	}

	if convertAll {
		err = convertDirectory(ctx, appConfig.TemplatesDir, opts)
		return err
	}

	opts.InputPath = args[0]

	if getVerbose() {
		infof("Converting %s to %s\n", opts.InputPath, format)
	}

	var result renderer.ConvertResult
	result, err = renderer.Convert(ctx, opts)
	if err != nil {
		failf("❌ Conversion failed: %v\n", err)
		return err
	}

	reportConversion(format, result)
	return err
}

func convertDirectory(ctx context.Context, dir string, opts renderer.ConvertOptions) (err error) {
	var paths []string
	paths, err = cv.MarkdownFiles(dir)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		warnf("No markdown files found in '%s' (run 'cv-templater sample' to create one)\n", dir)
		return err
	}

	infof("Found %d CV files to convert to %s\n", len(paths), opts.Format)

	progress, finish := batchProgress(len(paths), "Converting")
	var results []renderer.FileResult
	results, err = renderer.ConvertAll(ctx, paths, opts, progress)
	finish()

	if err != nil {
		return err
	}

	reportBatch(results)
	return err
}

func reportConversion(requested renderer.Format, result renderer.ConvertResult) {
	if result.Format != requested {
		warnf("No PDF engine found, converted to %s instead\n", result.Format)
	} else if result.Engine != "" && getVerbose() {
		infof("Using PDF engine: %s\n", result.Engine)
	}
	successf("✅ Successfully converted to: %s\n", result.OutputPath)
}
