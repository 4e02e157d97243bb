package cmd

import (
	"context"
	"path/filepath"

	"github.com/nikogura/cv-templater/pkg/cv"
	"github.com/nikogura/cv-templater/pkg/renderer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var renderOutput string

//nolint:gochecknoglobals // Cobra boilerplate
var renderPhoto string

//nolint:gochecknoglobals // Cobra boilerplate
var renderAll bool

//nolint:gochecknoglobals // Cobra boilerplate
var renderCmd = &cobra.Command{
	Use:   "render [cv.md]",
	Short: "Render a CV as a self-contained HTML page",
	Long: `Render parses a CV markdown file, tags every listed technology with a
colored label, and writes a single HTML file with the stylesheet and profile
photo embedded.

The default output is <output_dir>/html/<name>.html.

Example:
  cv-templater render cv_templates/jane.md
  cv-templater render cv_templates/jane.md -o jane.html --photo me.jpg
  cv-templater render --all --tags techTags.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVarP(&renderOutput, "output", "o", "", "Output file path")
	renderCmd.Flags().StringVar(&renderPhoto, "photo", "", "Profile photo to embed (default from config)")
	renderCmd.Flags().BoolVar(&renderAll, "all", false, "Render every CV in the templates directory")
}

func runRender(cmd *cobra.Command, args []string) (err error) {
	ctx := contextOf(cmd)

	err = validateInputArgs(args, renderAll, renderOutput)
	if err != nil {
		return err
	}

	photoPath := renderPhoto
	if photoPath == "" {
		photoPath = appConfig.PhotoPath
	}

	var photo renderer.Photo
	photo, err = renderer.LoadPhoto(photoPath)
	if err != nil {
		err = errors.Wrap(err, "failed to load profile photo")
		return err
	}

	opts := renderer.Options{Photo: photo}

	if renderAll {
		err = renderDirectory(ctx, appConfig.TemplatesDir, opts)
		return err
	}

	outputPath := renderOutput
	if outputPath == "" {
		outputPath = renderer.DefaultOutputPath(appConfig.OutputDir, renderer.FormatHTML, args[0])
	}

	if getVerbose() {
		infof("Rendering %s\n", args[0])
	}

	err = renderer.ExportFile(args[0], outputPath, tagTable, opts)
	if err != nil {
		failf("❌ Rendering failed: %v\n", err)
		return err
	}

	successf("✅ CV saved at: %s\n", outputPath)
	return err
}

func renderDirectory(ctx context.Context, dir string, opts renderer.Options) (err error) {
	var paths []string
	paths, err = cv.MarkdownFiles(dir)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		warnf("No markdown files found in '%s' (run 'cv-templater sample' to create one)\n", dir)
		return err
	}

	infof("Found %d CV files to render\n", len(paths))

	progress, finish := batchProgress(len(paths), "Rendering")
	var results []renderer.FileResult
	results, err = renderer.RunBatch(ctx, paths, func(_ context.Context, inputPath string) (outputPath string, err error) {
		outputPath = renderer.DefaultOutputPath(appConfig.OutputDir, renderer.FormatHTML, inputPath)
		err = renderer.ExportFile(inputPath, outputPath, tagTable, opts)
		return outputPath, err
	}, progress)
	finish()

	if err != nil {
		return err
	}

	reportBatch(results)
	return err
}

// validateInputArgs checks the single-file versus --all combinations shared
// by render and convert.
func validateInputArgs(args []string, all bool, output string) (err error) {
	switch {
	case all && len(args) > 0:
		err = errors.New("pass either a CV file or --all, not both")
	case all && output != "":
		err = errors.New("--output cannot be used with --all")
	case !all && len(args) == 0:
		err = errors.New("a CV file is required (or use --all)")
	case !all && filepath.Ext(args[0]) == "":
		err = errors.Errorf("expected a markdown file, got %s", args[0])
	}
	return err
}
