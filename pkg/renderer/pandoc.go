package renderer

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Format is a pandoc output format.
type Format string

const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatHTML Format = "html"
)

// DefaultPDFEngines is the order in which PDF engines are tried.
//
//nolint:gochecknoglobals // Engine preference list
var DefaultPDFEngines = []string{"weasyprint", "wkhtmltopdf", "prince", "pdflatex", "xelatex"}

// ParseFormat validates a format name.
func ParseFormat(name string) (format Format, err error) {
	switch Format(strings.ToLower(name)) {
	case FormatPDF, FormatDOCX, FormatHTML:
		format = Format(strings.ToLower(name))
	default:
		err = errors.Errorf("unsupported format %q: must be pdf, docx, or html", name)
	}
	return format, err
}

// ConvertOptions describes a single pandoc conversion.
type ConvertOptions struct {
	InputPath    string
	OutputPath   string // empty: <OutputDir>/<format>/<stem>.<format>
	OutputDir    string
	Format       Format
	PDFEngines   []string
	ReferenceDoc string // used for docx when the file exists
	CSS          string // used for html when the file exists
}

// ConvertResult reports what a conversion actually produced. Format differs
// from the requested one when no PDF engine was usable.
type ConvertResult struct {
	OutputPath string
	Format     Format
	Engine     string
}

// Convert runs pandoc on a CV markdown file.
func Convert(ctx context.Context, opts ConvertOptions) (result ConvertResult, err error) {
	err = checkPandocExists(ctx)
	if err != nil {
		return result, err
	}

	err = validateFiles(opts.InputPath)
	if err != nil {
		return result, err
	}

	result.Format = opts.Format
	result.OutputPath = opts.OutputPath
	if result.OutputPath == "" {
		result.OutputPath = DefaultOutputPath(opts.OutputDir, opts.Format, opts.InputPath)
	}

	if opts.Format == FormatPDF {
		engines := opts.PDFEngines
		if len(engines) == 0 {
			engines = DefaultPDFEngines
		}
		result.Engine = findPDFEngine(ctx, engines)
		if result.Engine == "" {
			result.Format = FormatHTML
			result.OutputPath = strings.TrimSuffix(result.OutputPath, filepath.Ext(result.OutputPath)) + ".html"
		}
	}

	outputDir := filepath.Dir(result.OutputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return result, err
	}

	args := []string{"-f", "markdown", "-t", string(result.Format), "-o", result.OutputPath}
	args = append(args, formatArgs(result.Format, result.Engine, opts.ReferenceDoc, opts.CSS)...)
	args = append(args, opts.InputPath)

	cmd := exec.CommandContext(ctx, "pandoc", args...)

	var output []byte
	output, err = cmd.CombinedOutput()
	if err != nil {
		err = errors.Wrapf(err, "pandoc failed: %s", string(output))
		return result, err
	}

	return result, err
}

// DefaultOutputPath places output under <outputDir>/<format>/ named after the
// input file.
func DefaultOutputPath(outputDir string, format Format, inputPath string) (path string) {
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	path = filepath.Join(outputDir, string(format), stem+"."+string(format))
	return path
}

// formatArgs returns the extra pandoc flags for a format. engine is only used
// for pdf.
func formatArgs(format Format, engine, referenceDoc, css string) (args []string) {
	args = make([]string, 0)

	switch format {
	case FormatPDF:
		args = append(args,
			"--pdf-engine="+engine,
			"-V", "geometry:margin=2cm",
			"-V", "fontsize=11pt",
		)
		if engine == "pdflatex" || engine == "xelatex" {
			args = append(args, "-V", "mainfont=DejaVu Sans")
		}
		args = append(args, "--highlight-style=tango")

	case FormatDOCX:
		if fileExists(referenceDoc) {
			args = append(args, "--reference-doc="+referenceDoc)
		}

	case FormatHTML:
		args = append(args, "--standalone")
		if fileExists(css) {
			args = append(args, "--css="+css)
		}
	}

	return args
}

// findPDFEngine returns the first engine that is on PATH and can render a
// trial document, or "" when none can.
func findPDFEngine(ctx context.Context, engines []string) (engine string) {
	for _, candidate := range engines {
		_, err := exec.LookPath(candidate)
		if err != nil {
			continue
		}

		if trialPDF(ctx, candidate) == nil {
			engine = candidate
			return engine
		}
	}
	return engine
}

func trialPDF(ctx context.Context, engine string) (err error) {
	var tmp *os.File
	tmp, err = os.CreateTemp("", "cv-templater-*.pdf")
	if err != nil {
		err = errors.Wrap(err, "failed to create trial output")
		return err
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(tmpPath)

	cmd := exec.CommandContext(ctx, "pandoc", "-f", "markdown", "-t", "pdf", "-o", tmpPath, "--pdf-engine="+engine)
	cmd.Stdin = strings.NewReader("Test")

	var output []byte
	output, err = cmd.CombinedOutput()
	if err != nil {
		err = errors.Wrapf(err, "engine %s failed: %s", engine, string(output))
		return err
	}

	return err
}

// checkPandocExists verifies pandoc is installed.
func checkPandocExists(ctx context.Context) (err error) {
	cmd := exec.CommandContext(ctx, "pandoc", "--version")
	err = cmd.Run()
	if err != nil {
		err = errors.New("pandoc not found in PATH (install pandoc to convert CVs)")
		return err
	}
	return err
}

// validateFiles checks that required files exist.
func validateFiles(paths ...string) (err error) {
	for _, path := range paths {
		_, err = os.Stat(path)
		if os.IsNotExist(err) {
			err = errors.Errorf("file not found: %s", path)
			return err
		}
		if err != nil {
			err = errors.Wrapf(err, "failed to stat %s", path)
			return err
		}
	}
	return err
}

func fileExists(path string) (exists bool) {
	if path == "" {
		return exists
	}
	_, err := os.Stat(path)
	exists = err == nil
	return exists
}
