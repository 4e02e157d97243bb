package cmd

import (
	"os"
	"path/filepath"

	"github.com/nikogura/cv-templater/pkg/config"
	"github.com/nikogura/cv-templater/pkg/cv"
	"github.com/nikogura/cv-templater/pkg/renderer"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var sampleDir string

//nolint:gochecknoglobals // Cobra boilerplate
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a config file, workspace directories and a sample CV",
	Long: `Init writes a default config file (unless one exists), creates the
cv_templates/ directory and output/{pdf,docx,html}, and writes a sample CV.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipSetup: "true"},
	RunE:        runInit,
}

//nolint:gochecknoglobals // Cobra boilerplate
var sampleCmd = &cobra.Command{
	Use:         "sample",
	Short:       "Write a sample CV",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{skipSetup: "true"},
	RunE:        runSample,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(sampleCmd)
	sampleCmd.Flags().StringVar(&sampleDir, "dir", "cv_templates", "Directory to write the sample CV into")
}

func runInit(cmd *cobra.Command, args []string) (err error) {
	var path string
	path, err = config.InitConfig(getConfigFile())
	if err != nil {
		warnf("%v\n", err)
	} else {
		successf("📝 Created config: %s\n", path)
	}

	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	err = createWorkspace(cfg)
	if err != nil {
		return err
	}

	var samplePath string
	samplePath, err = cv.WriteSample(cfg.TemplatesDir)
	if err != nil {
		return err
	}

	successf("📝 Sample CV: %s\n", samplePath)
	return err
}

func runSample(cmd *cobra.Command, args []string) (err error) {
	var path string
	path, err = cv.WriteSample(sampleDir)
	if err != nil {
		return err
	}

	successf("📝 Sample CV: %s\n", path)
	return err
}

// createWorkspace makes the templates directory and one output directory
// per format.
func createWorkspace(cfg config.Config) (err error) {
	dirs := []string{cfg.TemplatesDir}
	for _, format := range []renderer.Format{renderer.FormatPDF, renderer.FormatDOCX, renderer.FormatHTML} {
		dirs = append(dirs, filepath.Join(cfg.OutputDir, string(format)))
	}

	for _, dir := range dirs {
		_, statErr := os.Stat(dir)
		if statErr == nil {
			continue
		}

		err = os.MkdirAll(dir, 0750)
		if err != nil {
			err = errors.Wrapf(err, "failed to create directory: %s", dir)
			return err
		}

		if getVerbose() {
			infof("Created directory: %s\n", dir)
		}
	}

	return err
}
