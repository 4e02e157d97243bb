package cmd

import (
	"context"
	"os"

	"github.com/nikogura/cv-templater/pkg/config"
	"github.com/nikogura/cv-templater/pkg/tags"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// skipSetup marks commands that run without loading config and tag table.
const skipSetup = "skip-setup"

//nolint:gochecknoglobals // Cobra boilerplate
var verbose bool

//nolint:gochecknoglobals // Cobra boilerplate
var configFile string

//nolint:gochecknoglobals // Cobra boilerplate
var tagsSource string

//nolint:gochecknoglobals // Loaded once in PersistentPreRunE
var appConfig config.Config

//nolint:gochecknoglobals // Loaded once in PersistentPreRunE
var tagTable tags.Table

//nolint:gochecknoglobals // Cobra boilerplate
var rootCmd = &cobra.Command{
	Use:   "cv-templater",
	Short: "Turn markdown CVs into styled HTML, PDF and DOCX",
	Long: `cv-templater parses CVs written in a small heading-based markdown grammar
and renders them as a styled, self-contained HTML page with colored
technology tags. It can also convert CVs to PDF, DOCX or HTML with pandoc.

Grammar:
  # Name
  ## Position
  ### contact line containing an @
  ## About | ## Skills | ## Work Experience | ## Projects | ## Education | ## Certifications`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

// Execute runs the root command.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.cv-templater/config.json)")
	rootCmd.PersistentFlags().StringVar(&tagsSource, "tags", "", "tag table file or URL (overrides tags_source)")
}

// setup loads configuration and the tag table once for the process. A tag
// table that cannot be loaded is replaced by the built-in one.
func setup(cmd *cobra.Command, args []string) (err error) {
	if cmd.Annotations[skipSetup] == "true" {
		return err
	}

	appConfig, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	source := appConfig.TagsSource
	if tagsSource != "" {
		source = tagsSource
	}

	var loadErr error
	tagTable, loadErr = tags.LoadOrDefault(contextOf(cmd), source)
	if loadErr != nil {
		warnf("Could not load tag table, using built-in tags: %v\n", loadErr)
	} else if getVerbose() && source != "" {
		infof("Loaded %d tag classes from: %s\n", tagTable.Len(), source)
	}

	return err
}

func contextOf(cmd *cobra.Command) (ctx context.Context) {
	ctx = cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	return ctx
}

// getVerbose returns the verbose flag value.
func getVerbose() (result bool) {
	result = verbose
	return result
}

// getConfigFile returns the config file path.
func getConfigFile() (result string) {
	result = configFile
	return result
}
