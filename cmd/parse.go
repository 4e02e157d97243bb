package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/nikogura/cv-templater/pkg/cv"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var parseCmd = &cobra.Command{
	Use:         "parse <cv.md>",
	Short:       "Print the parsed structure of a CV as JSON",
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{skipSetup: "true"},
	RunE:        runParse,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) (err error) {
	var doc cv.Document
	doc, err = cv.ParseFile(args[0])
	if err != nil {
		return err
	}

	var data []byte
	data, err = json.MarshalIndent(doc, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal parsed CV")
		return err
	}

	fmt.Println(string(data))
	return err
}
