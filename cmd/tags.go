package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

//nolint:gochecknoglobals // Cobra boilerplate
var tagsDump bool

//nolint:gochecknoglobals // Cobra boilerplate
var tagsCmd = &cobra.Command{
	Use:   "tags [technology...]",
	Short: "Show which tag class each technology gets",
	Long: `Tags classifies technology names against the loaded tag table. Matching
is a case-insensitive substring test and the first class in table order wins.

Example:
  cv-templater tags ReactJS Cobol "Amazon Web Services"
  cv-templater tags --dump --tags techTags.json`,
	RunE: runTags,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(tagsCmd)
	tagsCmd.Flags().BoolVar(&tagsDump, "dump", false, "Print the loaded tag table as JSON")
}

func runTags(cmd *cobra.Command, args []string) (err error) {
	if tagsDump {
		var data []byte
		data, err = json.MarshalIndent(tagTable, "", "  ")
		if err != nil {
			err = errors.Wrap(err, "failed to marshal tag table")
			return err
		}
		fmt.Println(string(data))
		return err
	}

	if len(args) == 0 {
		err = errors.New("at least one technology name is required (or use --dump)")
		return err
	}

	for _, tech := range args {
		entry := tagTable.Classify(tech)
		fmt.Printf("%-24s %-12s background: %s; color: %s\n", tech, entry.ClassName, entry.BackgroundColor, entry.TextColor)
	}

	return err
}
