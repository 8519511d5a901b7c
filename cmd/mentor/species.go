package main

import (
	"github.com/spf13/cobra"

	"github.com/JaimeStill/mentor/internal/knowledge"
	"github.com/JaimeStill/mentor/internal/report"
)

// NewSpeciesCmd creates the species command, which lists the classes the
// prediction service can return.
func NewSpeciesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "species",
		Short: "List the identifiable species",
		Long: `List every species the prediction service can return, ordered by class ID.

Examples:
  mentor species
  mentor species --format markdown > species.md`,
		Args: cobra.NoArgs,
		RunE: runSpeciesCmd,
	}

	cmd.Flags().StringP("format", "f", string(report.FormatText), "Output format: text, markdown, or json")

	return cmd
}

func runSpeciesCmd(cmd *cobra.Command, _ []string) error {
	w, err := reportWriter(cmd)
	if err != nil {
		return err
	}
	return w.WriteCatalog(knowledge.Catalog())
}

func reportWriter(cmd *cobra.Command) (report.Writer, error) {
	name, err := cmd.Flags().GetString("format")
	if err != nil {
		return nil, err
	}
	format, err := report.ParseFormat(name)
	if err != nil {
		return nil, err
	}
	return report.New(format, cmd.OutOrStdout())
}
