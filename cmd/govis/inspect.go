package main

import (
	"github.com/shandysiswandi/govis/internal/visual/usecase"
	"github.com/spf13/cobra"
)

func newInspectCmd(g *globalFlags) *cobra.Command {
	var (
		summary bool
		rows    int
	)

	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Show columns, a preview and optionally summary statistics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := readUpload(args[0])
			if err != nil {
				return err
			}

			uc := usecase.New(usecase.Dependency{PreviewRows: rows})
			result, err := uc.Inspect(cmd.Context(), usecase.InspectInput{File: file, Summary: summary})
			if err != nil {
				return err
			}

			return encode(cmd.OutOrStdout(), g.output, result)
		},
	}

	cmd.Flags().BoolVar(&summary, "summary", false, "include summary statistics per column")
	cmd.Flags().IntVar(&rows, "rows", 5, "number of preview rows")

	return cmd
}
