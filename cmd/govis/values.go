package main

import (
	"github.com/shandysiswandi/govis/internal/visual/usecase"
	"github.com/spf13/cobra"
)

func newValuesCmd(g *globalFlags) *cobra.Command {
	var column string

	cmd := &cobra.Command{
		Use:   "values <file>",
		Short: "List the distinct values of a column, in order of appearance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := readUpload(args[0])
			if err != nil {
				return err
			}

			result, err := usecase.New(usecase.Dependency{}).Values(cmd.Context(), usecase.ValuesInput{
				File:   file,
				Column: column,
			})
			if err != nil {
				return err
			}

			return encode(cmd.OutOrStdout(), g.output, result)
		},
	}

	cmd.Flags().StringVarP(&column, "column", "c", "", "column to list")
	_ = cmd.MarkFlagRequired("column")

	return cmd
}
