package main

import (
	"github.com/shandysiswandi/govis/internal/visual/entity"
	"github.com/spf13/cobra"
)

type chartTypeRow struct {
	Type  entity.ChartType `json:"type"`
	Label string           `json:"label"`
	NeedY bool             `json:"needs_y"`
}

func newTypesCmd(g *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List the supported chart types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rows := make([]chartTypeRow, 0, len(entity.ChartTypes()))
			for _, t := range entity.ChartTypes() {
				rows = append(rows, chartTypeRow{Type: t, Label: t.Label(), NeedY: t.NeedsY()})
			}
			return encode(cmd.OutOrStdout(), g.output, rows)
		},
	}
}
