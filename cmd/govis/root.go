package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shandysiswandi/govis/internal/pkg/pkglog"
	"github.com/shandysiswandi/govis/internal/visual/entity"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	logLevel string
	output   string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	g := &globalFlags{}

	root := &cobra.Command{
		Use:           "govis",
		Short:         "Preview tabular datasets and render charts from them",
		Long:          "govis loads a CSV, Excel or JSON dataset, previews it and renders scatter, line, bar, histogram or box charts from two of its columns.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if g.output != "json" && g.output != "yaml" {
				return fmt.Errorf("unsupported --output %q (use json|yaml)", g.output)
			}
			pkglog.InitLogging(pkglog.Options{
				Level:   g.logLevel,
				Format:  "text",
				Service: "govis-cli",
				Writer:  stderr,
			})
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "log level (debug|info|warn|error)")
	root.PersistentFlags().StringVarP(&g.output, "output", "o", "json", "structured output encoding (json|yaml)")

	root.AddCommand(
		newInspectCmd(g),
		newValuesCmd(g),
		newRenderCmd(g),
		newTypesCmd(g),
	)

	return root
}

func readUpload(path string) (entity.UploadedFile, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return entity.UploadedFile{}, err
	}
	return entity.UploadedFile{Name: filepath.Base(path), Content: content}, nil
}
