package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shandysiswandi/govis/internal/pkg/pkguid"
	"github.com/shandysiswandi/govis/internal/visual/entity"
	"github.com/shandysiswandi/govis/internal/visual/render"
	"github.com/shandysiswandi/govis/internal/visual/usecase"
	"github.com/spf13/cobra"
)

type renderFlags struct {
	chartType    string
	x, y         string
	filterColumn string
	filterValue  string
	filterNull   bool
	engine       string
	format       string
	width        int
	height       int
	out          string
}

func newRenderCmd(g *globalFlags) *cobra.Command {
	f := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Build a chart from two columns and write it as png, svg or json",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, ok := entity.ParseChartType(f.chartType)
			if !ok {
				return fmt.Errorf("unsupported --type %q", f.chartType)
			}
			format, ok := entity.ParseOutputFormat(f.format)
			if !ok {
				return fmt.Errorf("unsupported --format %q (use png|svg|json)", f.format)
			}

			renderer, err := render.New(f.engine, f.width, f.height)
			if err != nil {
				return err
			}
			ids, err := pkguid.NewSnowflake()
			if err != nil {
				return err
			}

			file, err := readUpload(args[0])
			if err != nil {
				return err
			}

			in := usecase.ChartInput{File: file, Type: typ, X: f.x, Y: f.y, Format: format}
			if f.filterColumn != "" {
				in.Filter = &usecase.RawFilter{Column: f.filterColumn, Value: f.filterValue, Null: f.filterNull}
			}

			uc := usecase.New(usecase.Dependency{Renderer: renderer, ID: ids})
			result, err := uc.Chart(cmd.Context(), in)
			if err != nil {
				return err
			}

			if format == entity.OutputJSON {
				return encode(cmd.OutOrStdout(), g.output, result.Chart)
			}

			out := f.out
			if out == "" {
				out = defaultOutPath(args[0], typ, format)
			}
			if out == "-" {
				_, err = cmd.OutOrStdout().Write(result.Image)
				return err
			}
			if err := os.WriteFile(out, result.Image, 0o644); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), "wrote", out)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&f.chartType, "type", "t", "", "chart type (scatter|line|bar|histogram|box)")
	flags.StringVar(&f.x, "x", "", "x axis column")
	flags.StringVar(&f.y, "y", "", "y axis column (ignored by histogram)")
	flags.StringVar(&f.filterColumn, "filter-column", "", "keep only rows where this column equals --filter-value")
	flags.StringVar(&f.filterValue, "filter-value", "", "value to match in --filter-column")
	flags.BoolVar(&f.filterNull, "filter-null", false, "match null cells in --filter-column")
	flags.StringVar(&f.engine, "engine", render.EngineGonum, "render engine (gonum|gochart)")
	flags.StringVarP(&f.format, "format", "f", "png", "png, svg or json")
	flags.IntVar(&f.width, "width", 800, "image width in pixels")
	flags.IntVar(&f.height, "height", 500, "image height in pixels")
	flags.StringVar(&f.out, "out", "", "output path, - for stdout (default <file>-<type>.<format>)")
	_ = cmd.MarkFlagRequired("type")
	_ = cmd.MarkFlagRequired("x")

	return cmd
}

func defaultOutPath(input string, typ entity.ChartType, format entity.OutputFormat) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return fmt.Sprintf("%s-%s.%s", base, typ, format)
}
