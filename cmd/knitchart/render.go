package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/hnimtadd/knitchart"
	"github.com/hnimtadd/knitchart/chart/render/markup"
	"github.com/hnimtadd/knitchart/chart/render/raster"
	"github.com/hnimtadd/knitchart/chart/render/term"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	App    string
	Format string
	Out    string
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Write the saved chart as HTML, text or PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			ctx, err := loadContext(cmd, root)
			if err != nil {
				return err
			}
			chart, err := ctx.openChart(opts.App)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if opts.Out != "" && opts.Out != "-" {
				f, createErr := os.Create(opts.Out)
				if createErr != nil {
					return fmt.Errorf("create output: %w", createErr)
				}
				defer closeOutput(f, &err)
				out = f
			}
			return renderChart(out, chart, ctx, opts.Format)
		},
	}

	cmd.Flags().StringVar(&opts.App, "app", "", "Application: twocolor or metapixel (default from config)")
	cmd.Flags().StringVar(&opts.Format, "format", "html", "Output format: html, text or png")
	cmd.Flags().StringVarP(&opts.Out, "out", "o", "-", "Output file, - for standard output")

	return cmd
}

// closeOutput closes c and reports a failure through err unless err is
// already set.
func closeOutput(c io.Closer, err *error) {
	if cerr := c.Close(); cerr != nil && *err == nil {
		*err = fmt.Errorf("close output: %w", cerr)
	}
}

func renderChart(w io.Writer, chart *knitchart.Chart, ctx *appContext, format string) error {
	panels := chart.RenderStatic()
	switch strings.ToLower(format) {
	case "html":
		return markup.Document(w, chart.Name(), chart.Sheet(), panels...)
	case "text":
		opts := term.Options{
			CellWidth: ctx.cfg.CellWidth,
			Codes:     true,
			Renderer:  lipgloss.NewRenderer(w),
		}
		for i, p := range panels {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "%s\n%s\n", p.Title, term.Render(p.Table, opts))
		}
		return nil
	case "png":
		return raster.EncodePanelsPNG(w, panels, raster.Options{CellPx: ctx.cfg.CellPx, GridLines: true})
	default:
		return fmt.Errorf("unknown format %q: expected html, text or png", format)
	}
}
