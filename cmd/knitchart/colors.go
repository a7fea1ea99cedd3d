package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func newColorsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "colors",
		Short: "List the palette",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			r := lipgloss.NewRenderer(out)
			title := cases.Title(language.English)
			for _, c := range color.All() {
				swatch := r.NewStyle().Background(lipgloss.Color(c.Hex())).Render("  ")
				fmt.Fprintf(out, "%s %c %s %s\n", swatch, c.Code(),
					runewidth.FillRight(c.String(), 7), title.String(c.CSS()))
			}
			return nil
		},
	}

	return cmd
}
