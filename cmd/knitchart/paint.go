package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/hnimtadd/knitchart/internal/tui"
	"github.com/spf13/cobra"
)

func newPaintCmd(root *rootFlags) *cobra.Command {
	var app string

	cmd := &cobra.Command{
		Use:   "paint",
		Short: "Paint a chart in the terminal with the mouse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := loadContext(cmd, root)
			if err != nil {
				return err
			}
			chart, err := ctx.openChart(app)
			if err != nil {
				return err
			}

			model := tui.New(chart, tui.Options{CellWidth: ctx.cfg.CellWidth, Logger: ctx.logger})
			program := tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithMouseCellMotion(),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			if _, err := program.Run(); err != nil {
				return err
			}
			return chart.Save()
		},
	}

	cmd.Flags().StringVar(&app, "app", "", "Application: twocolor or metapixel (default from config)")

	return cmd
}
