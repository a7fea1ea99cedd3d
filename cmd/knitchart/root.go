package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	logLevel   string
	storeDir   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "knitchart",
		Short:         "knitchart draws and paints knitting charts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "Path to a YAML configuration file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	cmd.PersistentFlags().StringVar(&flags.storeDir, "store", "", "Directory charts are saved in")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newPaintCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newColorsCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
