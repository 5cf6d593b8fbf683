package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/aretw0/espalier/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run [flow.yaml]",
	Short: "Run an interactive demo flow",
	Long:  `Builds a state machine from a YAML flow file (one state per scene) and drives it from stdin. Without an argument the built-in demo flow is used.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := cli.RunOptions{}
		if len(args) > 0 {
			opts.FlowPath = args[0]
		}
		opts.Plain, _ = cmd.Flags().GetBool("plain")
		opts.Debug, _ = cmd.Flags().GetBool("debug")
		opts.LogLevel, _ = cmd.Flags().GetString("log-level")

		return cli.RunSession(opts, os.Stdin, os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("plain", false, "Disable markdown rendering")
	runCmd.Flags().Bool("debug", false, "Enable debug logging and transition auditing")
	runCmd.Flags().String("log-level", "info", "Log level (debug, info, warn, error)")
}
