package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags.
var Version = "dev"

var rootCmd = &cobra.Command{
	Use:   "espalier",
	Short: "A minimal finite-state-machine runtime",
	Long:  `Espalier is a small state machine library; this CLI runs interactive demo flows built on it.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the espalier version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
