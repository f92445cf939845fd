package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gantry",
	Short: "Gantry is an IPC bridge engine for scripted UI automation",
	Long: `Gantry executes JSON-framed instruction batches against a shared
application session and reports outputs and evidence per call.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().Bool("demo", true, "Attach to the built-in simulated application")
}
