package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gantrykit/gantry"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gantry",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("gantry version %s\n", gantry.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
