package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/gantrykit/gantry/internal/presentation/tui"
	"github.com/gantrykit/gantry/pkg/instructions"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the instruction catalog",
	Long:  `Renders the instruction catalog with parameter and output schemas.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		// The catalog is static; no session or driver is needed.
		markdown := tui.CatalogMarkdown(cfg.FriendlyName, instructions.Catalog().Instructions())

		if !term.IsTerminal(int(os.Stdout.Fd())) {
			fmt.Print(markdown)
			return nil
		}

		tui.PrintBanner()
		render := tui.NewRenderer()
		out, err := render(markdown)
		if err != nil {
			// Fall back to the raw markdown.
			fmt.Print(markdown)
			return nil
		}
		fmt.Print(out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
