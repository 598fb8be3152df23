// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "palettekitty",
	Short: "PaletteKitty - Material palette generator",
	Long: `PaletteKitty derives a full Material-style palette from a single hex color:
ten base shades anchored on the seed's own lightness, four saturated accent
shades, and an accessible black or white text color for each of them.

It runs as a small web service (JSON, CSS and HTML preview) or from the
command line.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
