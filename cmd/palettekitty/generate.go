// SPDX-License-Identifier: MIT
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/palettekitty/internal/palette"
	"github.com/thatcatcamp/palettekitty/internal/themes"
)

var generateJSON bool

var generateCmd = &cobra.Command{
	Use:   "generate <hex|preset>",
	Short: "Print the palette for a color",
	Long: `Print the Material palette for a 6 digit hex color (with or without the
leading #) or for a preset name such as "indigo".`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := generateFromArg(args[0])
		if err != nil {
			if errors.Is(err, palette.ErrColorNotFound) {
				fmt.Fprintf(os.Stderr, "Error: %q is not a 6 digit hex color or preset\n", args[0])
			} else {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			}
			os.Exit(1)
		}

		if generateJSON {
			if err := writePaletteJSON(os.Stdout, p); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
		writePaletteTable(os.Stdout, p)
	},
}

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List preset seed colors",
	Run: func(cmd *cobra.Command, args []string) {
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSEED\tA200")
		for _, preset := range themes.ListPresets() {
			p, err := palette.Generate(preset.Seed)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "%s\t%s\t%s\n", preset.Name, p.Seed, p.Hex("A200"))
		}
		w.Flush()
	},
}

// generateFromArg accepts "#3f51b5", "3f51b5" or a preset name
func generateFromArg(arg string) (*palette.Palette, error) {
	if preset := themes.GetPreset(strings.ToLower(arg)); preset != nil {
		return palette.Generate(preset.Seed)
	}
	if !strings.HasPrefix(arg, "#") {
		arg = "#" + arg
	}
	return palette.Generate(arg)
}

func writePaletteJSON(out io.Writer, p *palette.Palette) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode palette: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func writePaletteTable(out io.Writer, p *palette.Palette) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SHADE\tHEX\tTEXT")
	for _, s := range p.Shades {
		fmt.Fprintf(w, "%s\t%s\t%s\n", s.Name, s.Hex, s.Contrast)
	}
	w.Flush()
}

func init() {
	generateCmd.Flags().BoolVar(&generateJSON, "json", false, "print the palette as JSON")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(presetsCmd)
}
