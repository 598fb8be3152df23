package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/palettekitty/internal/config"
	"github.com/thatcatcamp/palettekitty/internal/db"
	"github.com/thatcatcamp/palettekitty/internal/history"
	"github.com/thatcatcamp/palettekitty/internal/models"
)

var (
	historyLimit  int
	historyRecent bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show requested colors",
	Long:  "List the colors requested from the server, most requested first",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := initHistoryDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if !cmd.Flags().Changed("limit") && config.GetInt("history.limit") > 0 {
			historyLimit = config.GetInt("history.limit")
		}

		var (
			lookups []models.Lookup
			err     error
		)
		if historyRecent {
			lookups, err = history.Recent(db.GetDB(), historyLimit)
		} else {
			lookups, err = history.Popular(db.GetDB(), historyLimit)
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if len(lookups) == 0 {
			fmt.Println("No colors requested yet")
			return
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "HEX\tCOUNT\tLAST SEEN")
		for _, l := range lookups {
			fmt.Fprintf(w, "%s\t%d\t%s\n", l.Hex, l.Count, l.UpdatedAt.Format("2006-01-02 15:04:05"))
		}
		w.Flush()
	},
}

var historyPruneCmd = &cobra.Command{
	Use:   "prune",
	Short: "Remove colors not requested within the retention window",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := initHistoryDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		pruner := history.NewPruner(db.GetDB(), config.GetDuration("history.retention"))
		removed, err := pruner.RunOnce()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Removed %d colors\n", removed)
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of colors to list")
	historyCmd.Flags().BoolVar(&historyRecent, "recent", false, "sort by last request instead of count")
	historyCmd.AddCommand(historyPruneCmd)
	rootCmd.AddCommand(historyCmd)
}
