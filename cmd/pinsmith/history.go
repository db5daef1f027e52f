// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/pinsmith/internal/ledger"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List generation runs recorded in the ledger",
	Long: `History lists runs recorded via the generate --ledger flag, newest
first. The ledger path comes from --ledger or the ledger config key.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("ledger", "", "SQLite ledger to read")
	historyCmd.Flags().Int("limit", 20, "maximum number of runs to list")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	path := resolveLedgerPath(cmd)
	if path == "" {
		return fmt.Errorf("ledger path required: pass --ledger or set ledger in the config file")
	}

	led, err := ledger.Open(path)
	if err != nil {
		return err
	}
	defer led.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	runs, err := led.List(cmd.Context(), limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded.")
		return nil
	}

	for _, r := range runs {
		note := ""
		if r.ValidationSkipped {
			note = "  (validation skipped)"
		}
		fmt.Printf("%s  %-30s products=%d seo=%d pins=%d%s\n",
			r.StartedAt.Local().Format("2006-01-02 15:04:05"),
			r.InputPath, r.Products, r.SeoFiles, r.PinRows, note)
	}
	return nil
}
