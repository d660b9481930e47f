package commands

import (
	"fmt"

	"FinSentinel/internal/collector"
	"FinSentinel/internal/notifier"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history SYMBOL",
	Short: "List journaled predictions for a symbol",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		limit, _ := cmd.Flags().GetInt("limit")
		symbol := collector.CleanSymbol(args[0])
		recs, err := a.recorder.Predictions(symbol, limit)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), notifier.FormatHistory(symbol, recs))
		return nil
	},
}

func init() {
	historyCmd.Flags().IntP("limit", "n", 10, "number of entries")
}
