package commands

import (
	"context"
	"fmt"

	"FinSentinel/internal/collector"
	"FinSentinel/internal/notifier"

	"github.com/spf13/cobra"
)

var quoteCmd = &cobra.Command{
	Use:   "quote SYMBOL...",
	Short: "Show live NSE prices",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		prices := collector.Quotes(context.Background(), a.provider, args)
		fmt.Fprintln(cmd.OutOrStdout(), notifier.FormatQuotes(prices))
		return nil
	},
}
