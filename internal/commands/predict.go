package commands

import (
	"context"
	"fmt"

	"FinSentinel/internal/collector"
	"FinSentinel/internal/model"
	"FinSentinel/internal/notifier"
	"FinSentinel/internal/strategy"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var predictCmd = &cobra.Command{
	Use:   "predict SYMBOL...",
	Short: "Predict the next close and derive a trade signal",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		period, _ := cmd.Flags().GetString("period")
		synth := strategy.NewSynthesizer(a.provider)

		failed := 0
		for i, symbol := range args {
			if i > 0 {
				fmt.Fprintln(cmd.OutOrStdout())
			}
			p, err := synth.Predict(context.Background(), symbol, period)
			if err != nil {
				failed++
				f := model.CannotPredict(collector.CleanSymbol(symbol), err)
				if _, rerr := a.recorder.RecordFailure(period, f); rerr != nil {
					logrus.Errorf("record failure: %v", rerr)
				}
				fmt.Fprintln(cmd.OutOrStdout(), notifier.FormatFailure(f))
				continue
			}
			if _, err := a.recorder.RecordPrediction(p); err != nil {
				logrus.Errorf("record prediction: %v", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), notifier.FormatPrediction(p))
		}
		if failed == len(args) {
			return fmt.Errorf("no prediction could be made")
		}
		return nil
	},
}

func init() {
	predictCmd.Flags().StringP("period", "p", "1yr", "lookback period: 7d, 1mo, 3mo, 6mo or 1yr")
}
