package commands

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath string
	noJournal  bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "finsentinel",
	Short: "Signal and allocation engine for NSE equities",
	Long: `FinSentinel predicts the next close of an NSE symbol from its price history,
combines it with analyst consensus into a trade signal, and builds goal-based
monthly allocation plans across deposits, mutual funds and direct equity.`,
	Version:      "1.0.0",
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	defaultPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		defaultPath = v
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultPath, "config file")
	rootCmd.PersistentFlags().BoolVar(&noJournal, "no-journal", false, "do not record results to the journal")

	rootCmd.AddCommand(predictCmd, planCmd, quoteCmd, historyCmd, runCmd)
}
