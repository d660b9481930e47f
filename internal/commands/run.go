package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"FinSentinel/internal/notifier"
	"FinSentinel/internal/scheduler"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the scheduled watchlist scan and the Telegram command bot",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if len(a.cfg.Scan.Symbols) == 0 {
			return fmt.Errorf("scan.symbols is empty")
		}

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		var sender scheduler.Sender
		var tn *notifier.TelegramNotifier
		if a.cfg.TelegramEnabled() {
			tn = notifier.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.cfg.Telegram.ChatID, a.cfg.Proxy)
			sender = tn
		} else {
			logrus.Warn("telegram not configured, digests will only be logged")
		}

		sched := scheduler.NewScheduler(ctx, a.provider, a.planner, sender, a.recorder, a.cfg.Scan.Symbols, a.cfg.Scan.Period)
		if err := sched.Register(a.cfg.Scan.Cron); err != nil {
			return err
		}
		sched.Start()
		defer sched.Stop()

		if tn != nil {
			go tn.StartPolling(ctx, sched.HandleCommand)
			logrus.Info("telegram polling started")
		}

		if now, _ := cmd.Flags().GetBool("now"); now {
			logrus.Info("running watchlist scan now")
			go sched.ScanNow()
		}

		logrus.WithFields(logrus.Fields{
			"cron":    a.cfg.Scan.Cron,
			"symbols": a.cfg.Scan.Symbols,
		}).Info("FinSentinel is running. Press Ctrl+C to stop.")

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		logrus.Info("shutdown signal received, stopping...")
		cancel()
		return nil
	},
}

func init() {
	runCmd.Flags().Bool("now", os.Getenv("RUN_ON_START") == "true", "run one scan immediately on start")
}
