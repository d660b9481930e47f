package scheduler

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"FinSentinel/internal/collector"
	"FinSentinel/internal/fund"
	"FinSentinel/internal/model"
	"FinSentinel/internal/notifier"
	"FinSentinel/internal/recorder"
	"FinSentinel/internal/strategy"

	"github.com/robfig/cron/v3"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Sender delivers a digest to the user.
type Sender interface {
	SendWithRetry(ctx context.Context, text string, maxRetries int) error
}

// SendRetries is the number of retries for each outgoing message.
const SendRetries = 3

// HistoryLimit caps the entries returned by the history command.
const HistoryLimit = 10

// Scheduler runs the watchlist scan on a cron schedule and answers chat commands.
type Scheduler struct {
	Cron        *cron.Cron
	Synthesizer *strategy.Synthesizer
	Planner     *fund.Planner
	Provider    collector.Provider
	Notifier    Sender
	Recorder    recorder.Recorder
	Symbols     []string
	Period      string
	Ctx         context.Context

	now func() time.Time
}

// NewScheduler creates a new Scheduler. tn may be nil, in which case digests are only logged.
func NewScheduler(ctx context.Context, p collector.Provider, planner *fund.Planner, tn Sender, rec recorder.Recorder, symbols []string, period string) *Scheduler {
	return &Scheduler{
		Cron:        cron.New(cron.WithSeconds()),
		Synthesizer: strategy.NewSynthesizer(p),
		Planner:     planner,
		Provider:    p,
		Notifier:    tn,
		Recorder:    rec,
		Symbols:     symbols,
		Period:      period,
		Ctx:         ctx,
		now:         time.Now,
	}
}

// Register adds the watchlist scan under scanCron.
func (s *Scheduler) Register(scanCron string) error {
	if _, err := s.Cron.AddFunc(scanCron, func() { s.ScanNow() }); err != nil {
		return fmt.Errorf("register scan task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	logrus.Info("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	logrus.Info("scheduler stopped")
}

// ScanNow predicts every watchlist symbol, journals the results and sends the digest.
// A failing symbol is reported in the digest and does not stop the scan.
func (s *Scheduler) ScanNow() string {
	logrus.WithField("symbols", len(s.Symbols)).Info("watchlist scan started")

	var (
		preds    []*model.Prediction
		failures []*model.PredictFailure
	)
	for _, sym := range s.Symbols {
		p, f := s.predict(sym, s.Period)
		if f != nil {
			failures = append(failures, f)
			continue
		}
		preds = append(preds, p)
	}

	digest := notifier.FormatDigest(s.now(), preds, failures)
	s.trySend(digest)
	logrus.WithFields(logrus.Fields{
		"predicted": len(preds),
		"failed":    len(failures),
	}).Info("watchlist scan finished")
	return digest
}

// predict runs one prediction and journals the outcome.
func (s *Scheduler) predict(symbol, period string) (*model.Prediction, *model.PredictFailure) {
	p, err := s.Synthesizer.Predict(s.Ctx, symbol, period)
	if err != nil {
		f := model.CannotPredict(collector.CleanSymbol(symbol), err)
		logrus.WithField("symbol", f.Symbol).Warnf("prediction failed: %v", err)
		if _, rerr := s.Recorder.RecordFailure(period, f); rerr != nil {
			logrus.Errorf("record failure: %v", rerr)
		}
		return nil, f
	}
	if _, err := s.Recorder.RecordPrediction(p); err != nil {
		logrus.Errorf("record prediction: %v", err)
	}
	return p, nil
}

const usage = "Available commands:\n" +
	"• /predict SYMBOL [7d|1mo|3mo|6mo|1yr]\n" +
	"• /plan low|medium|high MONTHLY TARGET YEARS\n" +
	"• /quote SYMBOL...\n" +
	"• /history SYMBOL\n" +
	"• /scan"

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return usage
	}
	args := fields[1:]

	switch strings.ToLower(fields[0]) {
	case "/predict":
		if len(args) < 1 {
			return usage
		}
		period := s.Period
		if len(args) > 1 {
			period = args[1]
		}
		p, f := s.predict(args[0], period)
		if f != nil {
			return notifier.FormatFailure(f)
		}
		return notifier.FormatPrediction(p)
	case "/plan":
		return s.handlePlan(args)
	case "/quote":
		if len(args) == 0 {
			return usage
		}
		return notifier.FormatQuotes(collector.Quotes(s.Ctx, s.Provider, args))
	case "/history":
		if len(args) != 1 {
			return usage
		}
		symbol := collector.CleanSymbol(args[0])
		recs, err := s.Recorder.Predictions(symbol, HistoryLimit)
		if err != nil {
			return fmt.Sprintf("history unavailable: %v", err)
		}
		return notifier.FormatHistory(symbol, recs)
	case "/scan":
		s.ScanNow()
		return ""
	default:
		return usage
	}
}

func (s *Scheduler) handlePlan(args []string) string {
	if len(args) != 4 {
		return usage
	}
	tier, err := model.ParseRiskTier(args[0])
	if err != nil {
		return err.Error()
	}
	monthly, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Sprintf("invalid monthly amount %q", args[1])
	}
	target, err := decimal.NewFromString(args[2])
	if err != nil {
		return fmt.Sprintf("invalid target %q", args[2])
	}
	years, err := strconv.Atoi(args[3])
	if err != nil {
		return fmt.Sprintf("invalid years %q", args[3])
	}

	plan, err := s.Planner.Plan(s.Ctx, tier, monthly, target, years)
	if err != nil {
		return err.Error()
	}
	if _, err := s.Recorder.RecordPlan(plan); err != nil {
		logrus.Errorf("record plan: %v", err)
	}
	return notifier.FormatPlan(plan)
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		logrus.Info(text)
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, SendRetries); err != nil {
		logrus.Errorf("send notification: %v", err)
	}
}
