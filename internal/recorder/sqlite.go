package recorder

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"FinSentinel/internal/model"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// SQLiteRecorder journals to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	if dir := filepath.Dir(dbPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	logrus.WithField("path", dbPath).Info("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS predictions (
			id                TEXT PRIMARY KEY,
			timestamp         INTEGER NOT NULL,
			symbol            TEXT NOT NULL,
			period            TEXT,
			current_price     REAL,
			predicted_close   REAL,
			rsi               REAL,
			atr               REAL,
			analyst_score     REAL,
			analyst_sentiment TEXT,
			technical         TEXT,
			signal            TEXT,
			target            REAL,
			stop_loss         REAL,
			confidence        TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_predictions_symbol_ts ON predictions(symbol, timestamp)`,

		`CREATE TABLE IF NOT EXISTS prediction_failures (
			id        TEXT PRIMARY KEY,
			timestamp INTEGER NOT NULL,
			symbol    TEXT NOT NULL,
			period    TEXT,
			kind      TEXT,
			reason    TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_failures_ts ON prediction_failures(timestamp)`,

		`CREATE TABLE IF NOT EXISTS plans (
			id               TEXT PRIMARY KEY,
			timestamp        INTEGER NOT NULL,
			tier             TEXT,
			monthly          TEXT,
			horizon_years    INTEGER,
			expected_return  REAL,
			deposit_bank     TEXT,
			deposit_amount   TEXT,
			deposit_rate     REAL,
			fund_name        TEXT,
			fund_amount      TEXT,
			equity_symbol    TEXT,
			equity_amount    TEXT,
			equity_quantity  INTEGER,
			projected_corpus REAL,
			target_corpus    REAL,
			status           TEXT,
			shortfall        REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_plans_ts ON plans(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordPrediction(p *model.Prediction) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	_, err := r.db.Exec(`INSERT INTO predictions
		(id, timestamp, symbol, period, current_price, predicted_close, rsi, atr,
		 analyst_score, analyst_sentiment, technical, signal, target, stop_loss, confidence)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		id.String(), time.Now().UnixMilli(), p.Symbol, p.Period,
		p.CurrentPrice, p.PredictedClose, p.RSI, p.ATR,
		p.AnalystScore, string(p.AnalystSentiment), string(p.Technical), string(p.Signal),
		p.Target, p.StopLoss, p.Confidence,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert prediction: %w", err)
	}
	return id, nil
}

func (r *SQLiteRecorder) RecordFailure(period string, f *model.PredictFailure) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := uuid.New()
	_, err := r.db.Exec(`INSERT INTO prediction_failures
		(id, timestamp, symbol, period, kind, reason)
		VALUES (?,?,?,?,?,?)`,
		id.String(), time.Now().UnixMilli(), f.Symbol, period, f.Kind, f.Reason,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert failure: %w", err)
	}
	return id, nil
}

func (r *SQLiteRecorder) RecordPlan(p *model.AllocationPlan) (uuid.UUID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var qty sql.NullInt64
	if q, ok := p.Equity.Quantity.Get(); ok {
		qty = sql.NullInt64{Int64: q, Valid: true}
	}

	id := uuid.New()
	_, err := r.db.Exec(`INSERT INTO plans
		(id, timestamp, tier, monthly, horizon_years, expected_return,
		 deposit_bank, deposit_amount, deposit_rate, fund_name, fund_amount,
		 equity_symbol, equity_amount, equity_quantity,
		 projected_corpus, target_corpus, status, shortfall)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		id.String(), time.Now().UnixMilli(), string(p.Tier), p.Monthly.String(), p.HorizonYears, p.ExpectedReturn,
		p.Deposit.Bank, p.Deposit.Amount.String(), p.Deposit.Rate, p.Fund.Name, p.Fund.Amount.String(),
		p.Equity.Symbol, p.Equity.Amount.String(), qty,
		p.Projection.ProjectedCorpus, p.Projection.TargetCorpus, string(p.Projection.Status), p.Projection.ShortfallAmount,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert plan: %w", err)
	}
	return id, nil
}

func (r *SQLiteRecorder) Predictions(symbol string, limit int) ([]PredictionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT id, timestamp, symbol, period, current_price, predicted_close, rsi, atr,
		analyst_score, analyst_sentiment, technical, signal, target, stop_loss, confidence
		FROM predictions WHERE symbol = ? ORDER BY timestamp DESC, rowid DESC LIMIT ?`, symbol, limit)
	if err != nil {
		return nil, fmt.Errorf("query predictions: %w", err)
	}
	defer rows.Close()

	var out []PredictionRecord
	for rows.Next() {
		var (
			rec                          PredictionRecord
			id                           string
			ts                           int64
			sentiment, technical, signal string
		)
		p := &rec.Prediction
		if err := rows.Scan(&id, &ts, &p.Symbol, &p.Period, &p.CurrentPrice, &p.PredictedClose, &p.RSI, &p.ATR,
			&p.AnalystScore, &sentiment, &technical, &signal, &p.Target, &p.StopLoss, &p.Confidence); err != nil {
			return nil, fmt.Errorf("scan prediction: %w", err)
		}
		rec.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("parse id %q: %w", id, err)
		}
		rec.RecordedAt = time.UnixMilli(ts)
		p.AnalystSentiment = model.Sentiment(sentiment)
		p.Technical = model.Signal(technical)
		p.Signal = model.Signal(signal)
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	logrus.Info("closing sqlite recorder")
	return r.db.Close()
}
