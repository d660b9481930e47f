package fund

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Deposit instrument kinds in the rate table.
const (
	KindRD = "RD"
	KindFD = "FD"
)

//go:embed rates.yaml
var defaultRates []byte

// Rate is one row of the deposit rate table.
type Rate struct {
	Bank           string  `yaml:"bank"`
	Type           string  `yaml:"type"`
	MinInvestment  float64 `yaml:"min_investment"`
	DurationMonths int     `yaml:"duration_months"`
	InterestRate   float64 `yaml:"interest_rate"`
}

// RateTable looks up the best deposit rate for an instrument kind.
type RateTable interface {
	BestRate(kind string, amount float64, maxMonths int) (Rate, bool)
}

// StaticRateTable is an immutable in-memory table.
type StaticRateTable struct {
	rates []Rate
}

// NewStaticRateTable copies rates into a table.
func NewStaticRateTable(rates []Rate) *StaticRateTable {
	return &StaticRateTable{rates: append([]Rate(nil), rates...)}
}

// DefaultRateTable returns the embedded reference table.
func DefaultRateTable() (*StaticRateTable, error) {
	return parseRates(defaultRates)
}

// LoadRateTable reads a YAML rate table from path. An empty path or a missing
// file yields the embedded reference table.
func LoadRateTable(path string) (*StaticRateTable, error) {
	if path == "" {
		return DefaultRateTable()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.WithField("file", path).Warn("rate table not found, using built-in rates")
			return DefaultRateTable()
		}
		return nil, fmt.Errorf("read rate table: %w", err)
	}
	return parseRates(data)
}

func parseRates(data []byte) (*StaticRateTable, error) {
	var rates []Rate
	if err := yaml.Unmarshal(data, &rates); err != nil {
		return nil, fmt.Errorf("parse rate table: %w", err)
	}
	for i := range rates {
		rates[i].Type = strings.ToUpper(strings.TrimSpace(rates[i].Type))
	}
	return &StaticRateTable{rates: rates}, nil
}

// Len returns the number of rows.
func (t *StaticRateTable) Len() int { return len(t.rates) }

// BestRate returns the highest-rate row of kind whose minimum investment is
// within amount and whose tenor is at most maxMonths. When no row satisfies
// the tenor, it retries with only the kind and minimum-investment filters.
// Ties keep the earlier row.
func (t *StaticRateTable) BestRate(kind string, amount float64, maxMonths int) (Rate, bool) {
	kind = strings.ToUpper(kind)
	if r, ok := t.best(kind, amount, maxMonths); ok {
		return r, true
	}
	return t.best(kind, amount, -1)
}

// best scans with an optional tenor cap; a negative cap disables it.
func (t *StaticRateTable) best(kind string, amount float64, maxMonths int) (Rate, bool) {
	var (
		found bool
		best  Rate
	)
	for _, r := range t.rates {
		if r.Type != kind || r.MinInvestment > amount {
			continue
		}
		if maxMonths >= 0 && r.DurationMonths > maxMonths {
			continue
		}
		if !found || r.InterestRate > best.InterestRate {
			best, found = r, true
		}
	}
	return best, found
}
