package collector

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"FinSentinel/internal/model"

	"github.com/sirupsen/logrus"
)

// DefaultBaseURL is the IndianAPI stock endpoint root.
const DefaultBaseURL = "https://stock.indianapi.in"

// ProviderConfig configures an IndianAPI client. There is no package-level state;
// every client carries its own copy.
type ProviderConfig struct {
	BaseURL string
	APIKey  string
	Proxy   string
	Timeout time.Duration
}

// IndianAPIProvider implements Provider against the IndianAPI REST service.
type IndianAPIProvider struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
	logger  *logrus.Entry
}

// NewIndianAPIProvider creates a client with optional proxy support.
func NewIndianAPIProvider(cfg ProviderConfig) *IndianAPIProvider {
	transport := &http.Transport{}
	if cfg.Proxy != "" {
		if u, err := url.Parse(cfg.Proxy); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	return &IndianAPIProvider{
		BaseURL: base,
		APIKey:  cfg.APIKey,
		Client: &http.Client{
			Timeout:   timeout,
			Transport: transport,
		},
		logger: logrus.WithField("provider", "indianapi"),
	}
}

func (p *IndianAPIProvider) Name() string { return "indianapi" }

// get performs a GET and decodes the JSON body with numbers preserved as json.Number.
func (p *IndianAPIProvider) get(ctx context.Context, path string, params url.Values, out any) error {
	u := p.BaseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	if p.APIKey != "" {
		req.Header.Set("X-Api-Key", p.APIKey)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", model.ErrProviderUnavailable, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read %s: %v", model.ErrProviderUnavailable, path, err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: %s: status %d, body: %s", model.ErrProviderUnavailable, path, resp.StatusCode, truncate(body, 200))
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", model.ErrProviderUnavailable, path, err)
	}
	return nil
}

// historyResponse is the /historical_data payload. Each value is either a
// heterogeneous array or an object keyed by column name.
type historyResponse struct {
	Datasets []struct {
		Metric string            `json:"metric"`
		Values []json.RawMessage `json:"values"`
	} `json:"datasets"`
}

// objectColumns lists the accepted keys per column of an object row, in table order.
var objectColumns = []struct {
	name string
	keys []string
}{
	{"date", []string{"date", "datetime", "time", "timestamp"}},
	{"open", []string{"open"}},
	{"high", []string{"high"}},
	{"low", []string{"low"}},
	{"close", []string{"close", "price", "value"}},
	{"volume", []string{"volume"}},
}

func (p *IndianAPIProvider) FetchPriceHistory(ctx context.Context, symbol, window string) (model.RawTable, error) {
	params := url.Values{}
	params.Set("stock_name", symbol)
	params.Set("period", window)
	params.Set("filter", "default")

	var resp historyResponse
	if err := p.get(ctx, "/historical_data", params, &resp); err != nil {
		return model.RawTable{}, err
	}
	if len(resp.Datasets) == 0 {
		p.logger.WithField("symbol", symbol).Warn("no datasets returned")
		return model.RawTable{}, nil
	}

	values := resp.Datasets[0].Values
	table := model.RawTable{Rows: make([][]string, 0, len(values))}
	for i, raw := range values {
		row, err := decodeHistoryRow(raw)
		if err != nil {
			p.logger.WithField("symbol", symbol).Warnf("skipping history row %d: %v", i, err)
			continue
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// decodeHistoryRow turns an array row into cells as-is. An object row is laid
// out as date, open, high, low, close, volume when it carries a price range and
// as date, close otherwise, so the normalizer resolves the same shapes.
func decodeHistoryRow(raw json.RawMessage) ([]string, error) {
	var v any
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}

	switch r := v.(type) {
	case []any:
		row := make([]string, len(r))
		for i, c := range r {
			row[i] = cellString(c)
		}
		return row, nil
	case map[string]any:
		lower := make(map[string]any, len(r))
		for k, c := range r {
			lower[strings.ToLower(k)] = c
		}
		cells := make(map[string]string, len(objectColumns))
		for _, col := range objectColumns {
			for _, k := range col.keys {
				if c, ok := lower[k]; ok {
					cells[col.name] = cellString(c)
					break
				}
			}
		}
		if _, ok := cells["high"]; ok {
			return []string{cells["date"], cells["open"], cells["high"], cells["low"], cells["close"], cells["volume"]}, nil
		}
		return []string{cells["date"], cells["close"]}, nil
	}
	return nil, fmt.Errorf("unsupported row %s", truncate(raw, 60))
}

func (p *IndianAPIProvider) FetchFundamentals(ctx context.Context, symbol string) (*model.FundamentalSnapshot, error) {
	params := url.Values{}
	params.Set("name", symbol)

	var data map[string]any
	if err := p.get(ctx, "/stock", params, &data); err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	return parseFundamentals(data), nil
}

// parseFundamentals reads recosBar (object or list form) and percentChange.
// Fields that are missing or malformed stay absent.
func parseFundamentals(data map[string]any) *model.FundamentalSnapshot {
	snap := &model.FundamentalSnapshot{}
	switch recos := data["recosBar"].(type) {
	case map[string]any:
		snap.StrongBuy = optInt(recos["strongBuy"])
		snap.Buy = optInt(recos["buy"])
		snap.Hold = optInt(recos["hold"])
		snap.Sell = optInt(recos["sell"])
		snap.StrongSell = optInt(recos["strongSell"])
	case []any:
		var buys, sells int
		for _, r := range recos {
			s := strings.ToLower(fmt.Sprint(r))
			if strings.Contains(s, "buy") {
				buys++
			}
			if strings.Contains(s, "sell") {
				sells++
			}
		}
		snap.Buy = model.Some(buys)
		snap.Sell = model.Some(sells)
	}
	if v, ok := toNumber(data["percentChange"]); ok {
		snap.PercentChange = model.Some(v)
	}
	return snap
}

func (p *IndianAPIProvider) FetchLivePrice(ctx context.Context, symbol string) (float64, error) {
	params := url.Values{}
	params.Set("name", symbol+".NS")

	var data map[string]any
	if err := p.get(ctx, "/stock", params, &data); err != nil {
		return 0, err
	}
	return extractPrice(data), nil
}

// extractPrice checks currentPrice, lastPrice and price in turn; an exchange map prefers NSE then BSE.
func extractPrice(data map[string]any) float64 {
	for _, key := range []string{"currentPrice", "lastPrice", "price"} {
		raw, ok := data[key]
		if !ok || raw == nil {
			continue
		}
		if m, ok := raw.(map[string]any); ok {
			for _, ex := range []string{"NSE", "BSE"} {
				if v, ok := toNumber(m[ex]); ok && v != 0 {
					return v
				}
			}
			continue
		}
		if v, ok := toNumber(raw); ok && v != 0 {
			return v
		}
	}
	return 0
}

func (p *IndianAPIProvider) SearchFunds(ctx context.Context, keyword string) ([]FundCandidate, error) {
	params := url.Values{}
	params.Set("name", keyword)

	var data any
	if err := p.get(ctx, "/mutual_fund", params, &data); err != nil {
		return nil, err
	}

	var entries []any
	switch d := data.(type) {
	case []any:
		entries = d
	case map[string]any:
		entries, _ = d["datasets"].([]any)
	}

	funds := make([]FundCandidate, 0, len(entries))
	for _, e := range entries {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		fc := FundCandidate{Name: firstString(m, "schemeName", "fundName", "name")}
		for _, key := range []string{"nav", "currentNav", "price"} {
			if v, ok := toNumber(m[key]); ok && v != 0 {
				fc.NAV = model.Some(v)
				break
			}
		}
		funds = append(funds, fc)
	}
	return funds, nil
}

func cellString(v any) string {
	switch c := v.(type) {
	case nil:
		return ""
	case string:
		return c
	case json.Number:
		return c.String()
	case float64:
		return strconv.FormatFloat(c, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(c)
	default:
		return fmt.Sprint(c)
	}
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case float64:
		return n, true
	case int:
		return float64(n), true
	case string:
		return parseNumber(n)
	}
	return 0, false
}

func optInt(v any) model.Opt[int] {
	if f, ok := toNumber(v); ok {
		return model.Some(int(f))
	}
	return model.None[int]()
}

func firstString(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

func truncate(b []byte, n int) string {
	if len(b) > n {
		return string(b[:n]) + "..."
	}
	return string(b)
}
