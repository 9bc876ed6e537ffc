package twelvedata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"stock_monitor/internal/feature/watchlist/usecase"
	"stock_monitor/internal/platform/externalapi/twelvedata/dto"
	"stock_monitor/internal/platform/logger"
)

// SymbolLookup resolves ticker symbols to company names via the Twelve Data
// /quote endpoint.
type SymbolLookup struct {
	cfg    Config
	client *http.Client
}

var _ usecase.MarketRepository = (*SymbolLookup)(nil)

// NewSymbolLookup creates a SymbolLookup with the given configuration and
// HTTP client.
func NewSymbolLookup(cfg Config, client *http.Client) *SymbolLookup {
	return &SymbolLookup{cfg: cfg, client: client}
}

// LookupName fetches the quote for a symbol and returns its company name.
// Every failure mode, including a provider-side "symbol not found", is
// reported as an error; the caller does not distinguish between them.
func (s *SymbolLookup) LookupName(ctx context.Context, symbol string) (string, error) {
	q := url.Values{}
	q.Set("symbol", symbol)
	q.Set("apikey", s.cfg.APIKey)

	u := fmt.Sprintf("%s/quote?%s", s.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			logger.L().Warn().Err(err).Msg("failed to close response body")
		}
	}()

	if res.StatusCode >= 400 {
		return "", fmt.Errorf("twelvedata http %d", res.StatusCode)
	}

	var body dto.QuoteResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.Status == "error" {
		return "", fmt.Errorf("twelvedata: %s", body.Message)
	}
	if body.Name == "" {
		return "", fmt.Errorf("twelvedata: no name for symbol %q", symbol)
	}

	return body.Name, nil
}
