package marketdata

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrewborzenkov20-ui/Stockify/internal/domain"
	"github.com/andrewborzenkov20-ui/Stockify/internal/ports"
)

// LocalProvider implements ports.SeriesProvider from a directory of cached
// SYMBOL.json files written by the fetch command. Round play never touches
// the network.
type LocalProvider struct {
	dir string
}

// NewLocalProvider serves series from the given cache directory.
func NewLocalProvider(dir string) *LocalProvider {
	return &LocalProvider{dir: dir}
}

// DailyCloses loads and validates the cached series for a symbol. Returns
// ports.ErrSeriesNotFound when no file exists.
func (p *LocalProvider) DailyCloses(ctx context.Context, symbol string) (domain.PriceSeries, error) {
	data, err := os.ReadFile(cachePath(p.dir, symbol))
	if err != nil {
		if os.IsNotExist(err) {
			return domain.PriceSeries{}, fmt.Errorf("marketdata.DailyCloses: %s: %w", symbol, ports.ErrSeriesNotFound)
		}
		return domain.PriceSeries{}, fmt.Errorf("marketdata.DailyCloses: read %s: %w", symbol, err)
	}

	var resp dailyResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return domain.PriceSeries{}, fmt.Errorf("marketdata.DailyCloses: decode %s: %w", symbol, err)
	}
	if len(resp.TimeSeries) == 0 {
		return domain.PriceSeries{}, fmt.Errorf("marketdata.DailyCloses: %s: %w", symbol, ports.ErrSeriesNotFound)
	}

	points, err := mapDaily(resp)
	if err != nil {
		return domain.PriceSeries{}, err
	}

	return domain.NewPriceSeries(symbol, points)
}

// Has reports whether a cached file exists for the symbol.
func (p *LocalProvider) Has(symbol string) bool {
	_, err := os.Stat(cachePath(p.dir, symbol))
	return err == nil
}

// write stores a raw API payload in the cache.
func (p *LocalProvider) write(symbol string, resp dailyResponse) error {
	if err := os.MkdirAll(p.dir, 0o755); err != nil {
		return fmt.Errorf("marketdata.write: mkdir %s: %w", p.dir, err)
	}
	data, err := json.Marshal(struct {
		TimeSeries map[string]dailyBar `json:"Time Series (Daily)"`
	}{resp.TimeSeries})
	if err != nil {
		return fmt.Errorf("marketdata.write: marshal %s: %w", symbol, err)
	}
	if err := os.WriteFile(cachePath(p.dir, symbol), data, 0o644); err != nil {
		return fmt.Errorf("marketdata.write: %s: %w", symbol, err)
	}
	return nil
}

// cachePath maps a symbol to its cache file. Dots become underscores so
// tickers like BRK.B produce portable filenames.
func cachePath(dir, symbol string) string {
	return filepath.Join(dir, strings.ReplaceAll(symbol, ".", "_")+".json")
}
