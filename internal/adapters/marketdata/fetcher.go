package marketdata

import (
	"context"
	"fmt"
	"log/slog"
)

// Fetcher fills the local cache from the Alpha Vantage API, respecting the
// free-tier daily request cap.
type Fetcher struct {
	client *Client
	cache  *LocalProvider
	maxNew int
}

// NewFetcher builds a fetcher writing into the given provider's cache
// directory. maxNew caps how many uncached symbols are downloaded per run.
func NewFetcher(client *Client, cache *LocalProvider, maxNew int) *Fetcher {
	return &Fetcher{client: client, cache: cache, maxNew: maxNew}
}

// FetchMissing downloads every symbol not yet cached, in order, stopping at
// the daily cap. Already-cached symbols are skipped without a request.
// Returns the number of newly fetched symbols.
func (f *Fetcher) FetchMissing(ctx context.Context, symbols []string) (int, error) {
	fetched := 0

	for i, symbol := range symbols {
		if err := ctx.Err(); err != nil {
			return fetched, err
		}

		if f.cache.Has(symbol) {
			slog.Debug("skipped (already cached)", "symbol", symbol)
			continue
		}

		if fetched >= f.maxNew {
			slog.Info("daily API limit reached, stopping", "fetched", fetched, "cap", f.maxNew)
			return fetched, nil
		}

		slog.Info("fetching symbol", "symbol", symbol, "progress", fmt.Sprintf("%d/%d", i+1, len(symbols)))

		resp, err := f.client.FetchDaily(ctx, symbol)
		if err != nil {
			slog.Warn("fetch failed, continuing", "symbol", symbol, "err", err)
			continue
		}

		if err := f.cache.write(symbol, resp); err != nil {
			return fetched, err
		}
		fetched++
		slog.Info("saved symbol", "symbol", symbol, "bars", len(resp.TimeSeries))
	}

	return fetched, nil
}
