package ports

import (
	"context"
	"errors"

	"github.com/andrewborzenkov20-ui/Stockify/internal/domain"
)

// ErrSeriesNotFound means no locally cached data exists for the symbol. The
// round cannot proceed; the UI shows a blocking message.
var ErrSeriesNotFound = errors.New("no local data found for this symbol")

// SeriesProvider supplies the daily closing series for a symbol from the
// pre-fetched local dataset. The series is delivered complete and resolved;
// the core never consumes partial data.
type SeriesProvider interface {
	DailyCloses(ctx context.Context, symbol string) (domain.PriceSeries, error)
}
