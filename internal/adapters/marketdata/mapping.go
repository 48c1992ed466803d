package marketdata

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/andrewborzenkov20-ui/Stockify/internal/domain"
)

// dailyResponse mirrors the Alpha Vantage TIME_SERIES_DAILY payload. The
// time series is a date-keyed map, so ordering happens during mapping.
type dailyResponse struct {
	TimeSeries   map[string]dailyBar `json:"Time Series (Daily)"`
	Note         string              `json:"Note"`
	ErrorMessage string              `json:"Error Message"`
}

type dailyBar struct {
	Open   string `json:"1. open"`
	High   string `json:"2. high"`
	Low    string `json:"3. low"`
	Close  string `json:"4. close"`
	Volume string `json:"5. volume"`
}

// mapDaily converts the raw payload into chronologically ascending price
// points.
func mapDaily(resp dailyResponse) ([]domain.PricePoint, error) {
	dates := make([]string, 0, len(resp.TimeSeries))
	for d := range resp.TimeSeries {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	points := make([]domain.PricePoint, 0, len(dates))
	for _, d := range dates {
		date, err := time.Parse("2006-01-02", d)
		if err != nil {
			return nil, fmt.Errorf("marketdata.mapDaily: parse date %q: %w", d, err)
		}
		closePrice, err := strconv.ParseFloat(resp.TimeSeries[d].Close, 64)
		if err != nil {
			return nil, fmt.Errorf("marketdata.mapDaily: parse close for %s: %w", d, err)
		}
		points = append(points, domain.PricePoint{Date: date, Close: closePrice})
	}

	return points, nil
}
