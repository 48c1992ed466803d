package domain

import (
	"fmt"
	"math"
	"time"
)

// PricePoint is a single daily close for a symbol.
type PricePoint struct {
	Date  time.Time
	Close float64
}

// PriceSeries is an ordered sequence of daily closing prices for one symbol,
// chronologically ascending and immutable after construction. Index 0 is the
// oldest bar.
type PriceSeries struct {
	symbol string
	dates  []time.Time
	closes []float64
}

// NewPriceSeries validates and builds a series. Dates must be strictly
// increasing (no duplicates) and every close must be a positive finite number.
func NewPriceSeries(symbol string, points []PricePoint) (PriceSeries, error) {
	dates := make([]time.Time, len(points))
	closes := make([]float64, len(points))

	for i, p := range points {
		if i > 0 && !p.Date.After(points[i-1].Date) {
			return PriceSeries{}, fmt.Errorf("domain.NewPriceSeries: %s: date %s at index %d not after %s",
				symbol, p.Date.Format("2006-01-02"), i, points[i-1].Date.Format("2006-01-02"))
		}
		if math.IsNaN(p.Close) || math.IsInf(p.Close, 0) || p.Close <= 0 {
			return PriceSeries{}, fmt.Errorf("domain.NewPriceSeries: %s: invalid close %v at index %d",
				symbol, p.Close, i)
		}
		dates[i] = p.Date
		closes[i] = p.Close
	}

	return PriceSeries{symbol: symbol, dates: dates, closes: closes}, nil
}

// Symbol returns the ticker the series belongs to.
func (s PriceSeries) Symbol() string { return s.symbol }

// Len returns the number of bars.
func (s PriceSeries) Len() int { return len(s.closes) }

// Close returns the closing price at bar i.
func (s PriceSeries) Close(i int) float64 { return s.closes[i] }

// Date returns the trading date of bar i.
func (s PriceSeries) Date(i int) time.Time { return s.dates[i] }

// Closes returns a copy of all closing prices.
func (s PriceSeries) Closes() []float64 {
	out := make([]float64, len(s.closes))
	copy(out, s.closes)
	return out
}

// Visible returns the closes a player may see before guessing: the first
// cutoff bars, clamped to the series length.
func (s PriceSeries) Visible(cutoff int) []float64 {
	return s.window(cutoff)
}

// Revealed returns the closes shown once a round is revealed: the first
// cutoff+after bars, clamped to the series length.
func (s PriceSeries) Revealed(cutoff, after int) []float64 {
	return s.window(cutoff + after)
}

func (s PriceSeries) window(n int) []float64 {
	if n < 0 {
		n = 0
	}
	if n > len(s.closes) {
		n = len(s.closes)
	}
	out := make([]float64, n)
	copy(out, s.closes[:n])
	return out
}
