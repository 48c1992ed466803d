package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePoints(n int) []PricePoint {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	points := make([]PricePoint, n)
	for i := range points {
		points[i] = PricePoint{Date: start.AddDate(0, 0, i), Close: 100 + float64(i)}
	}
	return points
}

func TestNewPriceSeries_Valid(t *testing.T) {
	s, err := NewPriceSeries("AAPL", makePoints(5))
	require.NoError(t, err)

	assert.Equal(t, "AAPL", s.Symbol())
	assert.Equal(t, 5, s.Len())
	assert.InDelta(t, 100, s.Close(0), 1e-9)
	assert.InDelta(t, 104, s.Close(4), 1e-9)
}

func TestNewPriceSeries_RejectsDuplicateDate(t *testing.T) {
	points := makePoints(3)
	points[2].Date = points[1].Date

	_, err := NewPriceSeries("AAPL", points)
	assert.Error(t, err)
}

func TestNewPriceSeries_RejectsOutOfOrder(t *testing.T) {
	points := makePoints(3)
	points[0], points[2] = points[2], points[0]

	_, err := NewPriceSeries("AAPL", points)
	assert.Error(t, err)
}

func TestNewPriceSeries_RejectsBadClose(t *testing.T) {
	points := makePoints(3)
	points[1].Close = 0

	_, err := NewPriceSeries("AAPL", points)
	assert.Error(t, err)
}

func TestPriceSeries_ClosesReturnsCopy(t *testing.T) {
	s, err := NewPriceSeries("AAPL", makePoints(3))
	require.NoError(t, err)

	closes := s.Closes()
	closes[0] = -1
	assert.InDelta(t, 100, s.Close(0), 1e-9)
}

func TestPriceSeries_Windows(t *testing.T) {
	s, err := NewPriceSeries("AAPL", makePoints(10))
	require.NoError(t, err)

	assert.Len(t, s.Visible(4), 4)
	assert.Len(t, s.Revealed(4, 3), 7)

	// Clamped to the series length.
	assert.Len(t, s.Visible(25), 10)
	assert.Len(t, s.Revealed(8, 8), 10)
	assert.Empty(t, s.Visible(0))
}
