package paper

import (
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestGetSeriesIsDeterministic(t *testing.T) {
	paperService := NewPaperService()

	series, err := paperService.GetSeries("BTCEUR", "1d", 100)
	assert.Nil(t, err)
	assert.Equal(t, 100, len(series.Candles))

	last := series.LastCandle()
	assert.Equal(t, 100.0, last.ClosePrice.Float())
	assert.Equal(t, 99.5, last.OpenPrice.Float())
	assert.True(t, last.Period.End.Before(time.Now().UTC().Add(time.Second)))

	for i, candle := range series.Candles {
		assert.Equal(t, float64(i+1), candle.ClosePrice.Float())
		assert.Equal(t, 24*time.Hour, candle.Period.End.Sub(candle.Period.Start))
	}
}

func TestGetMarkets(t *testing.T) {
	paperService := NewPaperService()

	assert.Equal(t, []string{"BTCEUR", "ETHEUR"}, paperService.GetMarkets("EUR", nil, nil))
	assert.Equal(t, []string{"SOLEUR"}, paperService.GetMarkets("EUR", []string{"SOLEUR"}, nil))
}
