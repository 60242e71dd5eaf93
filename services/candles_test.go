package services

import (
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"time"
)

var seriesBase = time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC)

// dailyCandle builds the day-th daily candle (1-based) with the given close
// price. Open sits half a unit below the close, the extremes one half above
// and one unit below.
func dailyCandle(day int, closePrice float64) *techan.Candle {
	period := techan.NewTimePeriod(seriesBase.Add(time.Duration(day-1)*24*time.Hour), 24*time.Hour)
	candle := techan.NewCandle(period)
	candle.OpenPrice = big.NewDecimal(closePrice - 0.5)
	candle.ClosePrice = big.NewDecimal(closePrice)
	candle.MaxPrice = big.NewDecimal(closePrice + 0.5)
	candle.MinPrice = big.NewDecimal(closePrice - 1)
	candle.Volume = big.NewDecimal(1000)
	candle.TradeCount = 100
	return candle
}

// rampSeries builds days daily candles with close price equal to the day
// index: day 1 closes at 1.0, day n at n.0.
func rampSeries(days int) []*techan.Candle {
	candles := make([]*techan.Candle, 0, days)
	for day := 1; day <= days; day++ {
		candles = append(candles, dailyCandle(day, float64(day)))
	}
	return candles
}

func closeSeries(closePrices []float64) []*techan.Candle {
	candles := make([]*techan.Candle, 0, len(closePrices))
	for i, price := range closePrices {
		candles = append(candles, dailyCandle(i+1, price))
	}
	return candles
}

func reversed(candles []*techan.Candle) []*techan.Candle {
	out := make([]*techan.Candle, 0, len(candles))
	for i := len(candles) - 1; i >= 0; i-- {
		out = append(out, candles[i])
	}
	return out
}

func dayInstant(day int) time.Time {
	return seriesBase.Add(time.Duration(day) * 24 * time.Hour)
}
