package models

import (
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func testCandle() *techan.Candle {
	period := techan.NewTimePeriod(time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC), 24*time.Hour)
	candle := techan.NewCandle(period)
	candle.OpenPrice = big.NewDecimal(2)
	candle.MaxPrice = big.NewDecimal(10)
	candle.MinPrice = big.NewDecimal(4)
	candle.ClosePrice = big.NewDecimal(8)
	return candle
}

func TestParseAggregation(t *testing.T) {
	assert.Equal(t, AggregationClose, ParseAggregation("close"))
	assert.Equal(t, AggregationOpen, ParseAggregation("open"))
	assert.Equal(t, AggregationAvg, ParseAggregation("avg"))
	assert.Equal(t, AggregationOhlc4, ParseAggregation("ohlc4"))
	assert.Equal(t, AggregationOhlc4, ParseAggregation(" OHLC4 "))
	assert.Equal(t, AggregationClose, ParseAggregation(""))
	assert.Equal(t, AggregationClose, ParseAggregation("median"))
}

func TestAggregationPrices(t *testing.T) {
	candle := testCandle()

	assert.Equal(t, 8.0, AggregationClose.Price(candle).Float())
	assert.Equal(t, 2.0, AggregationOpen.Price(candle).Float())
	assert.Equal(t, 7.0, AggregationAvg.Price(candle).Float())
	assert.Equal(t, 6.0, AggregationOhlc4.Price(candle).Float())
	assert.Equal(t, 8.0, PriceAggregation("median").Price(candle).Float())
}
