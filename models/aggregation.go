package models

import (
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"strings"
)

// PriceAggregation maps a candle to the single price used for period stats.
type PriceAggregation string

const (
	AggregationClose PriceAggregation = "close"
	AggregationOpen  PriceAggregation = "open"
	AggregationAvg   PriceAggregation = "avg"
	AggregationOhlc4 PriceAggregation = "ohlc4"
)

// ParseAggregation is case-insensitive. Anything unrecognized, including the
// empty string, normalizes to AggregationClose.
func ParseAggregation(name string) PriceAggregation {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "open":
		return AggregationOpen
	case "avg":
		return AggregationAvg
	case "ohlc4":
		return AggregationOhlc4
	default:
		return AggregationClose
	}
}

func (aggregation PriceAggregation) Price(candle *techan.Candle) big.Decimal {
	switch aggregation {
	case AggregationOpen:
		return candle.OpenPrice
	case AggregationAvg:
		return candle.MaxPrice.Add(candle.MinPrice).Div(big.NewDecimal(2))
	case AggregationOhlc4:
		return candle.OpenPrice.Add(candle.MaxPrice).Add(candle.MinPrice).
			Add(candle.ClosePrice).Div(big.NewDecimal(4))
	default:
		return candle.ClosePrice
	}
}
