package interfaces

import (
	"github.com/sdcoffey/techan"
)

// ExchangeService is the market-data collaborator. Implementations own network
// retries and must only ever return fully closed candles.
type ExchangeService interface {
	GetSeries(pair string, interval string, limit int) (techan.TimeSeries, error)
	GetMarkets(coin string, whitelist []string, blacklist []string) []string
}
