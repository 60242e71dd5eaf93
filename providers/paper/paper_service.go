package paper

import (
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/CryptoStatsReporter/helpers"
	"time"
)

// PaperService is an offline ExchangeService stand-in. It serves a
// deterministic daily price ramp (close price = candle index, one unit per
// day), which makes dry runs and handler tests reproducible.
type PaperService struct {
}

func NewPaperService() *PaperService {
	return &PaperService{}
}

func (paperService *PaperService) GetSeries(pair string, interval string, limit int) (techan.TimeSeries, error) {
	if limit == 0 {
		limit = 1000
	}
	timeSeries := techan.TimeSeries{}

	intervalSeconds := helpers.StringIntervalToSeconds(interval)
	intervalDuration := time.Duration(intervalSeconds) * time.Second

	lastClose := time.Now().UTC().Truncate(intervalDuration)
	firstOpen := lastClose.Add(-time.Duration(limit) * intervalDuration)

	for i := 1; i <= limit; i++ {
		period := techan.NewTimePeriod(firstOpen.Add(time.Duration(i-1)*intervalDuration), intervalDuration)
		candle := techan.NewCandle(period)
		price := float64(i)
		candle.OpenPrice = big.NewDecimal(price - 0.5)
		candle.ClosePrice = big.NewDecimal(price)
		candle.MaxPrice = big.NewDecimal(price + 0.5)
		candle.MinPrice = big.NewDecimal(price - 1)
		candle.Volume = big.NewDecimal(1000)
		candle.TradeCount = 100
		timeSeries.AddCandle(candle)
	}

	return timeSeries, nil
}

func (paperService *PaperService) GetMarkets(coin string, whitelist []string, blacklist []string) []string {
	if len(whitelist) > 0 {
		return whitelist
	}
	return []string{"BTC" + coin, "ETH" + coin}
}
