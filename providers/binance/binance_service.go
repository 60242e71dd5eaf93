package binance

import (
	"context"
	"errors"
	"fmt"
	"github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/common"
	"github.com/joho/godotenv"
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/CryptoStatsReporter/helpers"
	"os"
	"strings"
	"time"
)

const (
	maxKlineRetries   = 5
	klineRetryBackoff = 2 * time.Second
)

type BinanceService struct {
	binanceClient *binance.Client
	apiKey        string
	apiSecret     string
}

func NewBinanceService() *BinanceService {
	binanceService := BinanceService{}
	binanceService.apiKey = os.Getenv("binanceAPIKey")
	binanceService.apiSecret = os.Getenv("binanceAPISecret")
	binanceService.binanceClient = binance.NewClient(binanceService.apiKey, binanceService.apiSecret)
	return &binanceService
}

func init() {
	cwd, _ := os.Getwd()
	var dir string
	dir = os.Getenv("CONF_FILE")
	if dir == "" {
		dir = "/conf.env"
	}
	_ = godotenv.Load(cwd + dir)
}

// GetSeries fetches up to limit candles of the given interval, paging over the
// 1000-candle API cap. The in-progress candle is filtered out, so callers only
// ever see fully closed candles.
func (binanceService *BinanceService) GetSeries(pair string, interval string, limit int) (techan.TimeSeries, error) {
	if limit == 0 {
		limit = 1000
	}
	timeSeries := techan.TimeSeries{}

	intervalSeconds := helpers.StringIntervalToSeconds(interval)
	intervalDuration := time.Duration(intervalSeconds) * time.Second

	provisionalLimit := limit % 1000
	if provisionalLimit == 0 {
		provisionalLimit = 1000
	}

	var startTime int64
	var resultKlines []*binance.Kline
	for iterations := 0; limit != 0; iterations++ {
		startTime = time.Now().Unix() - int64(intervalSeconds)*int64(limit)
		klines, err := binanceService.klinesWithRetry(pair, interval, provisionalLimit, startTime*1000)
		if err != nil {
			return timeSeries, err
		}

		resultKlines = append(resultKlines, klines...)

		limit -= provisionalLimit
		provisionalLimit = 1000
	}

	now := time.Now()
	for _, k := range resultKlines {
		period := techan.NewTimePeriod(time.Unix(k.OpenTime/1000, 0), intervalDuration)
		if period.End.After(now) {
			// still open on the exchange side
			continue
		}
		candle := techan.NewCandle(period)
		candle.OpenPrice = big.NewFromString(k.Open)
		candle.ClosePrice = big.NewFromString(k.Close)
		candle.MaxPrice = big.NewFromString(k.High)
		candle.MinPrice = big.NewFromString(k.Low)
		candle.TradeCount = uint(k.TradeNum)
		candle.Volume = big.NewFromString(k.Volume)
		timeSeries.AddCandle(candle)
	}

	return timeSeries, nil
}

func (binanceService *BinanceService) klinesWithRetry(pair string, interval string,
	limit int, startTime int64) ([]*binance.Kline, error) {

	var lastErr error
	for attempt := 1; attempt <= maxKlineRetries; attempt++ {
		klines, err := binanceService.binanceClient.NewKlinesService().Symbol(pair).
			Interval(interval).Limit(limit).StartTime(startTime).Do(context.Background())
		if err == nil {
			return klines, nil
		}

		lastErr = err
		if !retryableAPIError(err) {
			break
		}
		helpers.Logger.Warnln(fmt.Sprintf("klines request for %s failed (attempt %d/%d): %v",
			pair, attempt, maxKlineRetries, err))
		time.Sleep(time.Duration(attempt) * klineRetryBackoff)
	}

	return nil, fmt.Errorf("error getting %s klines: %w", pair, lastErr)
}

// retryableAPIError treats rate limiting and server-side rejections as
// transient. Anything that is not a binance API error is assumed to be a
// network hiccup and retried too.
func retryableAPIError(err error) bool {
	var apiErr *common.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Code == -1003 || apiErr.Code == -1015 || apiErr.Code == -1001
	}
	return true
}

func (binanceService *BinanceService) GetMarkets(coin string, whitelist []string, blacklist []string) []string {
	var pairList []string

	blacklistStringify := strings.Join(blacklist, ",")
	whitelistStringify := strings.Join(whitelist, ",")

	info, err := binanceService.binanceClient.NewExchangeInfoService().Do(context.Background())
	if err != nil {
		helpers.Logger.Errorln("error getting exchange info: " + err.Error())
		return pairList
	}
	for _, symbol := range info.Symbols {
		if strings.Contains(symbol.Symbol, coin) &&
			(len(blacklist) == 0 || (len(blacklist) > 0 && !strings.Contains(blacklistStringify, symbol.Symbol))) &&
			(len(whitelist) == 0 || (len(whitelist) > 0 && strings.Contains(whitelistStringify, symbol.Symbol))) {
			pairList = append(pairList, symbol.Symbol)
		}
	}
	return pairList
}
