package services

import (
	"fmt"
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/CryptoStatsReporter/helpers"
	"gitlab.com/aoterocom/CryptoStatsReporter/models"
	"gitlab.com/aoterocom/CryptoStatsReporter/models/analytics"
	"math"
	"sort"
	"time"
)

var logger = helpers.Logger

// tradingPeriodsPerYear is applied to every interval, so sub-daily series get
// a distorted annualization. Kept for parity with the historical reports.
const tradingPeriodsPerYear = 252

var dayGranularityIntervals = map[string]bool{"1d": true, "3d": true, "1w": true, "1M": true}

// PeriodStatsService computes price-change statistics over lookback windows.
type PeriodStatsService struct {
	windowService PeriodWindowService
}

func NewPeriodStatsService() PeriodStatsService {
	return PeriodStatsService{
		windowService: NewPeriodWindowService(),
	}
}

// Calculate produces one PeriodResult per resolvable period, largest period
// first. Periods whose window cannot be resolved are dropped, so the output
// may be shorter than periodsDays. Empty candles or periods yield an empty
// slice. Identical inputs always yield identical output.
func (pss *PeriodStatsService) Calculate(candles []*techan.Candle, periodsDays []int,
	aggregation models.PriceAggregation, asOf time.Time, intervalHint string) []analytics.PeriodResult {

	results := []analytics.PeriodResult{}
	if len(candles) == 0 || len(periodsDays) == 0 {
		return results
	}

	sortedCandles := pss.windowService.SortedCopy(candles)
	sortedPeriods := make([]int, len(periodsDays))
	copy(sortedPeriods, periodsDays)
	sort.Sort(sort.Reverse(sort.IntSlice(sortedPeriods)))

	for _, days := range sortedPeriods {
		window, ok := pss.windowService.ResolveWindow(sortedCandles, days, asOf)
		if !ok {
			logger.Debugln(fmt.Sprintf("no resolvable %dd window at %s", days, asOf.UTC()))
			continue
		}
		results = append(results, pss.windowResult(window, days, aggregation, intervalHint))
	}

	return results
}

func (pss *PeriodStatsService) windowResult(window analytics.PeriodWindow, days int,
	aggregation models.PriceAggregation, intervalHint string) analytics.PeriodResult {

	startPrice := aggregation.Price(window.StartCandle)
	endPrice := aggregation.Price(window.EndCandle)
	absChange := endPrice.Sub(startPrice)

	pctChange := 0.0
	if !startPrice.EQ(big.ZERO) {
		pctChange = helpers.RoundTo(absChange.Div(startPrice).Float()*100, 4)
	}

	// High and low always come from the raw candle extremes, whatever the
	// aggregation in use.
	high := window.Candles[0].MaxPrice
	low := window.Candles[0].MinPrice
	for _, candle := range window.Candles[1:] {
		if candle.MaxPrice.GT(high) {
			high = candle.MaxPrice
		}
		if candle.MinPrice.LT(low) {
			low = candle.MinPrice
		}
	}

	result := analytics.PeriodResult{
		PeriodDays: days,
		StartDate:  formatDateLabel(window.StartCandle.Period.Start, intervalHint),
		EndDate:    formatDateLabel(window.EndCandle.Period.End, intervalHint),
		StartPrice: startPrice.Float(),
		EndPrice:   endPrice.Float(),
		AbsChange:  absChange.Float(),
		PctChange:  pctChange,
		High:       high.Float(),
		Low:        low.Float(),
	}

	if volatility, ok := pss.annualizedVolatility(window.Candles, aggregation); ok {
		result.Volatility = &volatility
	}

	return result
}

// annualizedVolatility is the population standard deviation of simple
// consecutive-candle returns, annualized with sqrt(252) and expressed as a
// percentage. Steps with a zero previous price are skipped; fewer than 2
// valid returns means no volatility at all, never zero.
func (pss *PeriodStatsService) annualizedVolatility(candles []*techan.Candle,
	aggregation models.PriceAggregation) (float64, bool) {

	sorted := pss.windowService.SortedCopy(candles)

	var returns []float64
	for i := 1; i < len(sorted); i++ {
		previous := aggregation.Price(sorted[i-1])
		if previous.EQ(big.ZERO) {
			continue
		}
		current := aggregation.Price(sorted[i])
		returns = append(returns, current.Sub(previous).Div(previous).Float())
	}

	if len(returns) < 2 {
		return 0, false
	}

	mean := helpers.Mean(returns)
	stdDev := helpers.PopulationStdDev(returns, mean)
	annualized := stdDev * math.Sqrt(tradingPeriodsPerYear)

	return helpers.RoundTo(annualized*100, 4), true
}

func formatDateLabel(instant time.Time, intervalHint string) string {
	if dayGranularityIntervals[intervalHint] {
		return instant.UTC().Format("2006-01-02")
	}
	return instant.UTC().Format("2006-01-02 15:04:05")
}
