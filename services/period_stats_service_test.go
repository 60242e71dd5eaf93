package services

import (
	"github.com/stretchr/testify/assert"
	"gitlab.com/aoterocom/CryptoStatsReporter/models"
	"testing"
)

func TestCalculateTwoPeriodScenario(t *testing.T) {
	statsService := NewPeriodStatsService()
	candles := rampSeries(120)

	results := statsService.Calculate(candles, []int{30, 60}, models.AggregationClose,
		dayInstant(120), "1d")

	assert.Equal(t, 2, len(results))

	// largest period first
	assert.Equal(t, 60, results[0].PeriodDays)
	assert.Equal(t, 30, results[1].PeriodDays)

	// 60d window: day 61 opens exactly on the boundary, day 120 closes at asOf
	sixty := results[0]
	assert.Equal(t, 61.0, sixty.StartPrice)
	assert.Equal(t, 120.0, sixty.EndPrice)
	assert.Equal(t, 59.0, sixty.AbsChange)
	assert.Equal(t, 96.7213, sixty.PctChange)
	assert.Equal(t, 120.5, sixty.High)
	assert.Equal(t, 60.0, sixty.Low)
	assert.Equal(t, dayInstant(60).Format("2006-01-02"), sixty.StartDate)
	assert.Equal(t, dayInstant(120).Format("2006-01-02"), sixty.EndDate)
	assert.NotNil(t, sixty.Volatility)

	thirty := results[1]
	assert.Equal(t, 91.0, thirty.StartPrice)
	assert.Equal(t, 120.0, thirty.EndPrice)
	assert.Equal(t, 29.0, thirty.AbsChange)
	assert.Equal(t, 31.8681, thirty.PctChange)
}

func TestCalculateIsDeterministic(t *testing.T) {
	statsService := NewPeriodStatsService()

	first := statsService.Calculate(rampSeries(120), []int{7, 30, 90}, models.AggregationClose,
		dayInstant(120), "1d")
	second := statsService.Calculate(rampSeries(120), []int{7, 30, 90}, models.AggregationClose,
		dayInstant(120), "1d")

	assert.Equal(t, first, second)
}

func TestCalculateIgnoresInputOrder(t *testing.T) {
	statsService := NewPeriodStatsService()

	sorted := statsService.Calculate(rampSeries(120), []int{30, 60}, models.AggregationClose,
		dayInstant(120), "1d")
	shuffled := statsService.Calculate(reversed(rampSeries(120)), []int{60, 30}, models.AggregationClose,
		dayInstant(120), "1d")

	assert.Equal(t, sorted, shuffled)
}

func TestCalculateEmptyInputs(t *testing.T) {
	statsService := NewPeriodStatsService()

	assert.Empty(t, statsService.Calculate(nil, []int{30}, models.AggregationClose, dayInstant(1), "1d"))
	assert.Empty(t, statsService.Calculate(rampSeries(10), nil, models.AggregationClose, dayInstant(10), "1d"))
}

func TestCalculateDropsUnresolvablePeriods(t *testing.T) {
	statsService := NewPeriodStatsService()
	candles := rampSeries(10)

	results := statsService.Calculate(candles, []int{5, 30}, models.AggregationClose,
		dayInstant(10), "1d")

	// the 30d period has no start candle and silently disappears
	assert.Equal(t, 1, len(results))
	assert.Equal(t, 5, results[0].PeriodDays)
}

func TestCalculateZeroStartPrice(t *testing.T) {
	statsService := NewPeriodStatsService()
	candles := closeSeries([]float64{0, 10, 20})

	results := statsService.Calculate(candles, []int{3}, models.AggregationClose,
		dayInstant(3), "1d")

	assert.Equal(t, 1, len(results))
	assert.Equal(t, 0.0, results[0].StartPrice)
	assert.Equal(t, 20.0, results[0].AbsChange)
	assert.Equal(t, 0.0, results[0].PctChange)
	// the zero-price step leaves a single valid return, not enough for volatility
	assert.Nil(t, results[0].Volatility)
}

func TestCalculateVolatility(t *testing.T) {
	statsService := NewPeriodStatsService()
	candles := closeSeries([]float64{100, 110, 99})

	results := statsService.Calculate(candles, []int{3}, models.AggregationClose,
		dayInstant(3), "1d")

	assert.Equal(t, 1, len(results))
	assert.NotNil(t, results[0].Volatility)
	// returns +10% and -10%: population stddev 0.1, annualized by sqrt(252)
	assert.Equal(t, 158.7451, *results[0].Volatility)
	assert.Equal(t, -1.0, results[0].PctChange)
}

func TestCalculateVolatilityNeedsTwoReturns(t *testing.T) {
	statsService := NewPeriodStatsService()
	candles := rampSeries(2)

	results := statsService.Calculate(candles, []int{2}, models.AggregationClose,
		dayInstant(2), "1d")

	assert.Equal(t, 1, len(results))
	assert.Nil(t, results[0].Volatility)
}

func TestCalculateIntradayLabels(t *testing.T) {
	statsService := NewPeriodStatsService()
	candles := rampSeries(10)

	results := statsService.Calculate(candles, []int{3}, models.AggregationClose,
		dayInstant(10), "1h")

	assert.Equal(t, 1, len(results))
	assert.Equal(t, dayInstant(10).Format("2006-01-02 15:04:05"), results[0].EndDate)
}

func TestCalculateHonorsAggregationRule(t *testing.T) {
	statsService := NewPeriodStatsService()
	candles := rampSeries(10)

	results := statsService.Calculate(candles, []int{3}, models.AggregationOpen,
		dayInstant(10), "1d")

	assert.Equal(t, 1, len(results))
	// open prices sit half a unit under the close
	assert.Equal(t, 7.5, results[0].StartPrice)
	assert.Equal(t, 9.5, results[0].EndPrice)
	// high/low still come from the raw extremes
	assert.Equal(t, 10.5, results[0].High)
	assert.Equal(t, 7.0, results[0].Low)
}
