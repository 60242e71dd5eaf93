package services

import (
	"github.com/stretchr/testify/assert"
	"gitlab.com/aoterocom/CryptoStatsReporter/models"
	"testing"
)

func TestMaxDrawdownMonotonicSeriesIsZero(t *testing.T) {
	insightService := NewInsightService()

	insights := insightService.WindowInsights(rampSeries(10), models.AggregationClose)

	assert.Equal(t, 0.0, insights.MaxDrawdownPct)
}

func TestMaxDrawdownPeakToTrough(t *testing.T) {
	insightService := NewInsightService()
	candles := closeSeries([]float64{100, 50, 150})

	insights := insightService.WindowInsights(candles, models.AggregationClose)

	// decline from the 100 peak to the 50 trough
	assert.Equal(t, 50.0, insights.MaxDrawdownPct)
}

func TestBestWorstSteps(t *testing.T) {
	insightService := NewInsightService()
	candles := closeSeries([]float64{100, 110, 99})

	insights := insightService.WindowInsights(candles, models.AggregationClose)

	assert.NotNil(t, insights.BestStep)
	assert.NotNil(t, insights.WorstStep)
	assert.Equal(t, 10.0, insights.BestStep.PctChange)
	assert.Equal(t, 10.0, insights.BestStep.AbsChange)
	assert.Equal(t, dayInstant(1).Format("2006-01-02"), insights.BestStep.Date)
	assert.Equal(t, -10.0, insights.WorstStep.PctChange)
	assert.Equal(t, -11.0, insights.WorstStep.AbsChange)
	assert.Equal(t, dayInstant(2).Format("2006-01-02"), insights.WorstStep.Date)
}

func TestInsightsSingleCandle(t *testing.T) {
	insightService := NewInsightService()

	insights := insightService.WindowInsights(rampSeries(1), models.AggregationClose)

	assert.Equal(t, 0.0, insights.MaxDrawdownPct)
	assert.Nil(t, insights.BestStep)
	assert.Nil(t, insights.WorstStep)
	assert.Equal(t, 1000.0, insights.AverageVolume)
}

func TestAverageVolume(t *testing.T) {
	insightService := NewInsightService()

	insights := insightService.WindowInsights(rampSeries(5), models.AggregationClose)

	assert.Equal(t, 1000.0, insights.AverageVolume)
}
