package services

import (
	"github.com/sdcoffey/big"
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/CryptoStatsReporter/helpers"
	"gitlab.com/aoterocom/CryptoStatsReporter/models"
	"gitlab.com/aoterocom/CryptoStatsReporter/models/analytics"
)

// InsightService produces supplementary stats for one resolved window. None
// of these affect the main period results.
type InsightService struct {
	windowService PeriodWindowService
}

func NewInsightService() InsightService {
	return InsightService{
		windowService: NewPeriodWindowService(),
	}
}

func (is *InsightService) WindowInsights(candles []*techan.Candle,
	aggregation models.PriceAggregation) analytics.WindowInsights {

	sorted := is.windowService.SortedCopy(candles)

	insights := analytics.WindowInsights{
		MaxDrawdownPct: is.maxDrawdown(sorted, aggregation),
		AverageVolume:  is.averageVolume(sorted),
	}
	insights.BestStep, insights.WorstStep = is.bestWorstSteps(sorted, aggregation)

	return insights
}

// maxDrawdown scans left to right keeping a running peak and returns the
// largest peak-to-trough decline in percent. 0 for fewer than 2 candles.
func (is *InsightService) maxDrawdown(candles []*techan.Candle,
	aggregation models.PriceAggregation) float64 {

	if len(candles) < 2 {
		return 0
	}

	peak := aggregation.Price(candles[0]).Float()
	maxDrawdown := 0.0
	for _, candle := range candles[1:] {
		price := aggregation.Price(candle).Float()
		if price > peak {
			peak = price
			continue
		}
		if peak == 0 {
			continue
		}
		drawdown := (peak - price) / peak * 100
		if drawdown > maxDrawdown {
			maxDrawdown = drawdown
		}
	}

	return helpers.RoundTo(maxDrawdown, 4)
}

// bestWorstSteps returns the consecutive-candle steps with the highest and
// lowest percentage change, dated by the step's open time. Nil for fewer than
// 2 candles.
func (is *InsightService) bestWorstSteps(candles []*techan.Candle,
	aggregation models.PriceAggregation) (*analytics.StepChange, *analytics.StepChange) {

	if len(candles) < 2 {
		return nil, nil
	}

	var best, worst *analytics.StepChange
	for i := 1; i < len(candles); i++ {
		previous := aggregation.Price(candles[i-1])
		if previous.EQ(big.ZERO) {
			continue
		}
		current := aggregation.Price(candles[i])
		absChange := current.Sub(previous)
		step := analytics.StepChange{
			Date:      candles[i].Period.Start.UTC().Format("2006-01-02"),
			AbsChange: absChange.Float(),
			PctChange: helpers.RoundTo(absChange.Div(previous).Float()*100, 4),
		}

		if best == nil || step.PctChange > best.PctChange {
			stepCopy := step
			best = &stepCopy
		}
		if worst == nil || step.PctChange < worst.PctChange {
			stepCopy := step
			worst = &stepCopy
		}
	}

	return best, worst
}

func (is *InsightService) averageVolume(candles []*techan.Candle) float64 {
	volumes := make([]float64, 0, len(candles))
	for _, candle := range candles {
		volumes = append(volumes, candle.Volume.Float())
	}
	return helpers.Mean(volumes)
}
