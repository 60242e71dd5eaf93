package analytics

import (
	"github.com/sdcoffey/techan"
	"time"
)

// PeriodResult holds the price-change statistics for one lookback period.
// Volatility is nil when fewer than 2 valid returns were available.
type PeriodResult struct {
	PeriodDays int      `json:"periodDays"`
	StartDate  string   `json:"startDate"`
	EndDate    string   `json:"endDate"`
	StartPrice float64  `json:"startPrice"`
	EndPrice   float64  `json:"endPrice"`
	AbsChange  float64  `json:"absChange"`
	PctChange  float64  `json:"pctChange"`
	High       float64  `json:"high"`
	Low        float64  `json:"low"`
	Volatility *float64 `json:"volatility,omitempty"`
}

// PeriodWindow is the resolved candle span for one period.
type PeriodWindow struct {
	StartCandle *techan.Candle
	EndCandle   *techan.Candle
	Candles     []*techan.Candle
}

type StepChange struct {
	Date      string  `json:"date"`
	AbsChange float64 `json:"absChange"`
	PctChange float64 `json:"pctChange"`
}

// WindowInsights are supplementary stats over a single resolved window.
type WindowInsights struct {
	MaxDrawdownPct float64     `json:"maxDrawdownPct"`
	BestStep       *StepChange `json:"bestStep,omitempty"`
	WorstStep      *StepChange `json:"worstStep,omitempty"`
	AverageVolume  float64     `json:"averageVolume"`
}

type PairReport struct {
	Pair        string          `json:"pair"`
	Interval    string          `json:"interval"`
	Aggregation string          `json:"aggregation"`
	AsOf        time.Time       `json:"asOf"`
	GeneratedAt time.Time       `json:"generatedAt"`
	Results     []PeriodResult  `json:"results"`
	Insights    *WindowInsights `json:"insights,omitempty"`
}
