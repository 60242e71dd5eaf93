package services

import (
	"github.com/sdcoffey/techan"
	"gitlab.com/aoterocom/CryptoStatsReporter/models/analytics"
	"sort"
	"time"
)

// PeriodWindowService locates the start/end candles of a lookback window.
type PeriodWindowService struct {
}

func NewPeriodWindowService() PeriodWindowService {
	return PeriodWindowService{}
}

// SortedCopy returns the candles ordered ascending by open time without
// touching the input slice.
func (pws *PeriodWindowService) SortedCopy(candles []*techan.Candle) []*techan.Candle {
	sorted := make([]*techan.Candle, len(candles))
	copy(sorted, candles)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Period.Start.Before(sorted[j].Period.Start)
	})
	return sorted
}

// ResolveWindow finds the window for one period of periodDays calendar days.
// The end candle is the one with the latest close time at or before asOf, so
// unclosed future candles are never looked at. The start candle is the one
// with the latest open time at or before (end close - periodDays); when the
// series has a gap there, the start candle sits earlier than the boundary and
// the window spans more calendar time than requested. Both selections failing
// means the period has no window and the second return is false.
func (pws *PeriodWindowService) ResolveWindow(candles []*techan.Candle, periodDays int,
	asOf time.Time) (analytics.PeriodWindow, bool) {

	sorted := pws.SortedCopy(candles)

	var endCandle *techan.Candle
	for _, candle := range sorted {
		if candle.Period.End.After(asOf) {
			continue
		}
		if endCandle == nil || candle.Period.End.After(endCandle.Period.End) {
			endCandle = candle
		}
	}
	if endCandle == nil {
		return analytics.PeriodWindow{}, false
	}

	startLimit := endCandle.Period.End.Add(-time.Duration(periodDays) * 24 * time.Hour)

	var startCandle *techan.Candle
	for _, candle := range sorted {
		if candle.Period.Start.After(startLimit) || candle.Period.End.After(endCandle.Period.End) {
			continue
		}
		if startCandle == nil || candle.Period.Start.After(startCandle.Period.Start) {
			startCandle = candle
		}
	}
	if startCandle == nil {
		return analytics.PeriodWindow{}, false
	}

	var window []*techan.Candle
	for _, candle := range sorted {
		if !candle.Period.Start.Before(startCandle.Period.Start) &&
			!candle.Period.End.After(endCandle.Period.End) {
			window = append(window, candle)
		}
	}

	return analytics.PeriodWindow{
		StartCandle: startCandle,
		EndCandle:   endCandle,
		Candles:     window,
	}, true
}

// HasSufficientHistory is an advisory pre-check: does the available history
// reach back at least as far as the largest requested period? It measures from
// the earliest-opening candle among those closing at or before asOf, which is
// deliberately not the same candle the resolver would pick, so the two can
// disagree on borderline data.
func (pws *PeriodWindowService) HasSufficientHistory(candles []*techan.Candle, periodsDays []int,
	asOf time.Time) bool {

	if len(periodsDays) == 0 {
		return true
	}
	if len(candles) == 0 {
		return false
	}

	var oldest *techan.Candle
	for _, candle := range candles {
		if candle.Period.End.After(asOf) {
			continue
		}
		if oldest == nil || candle.Period.Start.Before(oldest.Period.Start) {
			oldest = candle
		}
	}
	if oldest == nil {
		return false
	}

	maxDays := periodsDays[0]
	for _, days := range periodsDays[1:] {
		if days > maxDays {
			maxDays = days
		}
	}

	elapsedDays := int(asOf.Sub(oldest.Period.Start).Hours() / 24)
	return elapsedDays >= maxDays
}
