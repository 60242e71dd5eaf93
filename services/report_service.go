package services

import (
	"fmt"
	"github.com/xuri/excelize/v2"
	"gitlab.com/aoterocom/CryptoStatsReporter/interfaces"
	"gitlab.com/aoterocom/CryptoStatsReporter/models"
	"gitlab.com/aoterocom/CryptoStatsReporter/models/analytics"
	"time"
)

// ReportService glues the exchange collaborator to the stats engine and
// renders the outcome as a spreadsheet.
type ReportService struct {
	exchangeService interfaces.ExchangeService
	statsService    PeriodStatsService
	windowService   PeriodWindowService
	insightService  InsightService
}

func NewReportService(exchangeService interfaces.ExchangeService) ReportService {
	return ReportService{
		exchangeService: exchangeService,
		statsService:    NewPeriodStatsService(),
		windowService:   NewPeriodWindowService(),
		insightService:  NewInsightService(),
	}
}

func (rs *ReportService) BuildPairReport(pair string, interval string, limit int, periodsDays []int,
	aggregation models.PriceAggregation, asOf time.Time, withInsights bool) (analytics.PairReport, error) {

	series, err := rs.exchangeService.GetSeries(pair, interval, limit)
	if err != nil {
		return analytics.PairReport{}, err
	}
	candles := series.Candles

	if !rs.windowService.HasSufficientHistory(candles, periodsDays, asOf) {
		logger.Warnln(fmt.Sprintf("%s history does not cover the largest requested period", pair))
	}

	report := analytics.PairReport{
		Pair:        pair,
		Interval:    interval,
		Aggregation: string(aggregation),
		AsOf:        asOf.UTC(),
		GeneratedAt: time.Now().UTC(),
		Results:     rs.statsService.Calculate(candles, periodsDays, aggregation, asOf, interval),
	}

	if withInsights && len(periodsDays) > 0 {
		maxDays := periodsDays[0]
		for _, days := range periodsDays[1:] {
			if days > maxDays {
				maxDays = days
			}
		}
		if window, ok := rs.windowService.ResolveWindow(candles, maxDays, asOf); ok {
			insights := rs.insightService.WindowInsights(window.Candles, aggregation)
			report.Insights = &insights
		}
	}

	return report, nil
}

// RenderXLSX renders one sheet per pair: a header row, one row per period
// result and an optional insight block underneath.
func (rs *ReportService) RenderXLSX(reports []analytics.PairReport) (*excelize.File, error) {
	file := excelize.NewFile()

	for i, report := range reports {
		sheet := report.Pair
		if i == 0 {
			file.SetSheetName("Sheet1", sheet)
		} else {
			file.NewSheet(sheet)
		}

		header := []interface{}{"Period (days)", "Start", "End", "Start price", "End price",
			"Change", "Change %", "High", "Low", "Volatility %"}
		if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
			return nil, err
		}

		for rowIndex, result := range report.Results {
			cell, err := excelize.CoordinatesToCellName(1, rowIndex+2)
			if err != nil {
				return nil, err
			}
			var volatility interface{}
			if result.Volatility != nil {
				volatility = *result.Volatility
			}
			row := []interface{}{result.PeriodDays, result.StartDate, result.EndDate,
				result.StartPrice, result.EndPrice, result.AbsChange, result.PctChange,
				result.High, result.Low, volatility}
			if err := file.SetSheetRow(sheet, cell, &row); err != nil {
				return nil, err
			}
		}

		if report.Insights != nil {
			baseRow := len(report.Results) + 3
			rows := [][]interface{}{
				{"Max drawdown %", report.Insights.MaxDrawdownPct},
				{"Average volume", report.Insights.AverageVolume},
			}
			if report.Insights.BestStep != nil {
				rows = append(rows, []interface{}{"Best step", report.Insights.BestStep.Date,
					report.Insights.BestStep.AbsChange, report.Insights.BestStep.PctChange})
			}
			if report.Insights.WorstStep != nil {
				rows = append(rows, []interface{}{"Worst step", report.Insights.WorstStep.Date,
					report.Insights.WorstStep.AbsChange, report.Insights.WorstStep.PctChange})
			}
			for offset, row := range rows {
				cell, err := excelize.CoordinatesToCellName(1, baseRow+offset)
				if err != nil {
					return nil, err
				}
				rowCopy := row
				if err := file.SetSheetRow(sheet, cell, &rowCopy); err != nil {
					return nil, err
				}
			}
		}
	}

	return file, nil
}
