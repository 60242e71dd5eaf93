package server

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"gitlab.com/aoterocom/CryptoStatsReporter/helpers"
	"gitlab.com/aoterocom/CryptoStatsReporter/interfaces"
	"gitlab.com/aoterocom/CryptoStatsReporter/models"
	"gitlab.com/aoterocom/CryptoStatsReporter/models/analytics"
	"gitlab.com/aoterocom/CryptoStatsReporter/services"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const (
	minPeriodDays   = 1
	maxPeriodDays   = 3650
	defaultPeriods  = "1,7,30,90,180,365"
	defaultInterval = "1d"
	maxSeriesLimit  = 5000
)

var allowedAggregations = map[string]bool{"close": true, "open": true, "avg": true, "ohlc4": true}

var allowedIntervals = map[string]bool{
	"1m": true, "3m": true, "5m": true, "15m": true, "30m": true,
	"1h": true, "2h": true, "4h": true, "6h": true, "8h": true, "12h": true,
	"1d": true, "3d": true, "1w": true, "1M": true,
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type StatsHandler struct {
	reportService services.ReportService
}

func NewStatsHandler(exchangeService interfaces.ExchangeService) *StatsHandler {
	return &StatsHandler{
		reportService: services.NewReportService(exchangeService),
	}
}

// GetStatsHandler computes period price-change statistics for one pair.
//
// GET /stats/:pair?periods=30,60&aggregate=close&interval=1d&limit=1000&asOf=2022-09-01T00:00:00Z&insights=true&format=json
func (h *StatsHandler) GetStatsHandler(c *gin.Context) {
	pair := strings.ToUpper(c.Param("pair"))

	periodsDays, err := parsePeriods(c.DefaultQuery("periods", defaultPeriods))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	aggregateParam := strings.ToLower(c.DefaultQuery("aggregate", "close"))
	if !allowedAggregations[aggregateParam] {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("unknown aggregate %q", aggregateParam)})
		return
	}

	interval := c.DefaultQuery("interval", defaultInterval)
	if !allowedIntervals[interval] {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("unknown interval %q", interval)})
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "1000"))
	if err != nil || limit <= 0 || limit > maxSeriesLimit {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: fmt.Sprintf("limit must be between 1 and %d", maxSeriesLimit)})
		return
	}

	asOf, err := parseAsOf(c.Query("asOf"), interval)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	withInsights, _ := strconv.ParseBool(c.DefaultQuery("insights", "false"))

	report, err := h.reportService.BuildPairReport(pair, interval, limit, periodsDays,
		models.ParseAggregation(aggregateParam), asOf, withInsights)
	if err != nil {
		helpers.Logger.Errorln(fmt.Sprintf("report for %s failed: %v", pair, err))
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: err.Error()})
		return
	}

	if c.DefaultQuery("format", "json") == "xlsx" {
		workbook, err := h.reportService.RenderXLSX([]analytics.PairReport{report})
		if err != nil {
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s-stats.xlsx", pair))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		_, _ = workbook.WriteTo(c.Writer)
		return
	}

	c.JSON(http.StatusOK, report)
}

func parsePeriods(raw string) ([]int, error) {
	parts := strings.Split(raw, ",")
	periods := make([]int, 0, len(parts))
	for _, part := range parts {
		days, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid period %q", part)
		}
		if days < minPeriodDays || days > maxPeriodDays {
			return nil, fmt.Errorf("period %d out of range [%d, %d]", days, minPeriodDays, maxPeriodDays)
		}
		periods = append(periods, days)
	}
	return periods, nil
}

// parseAsOf defaults to the last fully closed candle boundary for the
// requested interval.
func parseAsOf(raw string, interval string) (time.Time, error) {
	if raw == "" {
		seconds := helpers.StringIntervalToSeconds(interval)
		return time.Now().UTC().Truncate(time.Duration(seconds) * time.Second), nil
	}
	asOf, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid asOf %q, want RFC3339", raw)
	}
	return asOf.UTC(), nil
}
