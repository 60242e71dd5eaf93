package reporter

import (
	"fmt"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"gitlab.com/aoterocom/CryptoStatsReporter/database"
	"gitlab.com/aoterocom/CryptoStatsReporter/helpers"
	"gitlab.com/aoterocom/CryptoStatsReporter/interfaces"
	"gitlab.com/aoterocom/CryptoStatsReporter/models"
	"gitlab.com/aoterocom/CryptoStatsReporter/models/analytics"
	binance2 "gitlab.com/aoterocom/CryptoStatsReporter/providers/binance"
	"gitlab.com/aoterocom/CryptoStatsReporter/providers/paper"
	"gitlab.com/aoterocom/CryptoStatsReporter/services"
	"os"
	"strconv"
	"strings"
	"time"
)

type Reporter struct {
}

func init() {
	cwd, _ := os.Getwd()
	confFile := os.Getenv("CONF_FILE")
	if confFile == "" {
		confFile = "/conf.env"
	}
	_ = godotenv.Load(cwd + confFile)
}

// Run executes one report: fetch series for every selected pair, compute the
// period stats and hand them to the configured outputs.
func (r *Reporter) Run(c *cli.Context) error {
	helpers.Logger.Infoln("📊 Price stats report started")

	exchangeService := selectExchangeService(c)

	pairs := selectPairs(c, exchangeService)
	if len(pairs) == 0 {
		return fmt.Errorf("error: couldn't initialize report. No pairs set")
	}

	periodsDays, err := selectPeriods(c)
	if err != nil {
		return err
	}

	aggregateParam := c.String("aggregate")
	if aggregateParam == "" {
		aggregateParam = os.Getenv("aggregate")
	}
	aggregation := models.ParseAggregation(aggregateParam)

	interval := os.Getenv("interval")
	if interval == "" {
		interval = "1d"
	}

	limit, _ := strconv.Atoi(os.Getenv("seriesLimit"))

	intervalSeconds := helpers.StringIntervalToSeconds(interval)
	asOf := time.Now().UTC().Truncate(time.Duration(intervalSeconds) * time.Second)

	var databaseService *database.DBService
	databaseIsEnabled, _ := strconv.ParseBool(os.Getenv("enableDatabaseRecording"))
	if databaseIsEnabled == true {
		databaseService, err = database.NewDBService(os.Getenv("databaseHost"), os.Getenv("databasePort"),
			os.Getenv("databaseName"), os.Getenv("databaseUser"), os.Getenv("databasePassword"))
		if err != nil {
			return err
		}
	}

	withInsights, _ := strconv.ParseBool(os.Getenv("reportInsights"))

	reportService := services.NewReportService(exchangeService)
	start := time.Now()

	var reports []analytics.PairReport
	for _, pair := range pairs {
		report, err := reportService.BuildPairReport(pair, interval, limit, periodsDays,
			aggregation, asOf, withInsights)
		if err != nil {
			helpers.Logger.Errorln(fmt.Sprintf("skipping %s: %v", pair, err))
			continue
		}
		reports = append(reports, report)

		for _, result := range report.Results {
			helpers.Logger.Infoln(fmt.Sprintf("%s %dd: %+.4f%% (%.8f → %.8f)", pair,
				result.PeriodDays, result.PctChange, result.StartPrice, result.EndPrice))
		}
	}

	if len(reports) == 0 {
		return fmt.Errorf("error: no pair produced a report")
	}

	delivered, err := r.deliver(c, reportService, reports, asOf)
	if err != nil {
		return err
	}

	if databaseService != nil {
		databaseService.AddReportRun(c.Command.Name, pairs, periodsDays, string(aggregation),
			asOf, time.Since(start), reports, delivered)
	}

	helpers.Logger.Infoln(fmt.Sprintf("📊 Report finished: %d pair(s) in %s", len(reports),
		time.Since(start).Round(time.Millisecond)))
	return nil
}

func (r *Reporter) deliver(c *cli.Context, reportService services.ReportService,
	reports []analytics.PairReport, asOf time.Time) (bool, error) {

	outputPath := c.String("output")
	if outputPath == "" {
		outputPath = os.Getenv("xlsxOutputFile")
	}
	mailIsEnabled, _ := strconv.ParseBool(os.Getenv("mailOutput"))

	if outputPath == "" && !mailIsEnabled {
		return false, nil
	}

	workbook, err := reportService.RenderXLSX(reports)
	if err != nil {
		return false, err
	}

	if outputPath != "" {
		if err := workbook.SaveAs(outputPath); err != nil {
			return false, err
		}
		helpers.Logger.Infoln("Report saved to " + outputPath)
	}

	if mailIsEnabled {
		mailService := services.NewMailService()
		subject := fmt.Sprintf("Price stats report %s", asOf.Format("2006-01-02"))
		attachment := fmt.Sprintf("price-stats-%s.xlsx", asOf.Format("2006-01-02"))
		if err := mailService.SendReport(subject, "Report attached.", attachment, workbook); err != nil {
			return false, err
		}
		helpers.Logger.Infoln("Report mailed")
		return true, nil
	}

	return false, nil
}

func selectExchangeService(c *cli.Context) interfaces.ExchangeService {
	if c.Bool("paper") {
		return paper.NewPaperService()
	}
	return binance2.NewBinanceService()
}

func selectPairs(c *cli.Context, exchangeService interfaces.ExchangeService) []string {
	pairsString := c.String("pairs")
	if pairsString == "" {
		pairsString = os.Getenv("pairs")
	}
	pairs := strings.Split(pairsString, ",")
	if pairs[0] != "" {
		return pairs
	}

	targetCoin := os.Getenv("targetCoin")
	if targetCoin == "" {
		return nil
	}
	whitelistCoins := strings.Split(os.Getenv("whitelistCoins"), ",")
	if whitelistCoins[0] == "" {
		whitelistCoins = []string{}
	}
	blacklistCoins := strings.Split(os.Getenv("blacklistCoins"), ",")
	if blacklistCoins[0] == "" {
		blacklistCoins = []string{}
	}
	return exchangeService.GetMarkets(targetCoin, whitelistCoins, blacklistCoins)
}

func selectPeriods(c *cli.Context) ([]int, error) {
	periodsString := c.String("periods")
	if periodsString == "" {
		periodsString = os.Getenv("periods")
	}
	if periodsString == "" {
		periodsString = "1,7,30,90,180,365"
	}

	parts := strings.Split(periodsString, ",")
	periodsDays := make([]int, 0, len(parts))
	for _, part := range parts {
		days, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || days < 1 || days > 3650 {
			return nil, fmt.Errorf("error: invalid period %q", part)
		}
		periodsDays = append(periodsDays, days)
	}
	return periodsDays, nil
}
