package database

import (
	"github.com/joho/godotenv"
	database "gitlab.com/aoterocom/CryptoStatsReporter/database/models"
	"gitlab.com/aoterocom/CryptoStatsReporter/models/analytics"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"os"
	"strconv"
	"strings"
	"time"
)

type DBService struct {
	DB *gorm.DB
}

func NewDBService(dbHost string, dbPort string, dbName string, dbUser string, dbPass string) (*DBService, error) {
	dsn := dbUser + ":" + dbPass + "@tcp(" + dbHost + ":" + dbPort + ")/" + dbName + "?charset=utf8mb4&parseTime=True&loc=Local"
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	dbs := &DBService{
		DB: db,
	}

	err = dbs.DB.AutoMigrate(&database.ReportRun{}, &database.PeriodResult{})
	if err != nil {
		return nil, err
	}

	return dbs, nil
}

func init() {
	cwd, _ := os.Getwd()
	confFile := os.Getenv("CONF_FILE")
	if confFile == "" {
		confFile = "/conf.env"
	}
	_ = godotenv.Load(cwd + confFile)
}

// AddReportRun records one execution for auditing: what was requested, how
// long it took and every emitted row.
func (dbs *DBService) AddReportRun(trigger string, pairs []string, periodsDays []int,
	aggregation string, asOf time.Time, duration time.Duration,
	reports []analytics.PairReport, delivered bool) uint {

	var dbResults []database.PeriodResult
	resultCount := 0
	for _, report := range reports {
		for _, result := range report.Results {
			resultCount++
			dbResults = append(dbResults, database.PeriodResult{
				Pair:       report.Pair,
				PeriodDays: result.PeriodDays,
				StartDate:  result.StartDate,
				EndDate:    result.EndDate,
				StartPrice: result.StartPrice,
				EndPrice:   result.EndPrice,
				AbsChange:  result.AbsChange,
				PctChange:  result.PctChange,
				High:       result.High,
				Low:        result.Low,
				Volatility: result.Volatility,
			})
		}
	}

	periodsStrings := make([]string, 0, len(periodsDays))
	for _, days := range periodsDays {
		periodsStrings = append(periodsStrings, strconv.Itoa(days))
	}

	dbReportRun := database.ReportRun{
		Trigger:     trigger,
		Pairs:       strings.Join(pairs, ","),
		Periods:     strings.Join(periodsStrings, ","),
		Aggregation: aggregation,
		AsOf:        asOf.UTC(),
		DurationMs:  duration.Milliseconds(),
		ResultCount: resultCount,
		Delivered:   delivered,
		Results:     dbResults,
	}

	dbs.DB.Create(&dbReportRun)
	return dbReportRun.ID
}
