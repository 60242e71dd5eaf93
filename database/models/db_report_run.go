package database

import (
	"gorm.io/gorm"
	"time"
)

type ReportRun struct {
	gorm.Model
	Trigger     string `json:"trigger" gorm:"size:50"`
	Pairs       string `json:"pairs" gorm:"size:500"`
	Periods     string `json:"periods" gorm:"size:200"`
	Aggregation string `json:"aggregation" gorm:"size:20"`
	AsOf        time.Time
	DurationMs  int64          `json:"durationMs"`
	ResultCount int            `json:"resultCount"`
	Delivered   bool           `json:"delivered"`
	Results     []PeriodResult `json:"results"`
}
