package database

import (
	"gorm.io/gorm"
)

type PeriodResult struct {
	gorm.Model
	ReportRunID uint     `json:"reportRunId"`
	Pair        string   `json:"pair" gorm:"size:200"`
	PeriodDays  int      `json:"periodDays"`
	StartDate   string   `json:"startDate" gorm:"size:50"`
	EndDate     string   `json:"endDate" gorm:"size:50"`
	StartPrice  float64  `json:"startPrice"`
	EndPrice    float64  `json:"endPrice"`
	AbsChange   float64  `json:"absChange"`
	PctChange   float64  `json:"pctChange"`
	High        float64  `json:"high"`
	Low         float64  `json:"low"`
	Volatility  *float64 `json:"volatility"`
}
