package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/gitcard/internal/db"
)

// VisitorService maintains the daily visitor counters shown on the
// dashboard. One row per calendar date, incremented on each visit.
type VisitorService struct {
	db *gorm.DB

	// now is swapped in tests to pin the date.
	now func() time.Time
}

// VisitorStats is the dashboard payload.
type VisitorStats struct {
	TodayVisitors int `json:"today_visitors"`
	TotalVisitors int `json:"total_visitors"`
}

// NewVisitorService constructs a VisitorService.
func NewVisitorService(gdb *gorm.DB) *VisitorService {
	return &VisitorService{db: gdb, now: time.Now}
}

// RecordVisit increments today's counter, creating the row on first visit.
func (s *VisitorService) RecordVisit() error {
	today := s.today()

	return s.db.Transaction(func(tx *gorm.DB) error {
		var record db.VisitorStat
		err := tx.Where("date = ?", today).First(&record).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			record = db.VisitorStat{Date: today, Visitors: 1}
			return tx.Create(&record).Error
		}
		if err != nil {
			return fmt.Errorf("record visit: %w", err)
		}

		record.Visitors++
		return tx.Save(&record).Error
	})
}

// Stats returns today's and the all-time visitor counts.
func (s *VisitorService) Stats() (VisitorStats, error) {
	var stats VisitorStats

	var record db.VisitorStat
	err := s.db.Where("date = ?", s.today()).First(&record).Error
	if err == nil {
		stats.TodayVisitors = record.Visitors
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return stats, fmt.Errorf("today visitors: %w", err)
	}

	var total *int
	if err := s.db.Model(&db.VisitorStat{}).
		Select("SUM(visitors)").
		Scan(&total).Error; err != nil {
		return stats, fmt.Errorf("total visitors: %w", err)
	}
	if total != nil {
		stats.TotalVisitors = *total
	}

	return stats, nil
}

func (s *VisitorService) today() string {
	return s.now().UTC().Format("2006-01-02")
}
