package db

import "time"

// VisitorStat is one day's visitor counter. One row per calendar date.
type VisitorStat struct {
	ID        uint   `gorm:"primarykey"`
	Date      string `gorm:"size:10;uniqueIndex;not null"`
	Visitors  int    `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// TableName matches the legacy schema.
func (VisitorStat) TableName() string {
	return "visitor_stats"
}
