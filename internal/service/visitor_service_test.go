package service

import (
	"testing"
	"time"

	"github.com/gitcard/internal/db"
)

func TestVisitorServiceRecordAndStats(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewVisitorService(db.DB)

	stats, err := svc.Stats()
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TodayVisitors != 0 || stats.TotalVisitors != 0 {
		t.Fatalf("expected empty stats, got %#v", stats)
	}

	for i := 0; i < 3; i++ {
		if err := svc.RecordVisit(); err != nil {
			t.Fatalf("record visit failed: %v", err)
		}
	}

	stats, err = svc.Stats()
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TodayVisitors != 3 || stats.TotalVisitors != 3 {
		t.Fatalf("expected 3/3, got %#v", stats)
	}
}

func TestVisitorServiceSeparatesDays(t *testing.T) {
	cleanup := setupServiceTestDB(t)
	defer cleanup()

	svc := NewVisitorService(db.DB)

	yesterday := time.Now().UTC().Add(-24 * time.Hour)
	svc.now = func() time.Time { return yesterday }
	if err := svc.RecordVisit(); err != nil {
		t.Fatalf("record visit failed: %v", err)
	}
	if err := svc.RecordVisit(); err != nil {
		t.Fatalf("record visit failed: %v", err)
	}

	svc.now = time.Now
	if err := svc.RecordVisit(); err != nil {
		t.Fatalf("record visit failed: %v", err)
	}

	stats, err := svc.Stats()
	if err != nil {
		t.Fatalf("stats failed: %v", err)
	}
	if stats.TodayVisitors != 1 {
		t.Fatalf("expected 1 visitor today, got %d", stats.TodayVisitors)
	}
	if stats.TotalVisitors != 3 {
		t.Fatalf("expected 3 total visitors, got %d", stats.TotalVisitors)
	}
}
