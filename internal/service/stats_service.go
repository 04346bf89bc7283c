package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/gitcard/internal/card"
	"github.com/gitcard/internal/db"
	"github.com/gitcard/internal/github"
)

// StatsService keeps per-user GitHub statistics cached in the database so
// card rendering never waits on the GitHub API.
type StatsService struct {
	db     *gorm.DB
	github *github.Client
	log    *zap.SugaredLogger
}

// NewStatsService constructs a StatsService.
func NewStatsService(gdb *gorm.DB, client *github.Client, log *zap.SugaredLogger) *StatsService {
	return &StatsService{db: gdb, github: client, log: log}
}

// Cached returns the stored stats for a user, or nil when no sync has
// succeeded yet. A nil result degrades the stats section, never errors.
func (s *StatsService) Cached(userID uint) (*card.GithubStats, error) {
	var record db.GitHubStats
	err := s.db.Where("user_id = ?", userID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cached github stats: %w", err)
	}
	return statsFromRecord(record), nil
}

// Fetch gets live stats for a user, refreshing the cache on success and
// falling back to the cached copy when GitHub is unreachable.
func (s *StatsService) Fetch(ctx context.Context, user *db.User) (*card.GithubStats, error) {
	stats, err := s.github.FetchStats(ctx, user.GithubLogin, user.GithubAccessToken)
	if err != nil {
		cached, cacheErr := s.Cached(user.ID)
		if cacheErr == nil && cached != nil {
			s.log.Debugw("serving cached github stats", "login", user.GithubLogin, "err", err)
			return cached, nil
		}
		return nil, err
	}

	if err := s.store(user.ID, stats); err != nil {
		s.log.Warnw("failed to cache github stats", "login", user.GithubLogin, "err", err)
	}
	return &card.GithubStats{
		Repositories:  stats.Repositories,
		Stars:         stats.Stars,
		Followers:     stats.Followers,
		Following:     stats.Following,
		Contributions: stats.Contributions,
	}, nil
}

// SyncAll refreshes the cache for every known user. One user failing does
// not stop the loop.
func (s *StatsService) SyncAll(ctx context.Context) {
	var users []db.User
	if err := s.db.Find(&users).Error; err != nil {
		s.log.Errorw("stats sync: list users", "err", err)
		return
	}

	for i := range users {
		user := &users[i]
		stats, err := s.github.FetchStats(ctx, user.GithubLogin, user.GithubAccessToken)
		if err != nil {
			s.log.Warnw("stats sync: fetch failed", "login", user.GithubLogin, "err", err)
			continue
		}
		if err := s.store(user.ID, stats); err != nil {
			s.log.Warnw("stats sync: store failed", "login", user.GithubLogin, "err", err)
		}
	}
}

// RunSyncLoop periodically refreshes every user's stats until the context
// is cancelled. A short initial delay lets the server finish booting.
func (s *StatsService) RunSyncLoop(ctx context.Context, interval time.Duration) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(10 * time.Second):
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		s.log.Infow("github stats sync starting")
		s.SyncAll(ctx)
		s.log.Infow("github stats sync finished")

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *StatsService) store(userID uint, stats *github.Stats) error {
	var record db.GitHubStats
	err := s.db.Where("user_id = ?", userID).First(&record).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	record.UserID = userID
	record.Repositories = &stats.Repositories
	record.Stars = &stats.Stars
	record.Followers = &stats.Followers
	record.Following = &stats.Following
	record.Contributions = stats.Contributions
	record.LastSyncedAt = time.Now().UTC()

	return s.db.Save(&record).Error
}

func statsFromRecord(record db.GitHubStats) *card.GithubStats {
	stats := &card.GithubStats{Contributions: record.Contributions}
	if record.Repositories != nil {
		stats.Repositories = *record.Repositories
	}
	if record.Stars != nil {
		stats.Stars = *record.Stars
	}
	if record.Followers != nil {
		stats.Followers = *record.Followers
	}
	if record.Following != nil {
		stats.Following = *record.Following
	}
	return stats
}
