package db

import "time"

// GitHubStats caches the numbers fetched from the GitHub API per user, so
// card rendering does not hit the API on every request. Nullable columns
// stay nil until the first successful sync.
type GitHubStats struct {
	ID            uint `gorm:"primarykey"`
	UserID        uint `gorm:"uniqueIndex;not null"`
	Repositories  *int
	Stars         *int
	Followers     *int
	Following     *int
	Contributions *int
	LastSyncedAt  time.Time
}

// TableName matches the legacy schema.
func (GitHubStats) TableName() string {
	return "github_stats"
}
