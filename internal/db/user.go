package db

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// User is a GitHub-authenticated account. There are no passwords: identity
// comes entirely from the OAuth flow.
type User struct {
	ID                uint   `gorm:"primarykey"`
	GithubID          int64  `gorm:"uniqueIndex;not null"`
	GithubLogin       string `gorm:"size:255;index;not null"`
	Name              string `gorm:"size:255"`
	Email             string `gorm:"size:255"`
	AvatarURL         string `gorm:"size:500"`
	HTMLURL           string `gorm:"size:500"`
	GithubAccessToken string `gorm:"size:500"`
	CreatedAt         time.Time
	LastLoginAt       time.Time
}

// UpsertUser creates or refreshes the account for a GitHub identity and
// stamps the login time.
func UpsertUser(gdb *gorm.DB, githubID int64, login, name, email, avatarURL, htmlURL, accessToken string) (*User, error) {
	var user User
	err := gdb.Where("github_id = ?", githubID).First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	user.GithubID = githubID
	user.GithubLogin = login
	user.Name = name
	user.Email = email
	user.AvatarURL = avatarURL
	user.HTMLURL = htmlURL
	user.GithubAccessToken = accessToken
	user.LastLoginAt = time.Now().UTC()

	if err := gdb.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
