package db

import (
	"time"

	"github.com/gitcard/internal/card"
)

// ProfileCard persists one card configuration. The stack, contact and
// repository lists are stored as JSON columns; extra unresolved fields in
// persisted entries are tolerated, never rejected.
type ProfileCard struct {
	ID              uint   `gorm:"primarykey"`
	UserID          uint   `gorm:"index;not null"`
	CardTitle       string `gorm:"size:255;not null"`
	Name            string `gorm:"size:255;not null"`
	Title           string `gorm:"size:255;not null"`
	Tagline         string `gorm:"size:500"`
	PrimaryColor    string `gorm:"size:7;not null;default:'#667eea'"`
	SecondaryColor  string `gorm:"size:7;not null;default:'#764ba2'"`
	Gradient        string `gorm:"size:500;not null"`
	ShowStacks      bool   `gorm:"not null;default:true"`
	ShowContact     bool   `gorm:"not null;default:true"`
	ShowGithubStats bool   `gorm:"not null;default:true"`
	ShowBaekjoon    bool   `gorm:"not null;default:false"`
	BaekjoonID      string `gorm:"size:255"`
	StackLabelLang  string `gorm:"size:2;not null;default:'en'"`
	StackAlignment  string `gorm:"size:10;not null;default:'center'"`

	Stacks       []card.StackEntry        `gorm:"serializer:json"`
	Contacts     []card.ContactEntry      `gorm:"serializer:json"`
	Repositories []card.RepositorySummary `gorm:"serializer:json"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName keeps the table name aligned with the public API wording.
func (ProfileCard) TableName() string {
	return "profile_cards"
}

// Config projects the stored row into the in-memory configuration model.
func (p *ProfileCard) Config() card.Config {
	cfg := card.Config{
		CardTitle:       p.CardTitle,
		Name:            p.Name,
		Title:           p.Title,
		Tagline:         p.Tagline,
		PrimaryColor:    p.PrimaryColor,
		SecondaryColor:  p.SecondaryColor,
		Gradient:        p.Gradient,
		ShowStacks:      p.ShowStacks,
		ShowContact:     p.ShowContact,
		ShowGithubStats: p.ShowGithubStats,
		ShowBaekjoon:    p.ShowBaekjoon,
		BaekjoonID:      p.BaekjoonID,
		StackLabelLang:  p.StackLabelLang,
		StackAlignment:  p.StackAlignment,
		Stacks:          p.Stacks,
		Contacts:        p.Contacts,
		Repositories:    p.Repositories,
	}
	cfg.Normalize()
	return cfg
}
