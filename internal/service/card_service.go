package service

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/gitcard/internal/card"
	"github.com/gitcard/internal/db"
)

var (
	// ErrCardNotFound is returned when a card does not exist or belongs
	// to another user.
	ErrCardNotFound = errors.New("profile card not found")
	// ErrCardInvalidInput is returned when a create request is missing
	// required fields.
	ErrCardInvalidInput = errors.New("invalid profile card input")
)

// CardService owns CRUD for profile cards. All owner-scoped operations
// filter by user id; the public read path joins through the github login.
type CardService struct {
	db *gorm.DB
}

// NewCardService constructs a CardService.
func NewCardService(gdb *gorm.DB) *CardService {
	return &CardService{db: gdb}
}

// CardInput carries the editable fields of a card. Pointer fields
// distinguish "not provided" from zero values on update; updates are
// last-write-wins with no locking.
type CardInput struct {
	CardTitle       *string
	Name            *string
	Title           *string
	Tagline         *string
	PrimaryColor    *string
	SecondaryColor  *string
	Gradient        *string
	ShowStacks      *bool
	ShowContact     *bool
	ShowGithubStats *bool
	ShowBaekjoon    *bool
	BaekjoonID      *string
	StackLabelLang  *string
	StackAlignment  *string
	Stacks          []card.StackEntry
	Contacts        []card.ContactEntry
	Repositories    []card.RepositorySummary
}

// Create stores a new card for the user. Missing colors and gradient are
// normalized to the default pair so the stored gradient always matches the
// endpoint colors.
func (s *CardService) Create(userID uint, input CardInput) (*db.ProfileCard, error) {
	if input.CardTitle == nil || strings.TrimSpace(*input.CardTitle) == "" {
		return nil, fmt.Errorf("%w: card_title is required", ErrCardInvalidInput)
	}
	if input.Name == nil || strings.TrimSpace(*input.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrCardInvalidInput)
	}

	record := db.ProfileCard{
		UserID:          userID,
		CardTitle:       strings.TrimSpace(*input.CardTitle),
		Name:            strings.TrimSpace(*input.Name),
		ShowStacks:      true,
		ShowContact:     true,
		ShowGithubStats: true,
	}
	applyInput(&record, input)
	normalizeRecord(&record)

	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("create profile card: %w", err)
	}
	return &record, nil
}

// ListByUser returns the user's cards, newest first.
func (s *CardService) ListByUser(userID uint) ([]db.ProfileCard, error) {
	var cards []db.ProfileCard
	if err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&cards).Error; err != nil {
		return nil, fmt.Errorf("list profile cards: %w", err)
	}
	return cards, nil
}

// Get loads one card owned by the user.
func (s *CardService) Get(cardID, userID uint) (*db.ProfileCard, error) {
	var record db.ProfileCard
	err := s.db.Where("id = ? AND user_id = ?", cardID, userID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCardNotFound
		}
		return nil, fmt.Errorf("get profile card: %w", err)
	}
	return &record, nil
}

// Update applies the provided fields to a card the user owns. Absent
// fields keep their stored value; the gradient is regenerated whenever
// either endpoint color changes.
func (s *CardService) Update(cardID, userID uint, input CardInput) (*db.ProfileCard, error) {
	record, err := s.Get(cardID, userID)
	if err != nil {
		return nil, err
	}

	applyInput(record, input)
	normalizeRecord(record)

	if err := s.db.Save(record).Error; err != nil {
		return nil, fmt.Errorf("update profile card: %w", err)
	}
	return record, nil
}

// Delete removes a card the user owns.
func (s *CardService) Delete(cardID, userID uint) error {
	result := s.db.Where("id = ? AND user_id = ?", cardID, userID).Delete(&db.ProfileCard{})
	if result.Error != nil {
		return fmt.Errorf("delete profile card: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCardNotFound
	}
	return nil
}

// GetPublic loads a card by its owner's github login without any
// authentication. This is the projection behind the public card page.
func (s *CardService) GetPublic(githubLogin string, cardID uint) (*db.ProfileCard, *db.User, error) {
	var user db.User
	err := s.db.Where("github_login = ?", githubLogin).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCardNotFound
		}
		return nil, nil, fmt.Errorf("get public card owner: %w", err)
	}

	var record db.ProfileCard
	err = s.db.Where("id = ? AND user_id = ?", cardID, user.ID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrCardNotFound
		}
		return nil, nil, fmt.Errorf("get public card: %w", err)
	}

	return &record, &user, nil
}

func applyInput(record *db.ProfileCard, input CardInput) {
	if input.CardTitle != nil {
		record.CardTitle = strings.TrimSpace(*input.CardTitle)
	}
	if input.Name != nil {
		record.Name = strings.TrimSpace(*input.Name)
	}
	if input.Title != nil {
		record.Title = strings.TrimSpace(*input.Title)
	}
	if input.Tagline != nil {
		record.Tagline = strings.TrimSpace(*input.Tagline)
	}
	if input.PrimaryColor != nil {
		record.PrimaryColor = strings.TrimSpace(*input.PrimaryColor)
	}
	if input.SecondaryColor != nil {
		record.SecondaryColor = strings.TrimSpace(*input.SecondaryColor)
	}
	if input.Gradient != nil {
		record.Gradient = strings.TrimSpace(*input.Gradient)
	}
	if input.ShowStacks != nil {
		record.ShowStacks = *input.ShowStacks
	}
	if input.ShowContact != nil {
		record.ShowContact = *input.ShowContact
	}
	if input.ShowGithubStats != nil {
		record.ShowGithubStats = *input.ShowGithubStats
	}
	if input.ShowBaekjoon != nil {
		record.ShowBaekjoon = *input.ShowBaekjoon
	}
	if input.BaekjoonID != nil {
		record.BaekjoonID = strings.TrimSpace(*input.BaekjoonID)
	}
	if input.StackLabelLang != nil {
		record.StackLabelLang = strings.TrimSpace(*input.StackLabelLang)
	}
	if input.StackAlignment != nil {
		record.StackAlignment = strings.TrimSpace(*input.StackAlignment)
	}
	if input.Stacks != nil {
		record.Stacks = input.Stacks
	}
	if input.Contacts != nil {
		record.Contacts = input.Contacts
	}
	if input.Repositories != nil {
		record.Repositories = input.Repositories
	}
}

// normalizeRecord runs the config normalization and writes the coerced
// fields back to the row, keeping the stored gradient consistent with the
// stored colors.
func normalizeRecord(record *db.ProfileCard) {
	cfg := record.Config()
	record.PrimaryColor = cfg.PrimaryColor
	record.SecondaryColor = cfg.SecondaryColor
	record.Gradient = cfg.Gradient
	record.StackLabelLang = cfg.StackLabelLang
	record.StackAlignment = cfg.StackAlignment
	record.BaekjoonID = cfg.BaekjoonID
	record.Stacks = cfg.Stacks
	record.Contacts = cfg.Contacts
	record.Repositories = cfg.Repositories
}
