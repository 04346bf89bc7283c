package main

import (
	"fmt"
	"log"

	"github.com/gitcard/internal/card"
	"github.com/gitcard/internal/config"
	"github.com/gitcard/internal/db"
)

// Demo data generator. Run with: go run scripts/seed_demo.go
func main() {
	cfg := config.Load()
	if err := db.Init(cfg.DatabasePath); err != nil {
		log.Fatal("failed to initialize database:", err)
	}

	fmt.Println("seeding demo data...")

	user := seedDemoUser()
	seedDemoCards(user)

	fmt.Println("demo data ready")
	fmt.Printf("user: %s (github id %d)\n", user.GithubLogin, user.GithubID)
	fmt.Printf("public card: /api/profiles/public/%s/cards/1\n", user.GithubLogin)
}

func seedDemoUser() *db.User {
	var count int64
	db.DB.Model(&db.User{}).Count(&count)
	if count > 0 {
		var user db.User
		db.DB.First(&user)
		fmt.Println("user already exists, skipping")
		return &user
	}

	user := db.User{
		GithubID:    424242,
		GithubLogin: "octocat",
		Name:        "The Octocat",
		Email:       "octocat@github.com",
		AvatarURL:   "https://avatars.githubusercontent.com/u/583231",
		HTMLURL:     "https://github.com/octocat",
	}
	if err := db.DB.Create(&user).Error; err != nil {
		log.Fatal("failed to create demo user:", err)
	}

	fmt.Println("demo user created")
	return &user
}

func seedDemoCards(user *db.User) {
	var count int64
	db.DB.Model(&db.ProfileCard{}).Where("user_id = ?", user.ID).Count(&count)
	if count > 0 {
		fmt.Println("cards already exist, skipping")
		return
	}

	cards := []db.ProfileCard{
		{
			UserID:          user.ID,
			CardTitle:       "Main Card",
			Name:            "The Octocat",
			Title:           "Backend Developer",
			Tagline:         "building things with Go",
			PrimaryColor:    card.DefaultPrimaryColor,
			SecondaryColor:  card.DefaultSecondaryColor,
			Gradient:        card.EncodeGradient(card.DefaultPrimaryColor, card.DefaultSecondaryColor),
			ShowStacks:      true,
			ShowContact:     true,
			ShowGithubStats: true,
			StackLabelLang:  "en",
			StackAlignment:  "center",
			Stacks: []card.StackEntry{
				{ID: "1", Key: "go"},
				{ID: "2", Key: "postgresql"},
				{ID: "3", Key: "docker"},
				{ID: "4", Key: "react"},
			},
			Contacts: []card.ContactEntry{
				{ID: "1", Type: "mail", Value: "octocat@github.com"},
				{ID: "2", Type: "linkedin", Value: "https://linkedin.com/in/octocat"},
			},
		},
		{
			UserID:         user.ID,
			CardTitle:      "Algorithm Card",
			Name:           "The Octocat",
			Title:          "Problem Solver",
			PrimaryColor:   "#111827",
			SecondaryColor: "#374151",
			Gradient:       card.EncodeGradient("#111827", "#374151"),
			ShowStacks:     true,
			ShowBaekjoon:   true,
			BaekjoonID:     "octocat",
			StackLabelLang: "ko",
			StackAlignment: "left",
			Stacks: []card.StackEntry{
				{ID: "1", Key: "python"},
				{ID: "2", Key: "cpp"},
			},
			Contacts: []card.ContactEntry{},
		},
	}

	for i := range cards {
		if err := db.DB.Create(&cards[i]).Error; err != nil {
			log.Printf("failed to create demo card: %v", err)
		}
	}

	fmt.Printf("created %d demo cards\n", len(cards))
}
