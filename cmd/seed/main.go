package main

import (
	"context"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"surveyshare/internal/config"
	"surveyshare/internal/db"
	"surveyshare/internal/model"
	"surveyshare/internal/repository"
)

// seedUser is a demo account created for local development.
type seedUser struct {
	Name     string
	Email    string
	Password string
	Surveys  []model.Survey
}

var seedUsers = []seedUser{
	{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "secret1",
		Surveys: []model.Survey{
			{
				Title:       "Commute habits",
				Description: "Five questions about how you get to work.",
				URL:         "https://forms.example.com/commute",
				Category:    model.CategorySocial,
			},
			{
				Title:    "Favorite concert venues",
				URL:      "https://forms.example.com/venues",
				Category: model.CategoryArts,
			},
		},
	},
	{
		Name:     "Bob",
		Email:    "bob@example.com",
		Password: "secret2",
		Surveys: []model.Survey{
			{
				Title:    "Static typing survey",
				URL:      "https://forms.example.com/typing",
				Category: model.CategoryEngineering,
			},
		},
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Survey{}, &model.SurveyResponse{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	surveyRepo := repository.NewSurveyRepository(gormDB)

	created := 0
	for _, su := range seedUsers {
		user, err := userRepo.FindByEmail(ctx, su.Email)
		if err == gorm.ErrRecordNotFound {
			hash, err := bcrypt.GenerateFromPassword([]byte(su.Password), 10)
			if err != nil {
				log.Fatalf("Failed to hash password for %s: %v", su.Email, err)
			}
			user = &model.User{Name: su.Name, Email: su.Email, PasswordHash: string(hash)}
			if err := userRepo.Create(ctx, user); err != nil {
				log.Fatalf("Failed to create user %s: %v", su.Email, err)
			}
			created++
		} else if err != nil {
			log.Fatalf("Failed to look up user %s: %v", su.Email, err)
		}

		owned, err := surveyRepo.ListOwned(ctx, user.ID)
		if err != nil {
			log.Fatalf("Failed to list surveys for %s: %v", su.Email, err)
		}
		if len(owned) > 0 {
			continue // already seeded
		}
		for _, survey := range su.Surveys {
			survey.UserID = user.ID
			if err := surveyRepo.Create(ctx, &survey); err != nil {
				log.Fatalf("Failed to create survey %q: %v", survey.Title, err)
			}
		}
	}

	log.Printf("Seed complete: %d new users", created)
}
