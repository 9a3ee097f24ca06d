package main

import (
	"context"
	"errors"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"corpdesk/internal/config"
	"corpdesk/internal/db"
	"corpdesk/internal/model"
	"corpdesk/internal/repository"
)

// Demo fixtures for local development. Passwords are bcrypt-hashed before
// insert; existing users are left untouched.
type seedUser struct {
	Email    string
	Password string
	FullName string
	Gender   string
	MobileNo string
	Company  *model.CompanyProfile
}

var seedUsers = []seedUser{
	{
		Email:    "alice@example.com",
		Password: "Passw0rd!",
		FullName: "Alice Anders",
		Gender:   model.GenderFemale,
		MobileNo: "+15551234567",
		Company: &model.CompanyProfile{
			CompanyName: "Anders Analytics",
			City:        "Austin",
			State:       "TX",
			Country:     "US",
			Industry:    "software",
		},
	},
	{
		Email:    "bob@example.com",
		Password: "Passw0rd!",
		FullName: "Bob Brennan",
		Gender:   model.GenderMale,
		MobileNo: "+15557654321",
	},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewPostgres(cfg.PostgresDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.CompanyProfile{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	companyRepo := repository.NewCompanyRepository(gormDB)

	created := 0
	for _, item := range seedUsers {
		if _, err := userRepo.FindByEmail(ctx, item.Email); err == nil {
			log.Printf("Skipping existing user: %s", item.Email)
			continue
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Fatalf("Failed to check user %s: %v", item.Email, err)
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(item.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("Failed to hash password for %s: %v", item.Email, err)
		}

		user := &model.User{
			Email:        item.Email,
			PasswordHash: string(hash),
			FullName:     item.FullName,
			Gender:       item.Gender,
			MobileNo:     item.MobileNo,
			SignupType:   model.SignupTypeEmail,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to create user %s: %v", item.Email, err)
		}
		created++

		if item.Company != nil {
			item.Company.OwnerID = user.ID
			if err := companyRepo.Create(ctx, item.Company); err != nil {
				log.Fatalf("Failed to create company for %s: %v", item.Email, err)
			}
		}
	}

	log.Printf("Seed complete: %d users created", created)
}
