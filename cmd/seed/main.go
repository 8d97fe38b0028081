package main

import (
	"log"
	"os"

	"acadmix-be/internal/model"
	"acadmix-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		color.Red("Error: DB_CONNECTION_STRING is not set")
		os.Exit(1)
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		color.Red("Error: Failed to connect to database: %v", err)
		os.Exit(1)
	}

	color.Cyan("Seeding notification types...")
	SeedNotificationTypes(db)

	color.Cyan("Seeding admin account...")
	seedAdmin(db)

	color.Green("✅ Seed complete")
}

// seedAdmin ensures one bootstrap admin account exists. Credentials come from
// env so they never land in the repo.
func seedAdmin(db *gorm.DB) {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		color.Yellow("Skip: ADMIN_EMAIL / ADMIN_PASSWORD not set")
		return
	}

	var count int64
	db.Model(&model.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		color.Yellow("Skip: admin %s already exists", email)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Error: failed to hash admin password: %v", err)
		return
	}

	admin := model.User{
		Email:        email,
		PasswordHash: string(hash),
		FullName:     "Platform Admin",
		Role:         "admin",
		Status:       "active",
	}
	if err := db.Create(&admin).Error; err != nil {
		color.Red("Error: failed to create admin: %v", err)
		return
	}
	color.Green("Created admin account %s", email)
}
