package main

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"timetrack/internal/config"
	"timetrack/internal/db"
	"timetrack/internal/model"
	"timetrack/internal/repository"
)

const bcryptCost = 10

// SeedUserData is one roster line: the employee plus an initial password,
// stored only as a bcrypt hash.
type SeedUserData struct {
	ID           uint
	Username     string
	Password     string
	CompleteName string
	Position     string
	PhoneNumber  string
	Active       bool
}

// roster is the field crew this deployment ships with. Passwords here are
// initial credentials; rotate them after first login.
var roster = []SeedUserData{
	{ID: 1, Username: "juan_perez", Password: "password123", CompleteName: "Juan Pérez", Position: "Driver", PhoneNumber: "+34123456789", Active: true},
	{ID: 2, Username: "maria_garcia", Password: "password456", CompleteName: "María García", Position: "Engineer", PhoneNumber: "+34987654321", Active: true},
	{ID: 3, Username: "admin_test", Password: "test123", CompleteName: "Usuario de Prueba", Position: "Engineer", PhoneNumber: "+34555123456", Active: true},
	{ID: 4, Username: "carlos_lopez", Password: "carlos2025", CompleteName: "Carlos López", Position: "Driver", PhoneNumber: "+34666789123", Active: true},
	{ID: 5, Username: "ana_martinez", Password: "ana2025", CompleteName: "Ana Martínez", Position: "Engineer", PhoneNumber: "+34777456789", Active: true},
}

func main() {
	log.Println("Starting seed script...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Connect to database
	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	// Run migrations to ensure schema is up to date
	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	userRepo := repository.NewUserRepository(gormDB)
	ctx := context.Background()

	log.Println("Seeding users into database...")
	seeded, updated, err := seedUsers(ctx, userRepo, roster)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}

	log.Printf("Seed completed successfully!")
	log.Printf("  - New users created: %d", seeded)
	log.Printf("  - Existing users updated: %d", updated)
	log.Printf("  - Total users processed: %d", seeded+updated)
}

// seedUsers upserts roster entries by username, hashing passwords on the way
// in. Existing users keep their current password hash; only profile fields
// are refreshed.
func seedUsers(ctx context.Context, repo repository.UserRepository, users []SeedUserData) (seeded int, updated int, err error) {
	for _, item := range users {
		existing, err := repo.FindByUsername(ctx, item.Username)
		if err != nil && err != gorm.ErrRecordNotFound {
			return seeded, updated, fmt.Errorf("error checking user %s: %w", item.Username, err)
		}

		if existing != nil {
			existing.CompleteName = item.CompleteName
			existing.Position = item.Position
			existing.PhoneNumber = item.PhoneNumber
			existing.Active = item.Active
			if err := repo.Update(ctx, existing); err != nil {
				return seeded, updated, fmt.Errorf("error updating user %s: %w", item.Username, err)
			}
			updated++
		} else {
			hash, err := bcrypt.GenerateFromPassword([]byte(item.Password), bcryptCost)
			if err != nil {
				return seeded, updated, fmt.Errorf("error hashing password for %s: %w", item.Username, err)
			}
			user := &model.User{
				ID:           item.ID,
				Username:     item.Username,
				PasswordHash: string(hash),
				CompleteName: item.CompleteName,
				Position:     item.Position,
				PhoneNumber:  item.PhoneNumber,
				Active:       item.Active,
			}
			if err := repo.Create(ctx, user); err != nil {
				return seeded, updated, fmt.Errorf("error creating user %s: %w", item.Username, err)
			}
			seeded++
		}
	}

	return seeded, updated, nil
}
