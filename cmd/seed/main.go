package main

import (
	"context"
	"log"

	"sweetshop/internal/config"
	"sweetshop/internal/db"
	"sweetshop/internal/model"
	"sweetshop/internal/repository"
	"sweetshop/internal/seed"
)

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Sweet{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	sweetRepo := repository.NewSweetRepository(gormDB)

	users, err := seed.Users()
	if err != nil {
		log.Fatalf("Failed to build demo users: %v", err)
	}
	for i := range users {
		if _, err := userRepo.FindByIDOrCreate(ctx, &users[i]); err != nil {
			log.Fatalf("Failed to seed user %s: %v", users[i].Email, err)
		}
	}
	log.Printf("Seeded %d demo users", len(users))

	sweets := seed.Sweets()
	for i := range sweets {
		if _, err := sweetRepo.FindByIDOrCreate(ctx, &sweets[i]); err != nil {
			log.Fatalf("Failed to seed sweet %s: %v", sweets[i].Name, err)
		}
	}
	log.Printf("Seeded %d sweets", len(sweets))

	log.Println("Seed completed")
}
