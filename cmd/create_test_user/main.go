package main

import (
	"context"
	"errors"
	"log"
	"os"

	"payment_webapp/internal/db"
	"payment_webapp/internal/domain"
	"payment_webapp/internal/repository"
	"payment_webapp/internal/service"
)

func main() {
	// expects DATABASE_URL env var
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	pool := db.Connect(dsn)
	defer pool.Close()

	repo := repository.NewUserRepository(pool)
	ctx := context.Background()

	email := "tester@example.com"

	existing, err := repo.GetByEmail(ctx, email)
	if err == nil {
		log.Printf("user already exists id=%d\n", existing.ID)
		return
	}
	if !errors.Is(err, repository.ErrNotFound) {
		log.Fatalf("lookup failed: %v", err)
	}

	hash, err := service.HashPassword("secret1")
	if err != nil {
		log.Fatalf("hash failed: %v", err)
	}

	u := &domain.User{
		Name:         "Tester",
		Email:        email,
		PasswordHash: hash,
	}
	if err := repo.Create(ctx, u); err != nil {
		log.Fatalf("create user failed: %v", err)
	}

	log.Printf("user created id=%d email=%s password=secret1\n", u.ID, u.Email)
}
