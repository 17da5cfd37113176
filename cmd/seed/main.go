// seed populates a fresh database with an admin account and a starter set
// of products for each warehouse domain.
//
// Usage: go run ./cmd/seed
// Reads the same environment variables as the API server. The admin password
// comes from SEED_ADMIN_PASSWORD (default "admin123").
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/hutecki/bankiety-api/internal/domain/entity"
	"github.com/hutecki/bankiety-api/internal/infrastructure/postgres"
	"github.com/hutecki/bankiety-api/pkg/config"
)

type seedProduct struct {
	domain      entity.Domain
	name        string
	category    string
	subcategory string
	unit        string
	quantity    string
}

var seedProducts = []seedProduct{
	{entity.DomainAlcohol, "Prosecco DOC", "wino_biale", "", "szt", "24"},
	{entity.DomainAlcohol, "Chianti Classico", "wino_czerwone", "", "szt", "18"},
	{entity.DomainAlcohol, "Jack Daniel's", "whiskey", "", "szt", "6"},
	{entity.DomainNaciagi, "Pepsi", "napoje", "pepsi", "l", "40"},
	{entity.DomainNaciagi, "Mleko 3.2%", "mleko", "mleko_zwykle", "l", "20"},
	{entity.DomainSuchy, "Mąka pszenna", "suchy", "maka", "kg", "50"},
	{entity.DomainSuchy, "Cukier", "suchy", "cukier", "kg", "30"},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fail("load configuration: %v", err)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fail("connect: %v", err)
	}
	defer pool.Close()

	users := postgres.NewUserRepository(pool)
	products := postgres.NewProductRepository(pool)

	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		fail("hash password: %v", err)
	}
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     "admin",
		PasswordHash: string(hash),
		Role:         entity.RoleAdmin,
		CreatedAt:    time.Now(),
	}
	if err := users.Create(admin); err != nil {
		fmt.Printf("admin user: %v (skipping)\n", err)
	} else {
		fmt.Println("admin user created")
	}

	for _, s := range seedProducts {
		qty, err := decimal.NewFromString(s.quantity)
		if err != nil {
			fail("parse quantity %q: %v", s.quantity, err)
		}
		now := time.Now()
		p := &entity.Product{
			ID:          uuid.New().String(),
			Domain:      s.domain,
			Name:        s.name,
			Category:    s.category,
			Subcategory: s.subcategory,
			Unit:        s.unit,
			Quantity:    qty,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		if err := products.Create(p); err != nil {
			fmt.Printf("product %q: %v (skipping)\n", s.name, err)
			continue
		}
		fmt.Printf("product %q seeded in %s\n", s.name, s.domain)
	}
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
