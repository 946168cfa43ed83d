// seed crea el usuario admin inicial y un par de productos de demostración.
//
// Uso: go run ./cmd/seed
// Lee la misma configuración que la API (DATABASE_URL o DB_*). La contraseña
// del admin sale de SEED_ADMIN_PASSWORD; sin ella el comando aborta.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/BlockbyJamez/my-inventory-app/internal/domain"
	"github.com/BlockbyJamez/my-inventory-app/internal/domain/entity"
	"github.com/BlockbyJamez/my-inventory-app/internal/infrastructure/postgres"
	"github.com/BlockbyJamez/my-inventory-app/pkg/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "seed:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	adminPassword := os.Getenv("SEED_ADMIN_PASSWORD")
	if adminPassword == "" {
		return fmt.Errorf("SEED_ADMIN_PASSWORD es requerido")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		return err
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	now := time.Now()
	admin := &entity.User{
		ID:           uuid.New().String(),
		Username:     "admin",
		PasswordHash: string(hash),
		Email:        os.Getenv("SEED_ADMIN_EMAIL"),
		Role:         entity.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	switch err := userRepo.Create(admin); err {
	case nil:
		fmt.Println("admin creado")
	case domain.ErrDuplicate:
		fmt.Println("admin ya existe, se omite")
	default:
		return err
	}

	demo := []*entity.Product{
		{
			ID:          uuid.New().String(),
			Name:        "MacBook Pro",
			Stock:       5,
			Price:       decimal.NewFromInt(45000),
			Category:    "Laptop",
			Description: "Apple high-end laptop.",
			ImageURL:    "https://example.com/macbook.jpg",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		{
			ID:          uuid.New().String(),
			Name:        "iPhone 15",
			Stock:       10,
			Price:       decimal.NewFromInt(35000),
			Category:    "Phone",
			Description: "Apple flagship smartphone.",
			ImageURL:    "https://example.com/iphone15.jpg",
			CreatedAt:   now,
			UpdatedAt:   now,
		},
	}

	existing, err := productRepo.List(1, 0)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		fmt.Println("ya hay productos, se omite la carga de demo")
		return nil
	}
	for _, p := range demo {
		if err := productRepo.Create(p); err != nil {
			return err
		}
	}
	fmt.Printf("%d productos de demo creados\n", len(demo))
	return nil
}
