package main

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/prabhu5211/Shopping-Cart/models"
	"github.com/prabhu5211/Shopping-Cart/store"
)

func strPtr(s string) *string { return &s }

// seedDatabase wipes everything and loads a sample user and catalog.
func seedDatabase(ctx context.Context, s store.Store) error {
	if err := s.Reset(ctx); err != nil {
		return err
	}
	log.Println("Cleared all existing data")

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user := models.User{
		Username:  "testuser",
		Password:  string(hashed),
		CreatedAt: time.Now(),
	}
	if err := s.CreateUser(ctx, &user); err != nil {
		return err
	}
	log.Printf("Created user: %s", user.Username)

	catalog := []struct {
		name  string
		image string
	}{
		{"Laptop", "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400"},
		{"Smartphone", "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=400"},
		{"Headphones", "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400"},
		{"Keyboard", "https://images.unsplash.com/photo-1587829741301-dc798b83add3?w=400"},
		{"Mouse", "https://images.unsplash.com/photo-1527864550417-7fd91fc51a46?w=400"},
		{"Monitor", "https://images.unsplash.com/photo-1527443224154-c4a3942d3acf?w=400"},
		{"Webcam", "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?w=400"},
		{"USB Cable", "https://images.unsplash.com/photo-1591290619762-c588f7e8e86f?w=400"},
	}
	for _, entry := range catalog {
		item := models.Item{
			Name:      entry.name,
			Image:     strPtr(entry.image),
			Status:    models.ItemStatusActive,
			CreatedAt: time.Now(),
		}
		if err := s.CreateItem(ctx, &item); err != nil {
			return err
		}
	}
	log.Printf("Created %d items", len(catalog))

	log.Println("✅ Database seeded successfully!")
	log.Println("Test credentials: testuser / password123")
	return nil
}
