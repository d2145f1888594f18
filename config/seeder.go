package config

import (
	"log"

	"cubikor_backend/models"
	"cubikor_backend/utils"

	"gorm.io/gorm"
)

func SeedCategories(db *gorm.DB) {
	categories := []models.Category{
		{Name: "Electronics", Slug: "electronics"},
		{Name: "Clothing", Slug: "clothing"},
		{Name: "Home & Kitchen", Slug: "home-kitchen"},
		{Name: "Books", Slug: "books"},
	}

	for _, category := range categories {
		var existing models.Category
		if err := db.Where("slug = ?", category.Slug).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&category).Error; err != nil {
				log.Printf("Failed to seed category %s: %v", category.Name, err)
			}
		}
	}
}

func SeedUsers(db *gorm.DB) {
	log.Println("🌱 Seeding users...")

	password, _ := utils.HashPassword("password123")

	users := []models.User{
		{
			Username: "user1",
			Email:    "user1@example.com",
			Password: password,
			Name:     "User One",
			Role:     "user",
			Street:   "12 Main St",
			City:     "Kolkata",
			State:    "WB",
			Zipcode:  "700001",
		},
		{
			Username: "user2",
			Email:    "user2@example.com",
			Password: password,
			Name:     "User Two",
			Role:     "user",
		},
	}

	for _, user := range users {
		var existingUser models.User
		if err := db.Where("email = ?", user.Email).First(&existingUser).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&user).Error; err != nil {
					log.Printf("Failed to seed user %s: %v", user.Username, err)
				} else {
					log.Printf("User seeded: %s (ID: %d)", user.Username, user.ID)
				}
			}
		} else {
			log.Printf("User already exists: %s", user.Username)
		}
	}

	log.Println("✅ Seeding complete.")
}

func SeedShops(db *gorm.DB) {
	log.Println("🌱 Seeding shops...")

	password, _ := utils.HashPassword("password123")

	shops := []models.Shop{
		{
			ShopName:  "Cubikor Store",
			Email:     "store@example.com",
			Password:  password,
			OwnerName: "Store Owner",
		},
	}

	for _, shop := range shops {
		var existing models.Shop
		if err := db.Where("email = ?", shop.Email).First(&existing).Error; err == gorm.ErrRecordNotFound {
			if err := db.Create(&shop).Error; err != nil {
				log.Printf("Failed to seed shop %s: %v", shop.ShopName, err)
			} else {
				log.Printf("Shop seeded: %s (ID: %d)", shop.ShopName, shop.ID)
			}
		}
	}
}
