package main

import (
	"context"
	"log"
	"time"

	"estatehub/internal/config"
	"estatehub/internal/database"
	"estatehub/internal/domain"
	"estatehub/internal/repository"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

const seedPassword = "Test123456"

type seedProperty struct {
	title, description, address, city, image string
	price                                    float64
	bedrooms, bathrooms, parkings            int
	owner                                    int
}

var properties = []seedProperty{
	{"Modern Family House", "Beautiful 3-bedroom family house with a spacious backyard and modern amenities.", "123 Main Street", "New York", "https://images.unsplash.com/photo-1568605114967-8130f3a36994", 450000, 3, 2, 2, 0},
	{"Luxury Downtown Apartment", "Stunning 2-bedroom apartment in the heart of downtown with city views.", "456 Park Avenue", "Los Angeles", "https://images.unsplash.com/photo-1580587771525-78b9dba3b914", 350000, 2, 2, 1, 1},
	{"Cozy Suburban Home", "Charming 4-bedroom home in a quiet suburban neighborhood with a large garden.", "789 Oak Lane", "Chicago", "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9", 380000, 4, 3, 2, 0},
	{"Beach House Paradise", "Beachfront property with panoramic ocean views and direct beach access.", "321 Ocean Drive", "Miami", "https://images.unsplash.com/photo-1613977257363-707ba9348227", 750000, 3, 3, 2, 2},
	{"Modern Studio Loft", "Studio loft in the arts district with high ceilings and exposed brick.", "555 Arts Street", "Portland", "https://images.unsplash.com/photo-1522708323590-d24dbb6b0267", 225000, 1, 1, 1, 1},
	{"Mountain View Estate", "5-bedroom estate with mountain views, wine cellar and infinity pool.", "777 Mountain Road", "Denver", "https://images.unsplash.com/photo-1600047509807-ba8f99d2cdde", 1200000, 5, 4, 3, 2},
	{"Urban Townhouse", "3-story townhouse with rooftop terrace, garage and smart home features.", "888 Urban Avenue", "Seattle", "https://images.unsplash.com/photo-1600585154340-be6161a56a0c", 520000, 3, 3, 2, 0},
	{"Historic Victorian Home", "Restored Victorian home with wrap-around porch and original details.", "999 Heritage Lane", "San Francisco", "https://images.unsplash.com/photo-1600607687939-ce8a6c25118c", 480000, 4, 3, 1, 1},
}

// visits lists (user, property, days from today) for the sample bookings.
var visits = []struct{ user, property, inDays int }{
	{0, 1, 10}, {0, 3, 15},
	{1, 0, 5},
	{2, 0, 20}, {2, 2, 25}, {2, 7, 30},
}

var favorites = map[int][]int{
	0: {1, 3, 4},
	1: {0, 2, 5, 6},
	2: {1, 7},
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	for _, table := range []string{"favorites", "booking_modifications", "bookings", "properties", "users"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("cleanup %s failed: %v", table, err)
		}
	}

	ctx := context.Background()
	userRepo := repository.NewUserRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	favoriteRepo := repository.NewFavoriteRepository(db)

	hash, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}

	log.Println("Creating users...")
	users := []*domain.User{
		{Name: "John Doe", Email: "john@test.com", PasswordHash: string(hash)},
		{Name: "Jane Smith", Email: "jane@test.com", PasswordHash: string(hash)},
		{Name: "Bob Johnson", Email: "bob@test.com", PasswordHash: string(hash)},
	}
	for _, u := range users {
		if err := userRepo.Create(ctx, u); err != nil {
			log.Fatalf("create user %s: %v", u.Email, err)
		}
	}

	log.Println("Creating properties...")
	created := make([]*domain.Property, 0, len(properties))
	for _, sp := range properties {
		facilities, err := datatypes.NewJSONType(map[string]int{
			"bedrooms":  sp.bedrooms,
			"bathrooms": sp.bathrooms,
			"parkings":  sp.parkings,
		}).MarshalJSON()
		if err != nil {
			log.Fatal(err)
		}
		p := &domain.Property{
			Title:       sp.title,
			Description: sp.description,
			Price:       sp.price,
			Address:     sp.address,
			City:        sp.city,
			Country:     "USA",
			Image:       sp.image,
			Facilities:  datatypes.JSON(facilities),
			OwnerID:     users[sp.owner].ID,
			Status:      domain.PropertyApproved,
		}
		if err := propertyRepo.Create(ctx, p); err != nil {
			log.Fatalf("create property %q: %v", sp.title, err)
		}
		created = append(created, p)
	}

	log.Println("Creating bookings and favorites...")
	today := time.Now().UTC().Truncate(24 * time.Hour)
	for _, v := range visits {
		b := &domain.Booking{
			UserID:     users[v.user].ID,
			PropertyID: created[v.property].ID,
			VisitDate:  today.AddDate(0, 0, v.inDays),
			Status:     domain.BookingConfirmed,
		}
		if err := bookingRepo.Create(ctx, b); err != nil {
			log.Fatalf("create booking: %v", err)
		}
	}

	favCount := 0
	for ui, props := range favorites {
		for _, pi := range props {
			if _, err := favoriteRepo.Toggle(ctx, users[ui].ID, created[pi].ID); err != nil {
				log.Fatalf("create favorite: %v", err)
			}
			favCount++
		}
	}

	log.Printf("seed complete: users=%d properties=%d bookings=%d favorites=%d", len(users), len(created), len(visits), favCount)
	log.Printf("test credentials: john@test.com, jane@test.com, bob@test.com / %s", seedPassword)
}
