// Command main runs the database seeder for Kinograph.
package main

import (
	"flag"
	"log"
	"time"

	"kinograph/internal/config"
	"kinograph/internal/database"
	"kinograph/internal/middleware"
	"kinograph/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numFilms := flag.Int("films", 200, "Number of films to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d films, clean=%v\n", *numUsers, *numFilms, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(database.DB, seed.Options{
		NumUsers:    *numUsers,
		NumFilms:    *numFilms,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")

	// Mint a token for the first demo account so protected endpoints can be
	// exercised against the seeded data right away.
	middleware.InitMiddleware(cfg)
	if token, err := middleware.IssueToken(1, 24*time.Hour); err == nil {
		log.Printf("🔑 Demo token (user 1, 24h): %s", token)
	}
}
