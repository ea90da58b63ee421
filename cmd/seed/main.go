// Command main runs the database seeder for Wayfarer.
package main

import (
	"flag"
	"log"

	"wayfarer/internal/config"
	"wayfarer/internal/database"
	"wayfarer/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numJournals := flag.Int("journals", 100, "Number of journals to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d journals, clean=%v\n", *numUsers, *numJournals, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(db, seed.Options{
		NumUsers:    *numUsers,
		NumJournals: *numJournals,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done! Your database is now populated with test data.")
	log.Println("All test users have the password: password123")
}
