// Command main runs the database seeder for SimpleAdvert.
package main

import (
	"context"
	"flag"
	"log"

	"simpleadvert/internal/config"
	"simpleadvert/internal/database"
	"simpleadvert/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numAdverts := flag.Int("adverts", 100, "Number of adverts to create")
	feedback := flag.Int("feedback", 3, "Feedback entries per advert")
	complaintRate := flag.Float64("complaint-rate", 0.1, "Share of adverts that receive a complaint")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	fast := flag.Bool("fast", false, "Store seed passwords unhashed")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Printf("Target: %d users, %d adverts, clean=%v\n", *numUsers, *numAdverts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	_, err = seed.NewSeeder(db).Run(context.Background(), seed.Options{
		NumUsers:          *numUsers,
		NumAdverts:        *numAdverts,
		FeedbackPerAdvert: *feedback,
		ComplaintRate:     *complaintRate,
		ShouldClean:       *shouldClean,
		Factory:           seed.FactoryOptions{SkipBcrypt: *fast},
	})
	if err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}

	log.Println("✨ All done! Your database is now populated with test data.")
	log.Printf("📧 All seeded users have the password: %s", seed.DefaultPassword)
}
