package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/shreyash398/Green-World/db"
	"github.com/shreyash398/Green-World/internal/auth"
	"github.com/shreyash398/Green-World/internal/handlers"
	"github.com/shreyash398/Green-World/internal/router"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using process environment")
	}

	tokens, err := auth.NewTokenService(os.Getenv("JWT_SECRET"))

	if err != nil {
		log.Fatalf("Failed to initialize token service: %v", err)
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	gdb, err := db.Connect(dsn)

	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if os.Getenv("SEED_DEMO_DATA") == "true" {
		if err := db.Seed(gdb); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
	}

	r := router.NewRouter(handlers.New(gdb, tokens))

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "3000"
		log.Println("PORT not set, defaulting to 3000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
