package main

import (
	"context"
	"log"
	"os"
	"restock-cycle-analyser/internal/adapters/repositories"
	"restock-cycle-analyser/internal/config"
	"restock-cycle-analyser/internal/platform/db"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
)

// dbtool imports the cleaned logistics dataset into a Postgres
// warehouse for BI use outside the dashboard.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	datasetPath := config.Get("DATASET_PATH", "data/walmart_logistics.csv")

	ctx := context.Background()

	log.Println("Initializing warehouse schema...")
	if err := repositories.InitSchemaPG(ctx, pg); err != nil {
		log.Fatalf("schema initialization failed: %v", err)
	}
	log.Println("Schema ready.")

	log.Printf("Importing dataset from %s...", datasetPath)
	deliveries, err := repositories.ReadDatasetCSV(datasetPath)
	if err != nil {
		log.Fatalf("dataset load failed: %v", err)
	}

	if err := repositories.SeedDeliveriesPG(ctx, pg, deliveries); err != nil {
		log.Fatalf("import failed: %v", err)
	}
	log.Printf("Import complete. records=%d", len(deliveries))
}
