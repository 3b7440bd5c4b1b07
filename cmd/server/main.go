package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"restock-cycle-analyser/internal/adapters/repositories"
	"restock-cycle-analyser/internal/api"
	"restock-cycle-analyser/internal/config"
	"restock-cycle-analyser/internal/ports"
	"restock-cycle-analyser/internal/store"
	"time"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"
)

// main is the application composition root.
// It loads the static logistics dataset once, persists it to SQLite,
// builds the immutable in-memory store, and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	dbPath := config.Get("DB_PATH", "data/app.db")
	datasetPath := config.Get("DATASET_PATH", "data/walmart_logistics.csv")
	port := config.Get("PORT", "8080")

	db, err := openDB(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	// The dataset is static: a failed load is fatal, there is no
	// partial-load or retry policy.
	st, err := loadStore(db, datasetPath)
	if err != nil {
		log.Fatal(err)
	}

	minDate, maxDate := st.DateBounds()
	log.Printf(
		"dataset loaded records=%d departments=%d range=%s..%s",
		len(st.Records()), len(st.Departments()),
		minDate.Format("2006-01-02"), maxDate.Format("2006-01-02"),
	)

	router := api.NewRouter(st)

	log.Printf("Server listening addr=:%s", port)
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	log.Fatal(srv.ListenAndServe())
}

func openDB(dbPath string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("openDB: open sqlite database %q: %w", dbPath, err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("openDB: verify sqlite connection to %q: %w", dbPath, err)
	}

	return db, nil
}

// loadStore seeds SQLite from the CSV dataset and builds the in-memory
// store from the repository, so the server always serves exactly what
// the database holds.
func loadStore(db *sql.DB, datasetPath string) (*store.Store, error) {
	if err := repositories.InitSchema(db); err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	deliveries, err := repositories.ReadDatasetCSV(datasetPath)
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	if err := repositories.SeedDeliveries(db, deliveries); err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	var repo ports.DeliveryRepository = repositories.NewSqliteDeliveryRepository(db)
	records, err := repo.ListDeliveries(context.Background())
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	st, err := store.New(records)
	if err != nil {
		return nil, fmt.Errorf("load store: %w", err)
	}

	return st, nil
}
