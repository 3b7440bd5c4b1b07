package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"restock-cycle-analyser/internal/domain"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDeliveriesQuery := `
	CREATE TABLE IF NOT EXISTS deliveries (
		delivery_id INTEGER PRIMARY KEY,
		date TEXT NOT NULL,
		truck_arrival TEXT,
		unloading_start TEXT,
		shelf_stock TEXT,
		department TEXT NOT NULL,
		delay_reason TEXT NOT NULL,
		stockout TEXT NOT NULL CHECK (stockout IN ('Yes', 'No')),
		delay_minutes INTEGER
	);
	`

	createDateIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_deliveries_date
	ON deliveries(date);
	`

	createDepartmentIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_deliveries_department
	ON deliveries(department);
	`

	statements := []string{
		createDeliveriesQuery,
		createDateIndexQuery,
		createDepartmentIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Populate the database with cleaned delivery records.
// Reseeding the same dataset is idempotent (keyed by delivery_id).
func SeedDeliveries(db *sql.DB, deliveries []*domain.Delivery) error {
	if db == nil {
		return errors.New("seed deliveries: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed deliveries: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `
	INSERT OR REPLACE INTO deliveries (
		delivery_id,
		date,
		truck_arrival,
		unloading_start,
		shelf_stock,
		department,
		delay_reason,
		stockout,
		delay_minutes
	)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed deliveries: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range deliveries {
		if _, err := stmt.Exec(
			d.DeliveryID,
			d.Date.Format("2006-01-02"),
			timeOfDayValue(d.TruckArrival),
			timeOfDayValue(d.UnloadingStart),
			timeOfDayValue(d.ShelfStock),
			d.Department,
			d.DelayReason,
			d.Stockout,
			intValue(d.DelayMinutes),
		); err != nil {
			return fmt.Errorf("seed deliveries: insert delivery_id=%d: %w", d.DeliveryID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed deliveries: commit tx: %w", err)
	}

	return nil
}

func timeOfDayValue(t *domain.TimeOfDay) any {
	if t == nil {
		return nil
	}
	return t.String()
}

func intValue(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
