package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"restock-cycle-analyser/internal/domain"
	"restock-cycle-analyser/internal/platform/obs"
)

// Postgres-backed implementation of the DeliveryRepository port.
// Used by the warehouse import tool; the server runs on SQLite.
type SQLDeliveryRepository struct{ DB *sql.DB }

func NewSQLDeliveryRepository(db *sql.DB) *SQLDeliveryRepository {
	return &SQLDeliveryRepository{DB: db}
}

// Initialize the Postgres warehouse schema.
func InitSchemaPG(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init pg schema: DB is nil")
	}

	query := `
	CREATE TABLE IF NOT EXISTS deliveries (
		delivery_id INTEGER PRIMARY KEY,
		date DATE NOT NULL,
		truck_arrival TEXT,
		unloading_start TEXT,
		shelf_stock TEXT,
		department TEXT NOT NULL,
		delay_reason TEXT NOT NULL,
		stockout TEXT NOT NULL CHECK (stockout IN ('Yes', 'No')),
		delay_minutes INTEGER
	);
	`
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("init pg schema: create deliveries table: %w", err)
	}

	return nil
}

// Upsert cleaned delivery records into the Postgres warehouse.
func SeedDeliveriesPG(ctx context.Context, db *sql.DB, deliveries []*domain.Delivery) (err error) {
	defer obs.Time(ctx, "repository.SeedDeliveriesPG")(&err)

	if db == nil {
		return errors.New("seed pg deliveries: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed pg deliveries: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, `
	INSERT INTO deliveries (
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
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (delivery_id) DO UPDATE
	SET date = EXCLUDED.date,
		truck_arrival = EXCLUDED.truck_arrival,
		unloading_start = EXCLUDED.unloading_start,
		shelf_stock = EXCLUDED.shelf_stock,
		department = EXCLUDED.department,
		delay_reason = EXCLUDED.delay_reason,
		stockout = EXCLUDED.stockout,
		delay_minutes = EXCLUDED.delay_minutes;
	`)
	if err != nil {
		return fmt.Errorf("seed pg deliveries: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, d := range deliveries {
		if _, err := stmt.ExecContext(ctx,
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
			return fmt.Errorf("seed pg deliveries: insert delivery_id=%d: %w", d.DeliveryID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed pg deliveries: commit tx: %w", err)
	}

	return nil
}

// Return all delivery records stored in the warehouse.
func (s *SQLDeliveryRepository) ListDeliveries(ctx context.Context) (_ []*domain.Delivery, err error) {
	defer obs.Time(ctx, "repository.ListDeliveriesPG")(&err)

	if s.DB == nil {
		return nil, errors.New("sql delivery repository: DB is nil")
	}

	query := `
	SELECT
		delivery_id,
		to_char(date, 'YYYY-MM-DD'),
		truck_arrival,
		unloading_start,
		shelf_stock,
		department,
		delay_reason,
		stockout,
		delay_minutes
	FROM deliveries
	ORDER BY delivery_id;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list pg deliveries: query deliveries table: %w", err)
	}
	defer rows.Close()

	deliveries := make([]*domain.Delivery, 0, 256)
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("list pg deliveries: %w", err)
		}
		deliveries = append(deliveries, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pg deliveries: row iteration: %w", err)
	}

	return deliveries, nil
}
