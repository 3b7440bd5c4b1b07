package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"restock-cycle-analyser/internal/domain"
	"restock-cycle-analyser/internal/platform/obs"
	"time"
)

// SQLite-backed implementation of the DeliveryRepository port.
type SqliteDeliveryRepository struct{ DB *sql.DB }

func NewSqliteDeliveryRepository(db *sql.DB) *SqliteDeliveryRepository {
	return &SqliteDeliveryRepository{DB: db}
}

// Return all delivery records stored in the database.
func (s *SqliteDeliveryRepository) ListDeliveries(ctx context.Context) (_ []*domain.Delivery, err error) {
	defer obs.Time(ctx, "repository.ListDeliveries")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite delivery repository: DB is nil")
	}

	query := `
	SELECT
		delivery_id,
		date,
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
		return nil, fmt.Errorf("list deliveries: query deliveries table: %w", err)
	}
	defer rows.Close()

	deliveries := make([]*domain.Delivery, 0, 256)
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("list deliveries: %w", err)
		}
		deliveries = append(deliveries, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list deliveries: row iteration: %w", err)
	}

	return deliveries, nil
}

// scanDelivery rebuilds a domain record from one result row.
// Shared by the SQLite and Postgres repositories (identical column order).
func scanDelivery(rows *sql.Rows) (*domain.Delivery, error) {
	var (
		id                           int
		date                         string
		arrival, unloading, shelf    sql.NullString
		department, reason, stockout string
		delayMinutes                 sql.NullInt64
	)

	if err := rows.Scan(
		&id, &date, &arrival, &unloading, &shelf,
		&department, &reason, &stockout, &delayMinutes,
	); err != nil {
		return nil, fmt.Errorf("scan row: %w", err)
	}

	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("scan row: delivery_id=%d: invalid date %q: %w", id, date, err)
	}

	d := &domain.Delivery{
		DeliveryID:  id,
		Date:        day,
		Department:  department,
		DelayReason: reason,
		Stockout:    stockout,
	}

	if d.TruckArrival, err = nullTimeOfDay(arrival); err != nil {
		return nil, fmt.Errorf("scan row: delivery_id=%d: truck_arrival: %w", id, err)
	}
	if d.UnloadingStart, err = nullTimeOfDay(unloading); err != nil {
		return nil, fmt.Errorf("scan row: delivery_id=%d: unloading_start: %w", id, err)
	}
	if d.ShelfStock, err = nullTimeOfDay(shelf); err != nil {
		return nil, fmt.Errorf("scan row: delivery_id=%d: shelf_stock: %w", id, err)
	}

	if delayMinutes.Valid {
		v := int(delayMinutes.Int64)
		d.DelayMinutes = &v
	}

	return d, nil
}

func nullTimeOfDay(v sql.NullString) (*domain.TimeOfDay, error) {
	if !v.Valid {
		return nil, nil
	}
	t, err := domain.ParseTimeOfDay(v.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
