package services

import (
	"restock-cycle-analyser/internal/domain"
	"time"
)

var nextID int

// makeDelivery builds a record with a precomputed delay, the way the
// loader would emit it. delay == nil models an unparseable time cell.
func makeDelivery(date, department, reason, stockout string, delay *int) *domain.Delivery {
	day, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	if err != nil {
		panic(err)
	}

	nextID++
	return &domain.Delivery{
		DeliveryID:   nextID,
		Date:         day,
		Department:   department,
		DelayReason:  reason,
		Stockout:     stockout,
		DelayMinutes: delay,
	}
}

func minutes(v int) *int { return &v }

// fixtureWeek is a small dataset with known aggregates:
// Monday 2024-03-04 .. Wednesday 2024-03-06, no Thursday+.
func fixtureWeek() []*domain.Delivery {
	nextID = 0
	return []*domain.Delivery{
		makeDelivery("2024-03-04", "Grocery", domain.NoDelayReason, domain.StockoutNo, minutes(40)),
		makeDelivery("2024-03-04", "Produce", "Traffic", domain.StockoutYes, minutes(120)),
		makeDelivery("2024-03-04", "Dairy", "Staff Shortage", domain.StockoutNo, minutes(90)),
		makeDelivery("2024-03-05", "Grocery", "Traffic", domain.StockoutYes, minutes(100)),
		makeDelivery("2024-03-05", "Produce", domain.NoDelayReason, domain.StockoutNo, minutes(30)),
		makeDelivery("2024-03-06", "Dairy", domain.NoDelayReason, domain.StockoutNo, nil),
		makeDelivery("2024-03-06", "Produce", "Traffic", domain.StockoutYes, minutes(80)),
		makeDelivery("2024-03-06", "Electronics", "Weather", domain.StockoutNo, minutes(60)),
	}
}
