package dto

import "restock-cycle-analyser/internal/domain"

type DeliveryResponse struct {
	DeliveryID     int     `json:"delivery_id"`
	Date           string  `json:"date"`
	TruckArrival   *string `json:"truck_arrival"`
	UnloadingStart *string `json:"unloading_start"`
	ShelfStock     *string `json:"shelf_stock"`
	Department     string  `json:"department"`
	DelayReason    string  `json:"delay_reason"`
	Stockout       string  `json:"stockout_observed"`
	DelayMinutes   *int    `json:"delay_minutes"`
}

type ListDeliveriesResponse struct {
	Deliveries []DeliveryResponse `json:"deliveries"`
}

func NewDeliveryResponse(d *domain.Delivery) DeliveryResponse {
	return DeliveryResponse{
		DeliveryID:     d.DeliveryID,
		Date:           d.Date.Format("2006-01-02"),
		TruckArrival:   timeString(d.TruckArrival),
		UnloadingStart: timeString(d.UnloadingStart),
		ShelfStock:     timeString(d.ShelfStock),
		Department:     d.Department,
		DelayReason:    d.DelayReason,
		Stockout:       d.Stockout,
		DelayMinutes:   d.DelayMinutes,
	}
}

func NewDeliveryResponses(deliveries []*domain.Delivery) []DeliveryResponse {
	out := make([]DeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		out = append(out, NewDeliveryResponse(d))
	}
	return out
}

func timeString(t *domain.TimeOfDay) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}
