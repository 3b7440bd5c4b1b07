package dto

import "restock-cycle-analyser/internal/services"

// DashboardRequest carries the active filter widgets. Omitted dates
// default to the dataset bounds; empty selections are pass-throughs.
type DashboardRequest struct {
	DateStart    *string  `json:"date_start"`
	DateEnd      *string  `json:"date_end"`
	Departments  []string `json:"departments"`
	DelayReasons []string `json:"delay_reasons"`
	Stockout     string   `json:"stockout"`
}

// DashboardResponse is one full recomputation pass. When no records
// match the filters, Empty is set and Notice carries the single
// user-visible message; all other fields are omitted.
type DashboardResponse struct {
	Empty      bool               `json:"empty"`
	Notice     string             `json:"notice,omitempty"`
	Metrics    *services.Metrics  `json:"metrics,omitempty"`
	Charts     []services.Chart   `json:"charts,omitempty"`
	Deliveries []DeliveryResponse `json:"deliveries,omitempty"`
}
