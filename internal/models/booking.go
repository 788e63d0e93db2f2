package models

import "time"

// Booking is a car wash booking row (the "carwash" collection).
type Booking struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	VehicleType string    `json:"vehicle_type"`
	Package     string    `json:"package"`
	Express     bool      `json:"express"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Time        string    `json:"time"` // slot label, e.g. "09:00 AM"
	Price       int       `json:"price"`
	StoreID     int       `json:"store_id"`
	Status      string    `json:"status"`
	LeadSource  string    `json:"lead_source"`
	CreatedAt   time.Time `json:"created_at"`
}
