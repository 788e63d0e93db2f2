package models

import "time"

type Customer struct {
	ID             int       `json:"id"`
	Name           string    `json:"name"`
	Phone          string    `json:"phone"`
	Whatsapp       string    `json:"whatsapp"`
	AddressStreet  string    `json:"address_street"`
	AddressCity    string    `json:"address_city"`
	AddressState   string    `json:"address_state"`
	AddressPincode string    `json:"address_pincode"`
	AddressLat     string    `json:"address_lat"`
	AddressLng     string    `json:"address_lng"`
	OpeningBalance float64   `json:"opening_balance"`
	BalanceType    string    `json:"balance_type"` // Cr | Dr
	CreatedAt      time.Time `json:"created_at"`

	// Populated on detail reads; not a column.
	Vehicles []*CustomerVehicle `json:"vehicles,omitempty"`
}

// CustomerVehicle belongs to exactly one customer and is removed only by an
// explicit delete, never as a side effect of editing the customer.
type CustomerVehicle struct {
	ID              int     `json:"id"`
	CustomerID      int     `json:"customer_id"`
	VehicleType     string  `json:"vehicle_type"`
	VehicleSubtype  string  `json:"vehicle_subtype"`
	VehicleName     string  `json:"vehicle_name"`
	VehicleNumber   string  `json:"vehicle_number"`
	OdoReading      string  `json:"odo_reading"`
	LastServiceDate *string `json:"last_service_date"`
	BasicIssues     string  `json:"basic_issues"`
}
