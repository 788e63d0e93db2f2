package models

const (
	SlotTypePerHour   = "per_hour"
	SlotTypeMaxPerDay = "max_per_day"
)

// TaskType is a global service capability (e.g. "oil change") with a
// capacity model that stores override per location.
type TaskType struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	SlotType        string `json:"slot_type"` // per_hour | max_per_day
	Count           int    `json:"count"`     // default capacity
	AllowedInHub    bool   `json:"allowed_in_hub"`
	AllowedInGarage bool   `json:"allowed_in_garage"`
}
