package models

import "time"

const (
	StoreTypeHub    = "hub"
	StoreTypeGarage = "garage"
)

type Store struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	Type          string    `json:"type"` // hub | garage
	City          string    `json:"city"`
	Address       string    `json:"address"`
	Latitude      string    `json:"latitude"`
	Longitude     string    `json:"longitude"`
	ManagerName   string    `json:"manager_name"`
	ManagerNumber string    `json:"manager_number"`
	CreatedAt     time.Time `json:"created_at"`

	// Populated on detail reads.
	Capacities []*StoreTaskCapacity `json:"capacities,omitempty"`
	HubIDs     []int                `json:"hub_ids,omitempty"` // garages only
}

// StoreTaskCapacity is the per-store override of a task type's default count.
type StoreTaskCapacity struct {
	StoreID    int    `json:"store_id"`
	TaskTypeID int    `json:"task_type_id"`
	TaskName   string `json:"task_name,omitempty"`
	SlotType   string `json:"slot_type,omitempty"`
	Capacity   int    `json:"capacity"`
}
