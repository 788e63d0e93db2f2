package models

import "time"

// Lead is a single inbound inquiry tracked through the sales pipeline.
type Lead struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	City      string    `json:"city"`
	Vehicle   string    `json:"vehicle"`
	Issue     string    `json:"issue"`
	Date      *string   `json:"date"`
	Time      *string   `json:"time"`
	Source    string    `json:"source"`
	Remark    *string   `json:"remark"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
