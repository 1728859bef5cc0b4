package domain

import "time"

// Record holds the identity and timestamps shared by every resource.
type Record struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Base gives generic code access to the embedded record.
func (r *Record) Base() *Record {
	return r
}
