package entity

import "time"

// Project is an energy-system planning project owned by a single account.
type Project struct {
	ID          int64     `json:"id"`
	OwnerID     int64     `json:"owner_id"` // Account that created the project; only the owner may read or change it.
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
