package models

import "time"

// User is a row of the users table. The store is read-only from this
// service's perspective; users are created and mutated elsewhere.
type User struct {
	ID          int64     `json:"id"`
	IsActive    bool      `json:"is_active"`
	DateCreated time.Time `json:"date_created"`
}
