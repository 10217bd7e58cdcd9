package domain

import "time"

// User represents a registered member of the service.
type User struct {
	ID        int64
	Username  string
	Email     string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
