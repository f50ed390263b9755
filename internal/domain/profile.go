package domain

import "time"

// Profile is keyed by the user id. Email is fixed at sign-up.
type Profile struct {
	ID        string
	FullName  string
	Email     string
	Phone     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
