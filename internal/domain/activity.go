package domain

import "time"

// Activity represents a bookable product offered by the operator
type Activity struct {
	ID          string
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
