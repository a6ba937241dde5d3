package entity

import "time"

// Company is a user-curated company record.
type Company struct {
	ID          string
	UserID      string
	Name        string
	Description string
	Website     string
	Industry    string
	Logo        string
	Location    string
	Size        string
	JobCount    int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
