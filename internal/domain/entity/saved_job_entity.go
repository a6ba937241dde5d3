package entity

import "time"

// SavedJob is a bookmarked posting. A user may save a given URL only once.
type SavedJob struct {
	ID          string
	UserID      string
	Title       string
	Company     string
	Location    string
	Description string
	Salary      string
	JobType     string
	URL         string
	Source      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
