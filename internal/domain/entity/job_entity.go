package entity

import "time"

// Job statuses. Saved exists for entries imported from the saved-jobs list
// before an application is actually sent.
const (
	StatusApplied   = "Applied"
	StatusInterview = "Interview"
	StatusOffer     = "Offer"
	StatusRejected  = "Rejected"
	StatusSaved     = "Saved"
)

// JobStatuses lists every accepted status value.
var JobStatuses = []string{StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusSaved}

// ValidJobStatus reports whether s is an accepted status value.
func ValidJobStatus(s string) bool {
	for _, v := range JobStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ResponseStatuses are the statuses counted as an employer response.
var ResponseStatuses = []string{StatusInterview, StatusOffer, StatusRejected}

// ResumeRef is the subset of resume fields attached to a job listing.
type ResumeRef struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	OriginalName string `json:"originalName"`
}

// Job is a tracked application. UserID is set at creation and never changes.
type Job struct {
	ID            string
	UserID        string
	Company       string
	Role          string
	Status        string
	DateApplied   time.Time
	Location      string
	Salary        string
	Link          string
	Description   string
	Notes         string
	ContactPerson string
	ContactEmail  string
	ResumeID      *string
	Resume        *ResumeRef
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
