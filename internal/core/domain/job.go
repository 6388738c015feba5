package domain

import "time"

// Job is a published job posting.
type Job struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	ShortDescription *string   `json:"short_description"`
	Location         string    `json:"location"`
	Department       *string   `json:"department"`
	Type             string    `json:"type"`
	IsActive         bool      `json:"is_active"`
	PostedByUserID   string    `json:"posted_by_user_id"`
	PostedAt         time.Time `json:"posted_at"`
}
