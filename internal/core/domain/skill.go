package domain

import "time"

// Skill is a single entry on the skills grid.
type Skill struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Icon        string    `json:"icon,omitempty"`
	Category    string    `json:"category"`
	Proficiency int       `json:"proficiency"`
	SortOrder   int       `json:"sortOrder"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}
