package domain

import "time"

// Experience is a single work-history entry. A nil EndDate marks the
// current position.
type Experience struct {
	ID           string     `json:"id"`
	Company      string     `json:"company"`
	Position     string     `json:"position"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
	Description  string     `json:"description,omitempty"`
	Technologies []string   `json:"technologies"`
	CompanyURL   string     `json:"companyUrl,omitempty"`
	Location     string     `json:"location,omitempty"`
	SortOrder    int        `json:"sortOrder"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// IsCurrent reports whether the position is still held.
func (e *Experience) IsCurrent() bool {
	return e.EndDate == nil
}
