package domain

import "time"

// SiteSettings controls section visibility and theming for the public site.
// Exactly one row exists; PUT replaces it wholesale.
type SiteSettings struct {
	ID                string    `json:"id"`
	AvatarSize        string    `json:"avatarSize,omitempty"`
	AccentColor       string    `json:"accentColor"`
	FontFamily        string    `json:"fontFamily"`
	HeroVisible       bool      `json:"heroVisible"`
	AboutVisible      bool      `json:"aboutVisible"`
	SkillsVisible     bool      `json:"skillsVisible"`
	ExperienceVisible bool      `json:"experienceVisible"`
	ProjectsVisible   bool      `json:"projectsVisible"`
	ContactVisible    bool      `json:"contactVisible"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}
