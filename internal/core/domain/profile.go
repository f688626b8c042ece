package domain

import "time"

// Profile is the single owner profile shown on the site. The avatar and
// resume blobs are served from dedicated endpoints.
type Profile struct {
	ID          string       `json:"id"`
	FullName    string       `json:"fullName"`
	Title       string       `json:"title"`
	Bio         string       `json:"bio,omitempty"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone,omitempty"`
	Location    string       `json:"location,omitempty"`
	AvatarURL   string       `json:"avatarUrl,omitempty"`
	Avatar      *Asset       `json:"-"`
	AvatarAt    *time.Time   `json:"avatarUpdatedAt,omitempty"`
	ResumeURL   string       `json:"resumeUrl,omitempty"`
	Resume      *Asset       `json:"-"`
	SocialLinks []SocialLink `json:"socialLinks"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`
}

// SocialLink is an external profile link rendered in the site footer.
type SocialLink struct {
	ID        string    `json:"id"`
	Platform  string    `json:"platform"`
	URL       string    `json:"url"`
	Icon      string    `json:"icon,omitempty"`
	SortOrder int       `json:"sortOrder"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// HasAvatar reports whether an avatar blob is stored for the profile.
func (p *Profile) HasAvatar() bool {
	return p.Avatar != nil && len(p.Avatar.Data) > 0
}

// HasResume reports whether a resume blob is stored for the profile.
func (p *Profile) HasResume() bool {
	return p.Resume != nil && len(p.Resume.Data) > 0
}
