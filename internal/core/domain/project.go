package domain

import "time"

// Project is a portfolio project card. Thumbnail bytes live in the database
// and are served from a dedicated endpoint, so the blob is excluded from the
// JSON representation.
type Project struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Technologies []string   `json:"technologies"`
	ImageURL     string     `json:"imageUrl,omitempty"`
	ProjectURL   string     `json:"projectUrl,omitempty"`
	GithubURL    string     `json:"githubUrl,omitempty"`
	Featured     bool       `json:"featured"`
	SortOrder    int        `json:"sortOrder"`
	Thumbnail    *Asset     `json:"-"`
	ThumbnailAt  *time.Time `json:"thumbnailUpdatedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// HasThumbnail reports whether a thumbnail blob is stored for the project.
func (p *Project) HasThumbnail() bool {
	return p.Thumbnail != nil && len(p.Thumbnail.Data) > 0
}
