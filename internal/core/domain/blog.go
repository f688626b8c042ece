package domain

import "time"

// Blog is a blog post. Slug is unique across all posts and is the public
// lookup key; unpublished posts are only visible to the admin.
type Blog struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Content     string     `json:"content"`
	CoverImage  string     `json:"coverImage,omitempty"`
	Cover       *Asset     `json:"-"`
	Tags        []string   `json:"tags"`
	Published   bool       `json:"published"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
	ReadingTime int        `json:"readingTime,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// HasCover reports whether a cover image blob is stored for the post.
func (b *Blog) HasCover() bool {
	return b.Cover != nil && len(b.Cover.Data) > 0
}
