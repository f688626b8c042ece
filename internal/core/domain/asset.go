package domain

// Asset is a binary blob stored alongside an entity: an avatar, a resume
// PDF, a blog cover image or a project thumbnail.
type Asset struct {
	Data        []byte
	ContentType string
	Size        int
}
