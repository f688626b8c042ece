package domain

import "errors"

// Sentinel errors returned by core services. The HTTP error handler is the
// only place these become status codes.
var (
	// ErrInvalidCredentials covers unknown username and wrong password
	// uniformly so responses cannot be used as a username oracle.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrPasswordUnchanged rejects a change-password call whose new password
	// equals the current one.
	ErrPasswordUnchanged = errors.New("new password must be different from current password")

	// ErrPasswordMismatch rejects a change-password call whose confirmation
	// does not match the new password.
	ErrPasswordMismatch = errors.New("new password and confirmation do not match")

	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")

	ErrSkillNotFound      = errors.New("skill not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrBlogNotFound       = errors.New("blog post not found")
	ErrSlugExists         = errors.New("slug already in use")
	ErrExperienceNotFound = errors.New("experience not found")
	ErrContactNotFound    = errors.New("contact message not found")
	ErrProfileNotFound    = errors.New("profile not found")
	ErrResumeNotFound     = errors.New("resume not found")
	ErrImageNotFound      = errors.New("image not found")
	ErrSettingsNotFound   = errors.New("site settings not found")
)

// ValidationError is a 400-class input problem. The message names the field
// or rule that failed and is safe to return verbatim to the client.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
