package logo

import "errors"

// Logo resolution failures.
var (
	// ErrNoBuiltinArt means even the default built-in art is missing, which
	// only happens with a broken art table.
	ErrNoBuiltinArt = errors.New("no built-in art found")
	// ErrArtFileUnreadable wraps the read error for a user supplied art file.
	ErrArtFileUnreadable = errors.New("art file unreadable")
)

// Image encoding failures. They are declared here because the resolver
// surfaces them through the ImageEncoder interface.
var (
	ErrImageUnreadable        = errors.New("image file unreadable")
	ErrImageFormatUnsupported = errors.New("image format unsupported")
	// ErrImageSupportUnavailable means the binary carries no image codec.
	// It is a fixed property of the build, retrying never helps.
	ErrImageSupportUnavailable = errors.New("image support unavailable")
)

// IsRecoverable reports whether err is a logo failure the caller may answer
// by falling back to the default built-in art.
func IsRecoverable(err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, ErrNoBuiltinArt):
		return false
	case errors.Is(err, ErrArtFileUnreadable),
		errors.Is(err, ErrImageUnreadable),
		errors.Is(err, ErrImageFormatUnsupported),
		errors.Is(err, ErrImageSupportUnavailable):
		return true
	default:
		return false
	}
}
