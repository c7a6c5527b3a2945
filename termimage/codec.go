//go:build !noimage

package termimage

import (
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// CodecAvailable reports whether this build can decode images. Build with
// -tags noimage to produce a binary without image logos.
const CodecAvailable = true
