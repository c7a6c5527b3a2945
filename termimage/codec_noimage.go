//go:build noimage

package termimage

// CodecAvailable reports whether this build can decode images.
const CodecAvailable = false
