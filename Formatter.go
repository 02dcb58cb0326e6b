package dispatch

import "io"

// Formatter performs stream-based serialization and deserialization for a set
// of related media types.
type Formatter interface {
	// ContentType returns the canonical media type the formatter writes on
	// responses.
	ContentType() string

	// Handles reports whether the formatter can process the provided media
	// type.  The media type is lowercase with any parameters removed.
	Handles(mediaType string) bool

	// Read deserializes the stream into the provided model.
	Read(r io.Reader, model interface{}) error

	// Write serializes the provided model to the stream.
	Write(w io.Writer, model interface{}) error
}
