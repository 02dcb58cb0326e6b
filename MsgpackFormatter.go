package dispatch

import (
	"io"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
)

// MsgpackFormatter reads and writes application/msgpack.
type MsgpackFormatter struct{}

var _ Formatter = &MsgpackFormatter{}

// ContentType returns the canonical MessagePack media type.
func (*MsgpackFormatter) ContentType() string {
	return "application/msgpack"
}

// Handles accepts the common MessagePack media types and any +msgpack
// suffixed media type.
func (*MsgpackFormatter) Handles(mediaType string) bool {
	switch mediaType {
	case "application/msgpack", "application/x-msgpack":
		return true
	}

	return strings.HasSuffix(mediaType, "+msgpack")
}

// Read deserializes MessagePack from the stream into the provided model.
func (*MsgpackFormatter) Read(r io.Reader, model interface{}) error {
	return msgpack.NewDecoder(r).Decode(model)
}

// Write serializes the provided model to the stream as MessagePack.
func (*MsgpackFormatter) Write(w io.Writer, model interface{}) error {
	return msgpack.NewEncoder(w).Encode(model)
}
