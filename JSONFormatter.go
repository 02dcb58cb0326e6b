package dispatch

import (
	"encoding/json"
	"io"
	"strings"
)

// JSONFormatter reads and writes application/json.
type JSONFormatter struct{}

var _ Formatter = &JSONFormatter{}

// ContentType returns the canonical JSON media type.
func (*JSONFormatter) ContentType() string {
	return "application/json"
}

// Handles accepts application/json and any +json suffixed media type.
func (*JSONFormatter) Handles(mediaType string) bool {
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}

// Read deserializes JSON from the stream into the provided model.
func (*JSONFormatter) Read(r io.Reader, model interface{}) error {
	return json.NewDecoder(r).Decode(model)
}

// Write serializes the provided model to the stream as JSON.
func (*JSONFormatter) Write(w io.Writer, model interface{}) error {
	return json.NewEncoder(w).Encode(model)
}
