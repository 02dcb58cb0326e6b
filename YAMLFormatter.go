package dispatch

import (
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLFormatter reads and writes application/yaml.
type YAMLFormatter struct{}

var _ Formatter = &YAMLFormatter{}

// ContentType returns the canonical YAML media type.
func (*YAMLFormatter) ContentType() string {
	return "application/yaml"
}

// Handles accepts the common YAML media types and any +yaml suffixed media
// type.
func (*YAMLFormatter) Handles(mediaType string) bool {
	switch mediaType {
	case "application/yaml", "application/x-yaml", "text/yaml":
		return true
	}

	return strings.HasSuffix(mediaType, "+yaml")
}

// Read deserializes YAML from the stream into the provided model.
func (*YAMLFormatter) Read(r io.Reader, model interface{}) error {
	return yaml.NewDecoder(r).Decode(model)
}

// Write serializes the provided model to the stream as YAML.
func (*YAMLFormatter) Write(w io.Writer, model interface{}) error {
	encoder := yaml.NewEncoder(w)

	err := encoder.Encode(model)
	if err != nil {
		encoder.Close()
		return err
	}

	return encoder.Close()
}
