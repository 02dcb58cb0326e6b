package dispatch

import (
	"sort"
	"strconv"
	"strings"
)

// Negotiator selects the formatters used to read a request body and write a
// response body based on the request's media type preferences.  The order of
// formatters matters - the first formatter is used when the request expresses
// no preference.
type Negotiator struct {
	formatters []Formatter
}

// NewNegotiator creates a new negotiator over the provided formatters.
func NewNegotiator(formatters ...Formatter) *Negotiator {
	return &Negotiator{
		formatters: formatters,
	}
}

// DefaultNegotiator returns a negotiator over the built-in JSON, YAML, and
// MessagePack formatters.  JSON is the default response format.
func DefaultNegotiator() *Negotiator {
	return NewNegotiator(&JSONFormatter{}, &YAMLFormatter{}, &MsgpackFormatter{})
}

// SupportedContentTypes returns the canonical content types of the underlying
// formatters.
func (n *Negotiator) SupportedContentTypes() []string {
	contentTypes := make([]string, 0, len(n.formatters))
	for _, formatter := range n.formatters {
		contentTypes = append(contentTypes, formatter.ContentType())
	}

	return contentTypes
}

// RequestFormatter returns the formatter able to read a body of the provided
// Content-Type.  It returns false when no formatter handles the media type.
func (n *Negotiator) RequestFormatter(contentType string) (Formatter, bool) {
	mediaType := normalizeMediaType(contentType)
	if mediaType == "" {
		return nil, false
	}

	for _, formatter := range n.formatters {
		if formatter.Handles(mediaType) {
			return formatter, true
		}
	}

	return nil, false
}

// ResponseFormatter selects the formatter for the provided Accept header,
// returning the formatter and the content type to write.  An empty Accept
// header selects the default formatter.  It returns false when the Accept
// header cannot be satisfied.
func (n *Negotiator) ResponseFormatter(accept string) (Formatter, string, bool) {
	if len(n.formatters) == 0 {
		return nil, "", false
	}

	mediaRanges := parseAcceptHeader(accept)
	if len(mediaRanges) == 0 {
		// An Accept header that excluded everything it named is not the
		// same as expressing no preference.
		if strings.TrimSpace(accept) != "" {
			return nil, "", false
		}

		formatter := n.formatters[0]
		return formatter, formatter.ContentType(), true
	}

	for _, mediaRange := range mediaRanges {
		if mediaRange == "*/*" {
			formatter := n.formatters[0]
			return formatter, formatter.ContentType(), true
		}

		if strings.HasSuffix(mediaRange, "/*") {
			prefix := strings.TrimSuffix(mediaRange, "*")
			for _, formatter := range n.formatters {
				if strings.HasPrefix(formatter.ContentType(), prefix) {
					return formatter, formatter.ContentType(), true
				}
			}

			continue
		}

		for _, formatter := range n.formatters {
			if formatter.Handles(mediaRange) {
				return formatter, formatter.ContentType(), true
			}
		}
	}

	return nil, "", false
}

// parseAcceptHeader returns the media ranges of an Accept header ordered by
// descending quality.  Ranges with a quality of zero are omitted.
func parseAcceptHeader(accept string) []string {
	type acceptedRange struct {
		mediaType string
		quality   float64
	}

	parsed := []acceptedRange{}

	for _, part := range strings.Split(accept, ",") {
		fields := strings.Split(part, ";")

		mediaType := strings.ToLower(strings.TrimSpace(fields[0]))
		if mediaType == "" {
			continue
		}

		quality := 1.0
		for _, field := range fields[1:] {
			field = strings.ToLower(strings.TrimSpace(field))
			if !strings.HasPrefix(field, "q=") {
				continue
			}

			if q, err := strconv.ParseFloat(field[2:], 64); err == nil {
				quality = q
			}
		}

		if quality <= 0 {
			continue
		}

		parsed = append(parsed, acceptedRange{mediaType: mediaType, quality: quality})
	}

	sort.SliceStable(parsed, func(i, j int) bool {
		return parsed[i].quality > parsed[j].quality
	})

	mediaRanges := make([]string, 0, len(parsed))
	for _, r := range parsed {
		mediaRanges = append(mediaRanges, r.mediaType)
	}

	return mediaRanges
}

// normalizeMediaType lowercases a media type and strips any parameters,
// e.g. "application/JSON; charset=utf-8" => "application/json".
func normalizeMediaType(contentType string) string {
	mediaType := contentType
	if i := strings.Index(mediaType, ";"); i >= 0 {
		mediaType = mediaType[:i]
	}

	return strings.ToLower(strings.TrimSpace(mediaType))
}
