package dispatch

import (
	"net/http"
	"time"
)

// MeasuredResponseWriter wraps a standard http.ResponseWriter with additional
// functionality.  It records the response code, the number of bytes written,
// and the duration of the request/response, and it suppresses duplicate
// header writes.  The exception handler relies on the recorded header state
// to decide whether a failure can still be responded to.
type MeasuredResponseWriter struct {
	w http.ResponseWriter

	startTime         time.Time
	statusCode        int
	volume            int64
	hasWrittenHeaders bool
}

var _ http.ResponseWriter = &MeasuredResponseWriter{}

// NewMeasuredResponseWriter creates a new MeasuredResponseWriter around the
// provided http.ResponseWriter.
func NewMeasuredResponseWriter(w http.ResponseWriter) *MeasuredResponseWriter {
	return &MeasuredResponseWriter{
		w:         w,
		startTime: time.Now(),
	}
}

// Header returns the headers of the underlying response writer.
func (mrw *MeasuredResponseWriter) Header() http.Header {
	return mrw.w.Header()
}

// Write writes to the underlying response writer, recording the number of
// bytes successfully written.
func (mrw *MeasuredResponseWriter) Write(b []byte) (int, error) {
	n, err := mrw.w.Write(b)
	mrw.volume += int64(n)

	return n, err
}

// WriteHeader records and writes the header.  Subsequent calls are ignored.
func (mrw *MeasuredResponseWriter) WriteHeader(statusCode int) {
	if mrw.hasWrittenHeaders {
		return
	}

	mrw.statusCode = statusCode
	mrw.hasWrittenHeaders = true
	mrw.w.WriteHeader(statusCode)
}

// StatusCode returns the status code that was written for the response, or
// http.StatusOK if no status code has been written yet.
func (mrw *MeasuredResponseWriter) StatusCode() int {
	if mrw.statusCode == 0 {
		return http.StatusOK
	}

	return mrw.statusCode
}

// HasWrittenHeaders returns true if WriteHeader has been called.
func (mrw *MeasuredResponseWriter) HasWrittenHeaders() bool {
	return mrw.hasWrittenHeaders
}

// Duration returns the duration between the start of the request and now.
func (mrw *MeasuredResponseWriter) Duration() time.Duration {
	return time.Since(mrw.startTime)
}

// Volume returns the number of bytes written to the response body.
func (mrw *MeasuredResponseWriter) Volume() int64 {
	return mrw.volume
}
