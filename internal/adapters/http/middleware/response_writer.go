// Package middleware provides HTTP middleware for the inbound request pipeline.
//
// The router installs them outermost first:
//
//	Recovery, RequestID, CorrelationID, CORS, OpenTelemetry, Session, Logging, Timeout
package middleware

import "net/http"

// statusRecorder remembers what a handler sent so the recovery, otel and
// logging middleware can report it after the fact.
type statusRecorder struct {
	http.ResponseWriter
	status    int
	committed bool
	bytes     int64
}

func recordStatus(w http.ResponseWriter) *statusRecorder {
	return &statusRecorder{ResponseWriter: w, status: http.StatusOK}
}

// Status is the code sent to the client, 200 if the handler never chose one.
func (r *statusRecorder) Status() int { return r.status }

// BytesWritten counts body bytes accepted by the underlying writer.
func (r *statusRecorder) BytesWritten() int64 { return r.bytes }

// Committed reports whether headers have gone out; after that the status can
// no longer change.
func (r *statusRecorder) Committed() bool { return r.committed }

func (r *statusRecorder) WriteHeader(code int) {
	if r.committed {
		return
	}
	r.status = code
	r.committed = true
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	r.committed = true
	n, err := r.ResponseWriter.Write(b)
	r.bytes += int64(n)
	return n, err
}

// Unwrap lets http.ResponseController reach the wrapped writer.
func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}
