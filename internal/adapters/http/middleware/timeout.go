package middleware

import (
	"context"
	"errors"
	"maps"
	"net/http"
	"sync"
	"time"

	"github.com/jsamuelsen11/chatbot-service/internal/adapters/http/dto"
)

const msgTimeout = "Request timed out"

// Timeout returns middleware that gives each request a deadline. The handler
// sees the deadline on its context, so agent and LLM calls stop when it
// passes. If the handler has not finished by then the client gets
// 504 {"error": "Request timed out"} and anything the handler writes later is
// dropped.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			bw := &bufferedWriter{header: make(http.Header)}
			done := make(chan struct{})
			panicked := make(chan any, 1)

			go func() {
				defer func() {
					if v := recover(); v != nil {
						panicked <- v
					}
				}()
				next.ServeHTTP(bw, r.WithContext(ctx))
				close(done)
			}()

			select {
			case v := <-panicked:
				// Re-raise on the serving goroutine so Recovery sees it.
				panic(v)
			case <-done:
				bw.mu.Lock()
				defer bw.mu.Unlock()
				// A handler that gave up on the deadline without answering
				// still owes the client a 504.
				if !bw.wroteHeader && errors.Is(ctx.Err(), context.DeadlineExceeded) {
					bw.timedOut = true
					dto.WriteMessageError(w, r, http.StatusGatewayTimeout, msgTimeout)
					return
				}
				bw.copyTo(w)
			case <-ctx.Done():
				bw.mu.Lock()
				defer bw.mu.Unlock()
				bw.timedOut = true
				dto.WriteMessageError(w, r, http.StatusGatewayTimeout, msgTimeout)
			}
		})
	}
}

// bufferedWriter holds the handler's response until the Timeout middleware
// decides whether to send it. All access is guarded by mu.
type bufferedWriter struct {
	mu          sync.Mutex
	header      http.Header
	buf         []byte
	statusCode  int
	wroteHeader bool
	timedOut    bool
}

func (bw *bufferedWriter) Header() http.Header {
	bw.mu.Lock()
	defer bw.mu.Unlock()
	return bw.header
}

func (bw *bufferedWriter) Write(b []byte) (int, error) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.timedOut {
		return 0, http.ErrHandlerTimeout
	}
	if !bw.wroteHeader {
		bw.statusCode = http.StatusOK
		bw.wroteHeader = true
	}
	bw.buf = append(bw.buf, b...)
	return len(b), nil
}

func (bw *bufferedWriter) WriteHeader(code int) {
	bw.mu.Lock()
	defer bw.mu.Unlock()

	if bw.timedOut || bw.wroteHeader {
		return
	}
	bw.statusCode = code
	bw.wroteHeader = true
}

// copyTo sends the buffered response. Must be called with mu held.
func (bw *bufferedWriter) copyTo(w http.ResponseWriter) {
	maps.Copy(w.Header(), bw.header)
	if bw.wroteHeader {
		w.WriteHeader(bw.statusCode)
	}
	if len(bw.buf) > 0 {
		_, _ = w.Write(bw.buf)
	}
}
