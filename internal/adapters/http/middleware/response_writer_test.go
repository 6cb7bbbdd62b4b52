package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusRecorder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		handle        func(w http.ResponseWriter)
		wantStatus    int
		wantBytes     int64
		wantCommitted bool
	}{
		{
			name:       "nothing written",
			handle:     func(http.ResponseWriter) {},
			wantStatus: http.StatusOK,
		},
		{
			name:          "explicit status",
			handle:        func(w http.ResponseWriter) { w.WriteHeader(http.StatusUnauthorized) },
			wantStatus:    http.StatusUnauthorized,
			wantCommitted: true,
		},
		{
			name: "second status ignored",
			handle: func(w http.ResponseWriter) {
				w.WriteHeader(http.StatusFound)
				w.WriteHeader(http.StatusInternalServerError)
			},
			wantStatus:    http.StatusFound,
			wantCommitted: true,
		},
		{
			name: "body implies 200",
			handle: func(w http.ResponseWriter) {
				_, _ = w.Write([]byte(`{"response":`))
				_, _ = w.Write([]byte(`"hi"}`))
			},
			wantStatus:    http.StatusOK,
			wantBytes:     17,
			wantCommitted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			sr := recordStatus(rec)
			tt.handle(sr)

			assert.Equal(t, tt.wantStatus, sr.Status())
			assert.Equal(t, tt.wantBytes, sr.BytesWritten())
			assert.Equal(t, tt.wantCommitted, sr.Committed())
			if tt.wantCommitted {
				assert.Equal(t, tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestStatusRecorder_ResponseControllerReachesWrappedWriter(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	sr := recordStatus(rec)

	require.Same(t, rec, sr.Unwrap())
	require.NoError(t, http.NewResponseController(sr).Flush())
	assert.True(t, rec.Flushed)
}
