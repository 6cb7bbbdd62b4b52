package handlers

import (
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/chatbot-service/internal/platform/logging"
	"github.com/jsamuelsen11/chatbot-service/internal/ports"
)

// healthReport is the body of both probes. Checks is omitted on liveness.
type healthReport struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// HealthHandler serves the container probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness serves GET /health/live. The process answering is enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, healthReport{Status: "ok"})
}

// Readiness serves GET /health/ready. It answers 503 when the database or
// either upstream API is failing. Only "ok"/"failing" per dependency is
// exposed; the reasons go to the log.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	report := healthReport{Status: "ready", Checks: map[string]string{}}
	code := http.StatusOK

	for name, err := range h.registry.CheckAll(ctx) {
		if err == nil {
			report.Checks[name] = "ok"
			continue
		}
		report.Checks[name] = "failing"
		report.Status, code = "not_ready", http.StatusServiceUnavailable
		logging.FromContext(ctx).WarnContext(ctx, "dependency not ready",
			slog.String("component", name),
			slog.Any("error", err),
		)
	}

	writeJSON(w, r, code, report)
}
