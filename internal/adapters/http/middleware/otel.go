package middleware

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/chatbot-service/internal/platform/telemetry"
)

const serverTracer = "github.com/jsamuelsen11/chatbot-service/internal/adapters/http"

// OpenTelemetry opens a server span per request, continuing any incoming W3C
// trace context, and records the server request metrics. Once chi has routed
// the request the span is renamed after the route ("POST /chat") so span
// names stay low-cardinality. metrics may be nil.
func OpenTelemetry(metrics *telemetry.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			parent := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))

			ctx, span := otel.Tracer(serverTracer).Start(parent, r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.target", r.URL.Path),
				),
			)
			defer span.End()

			rec := recordStatus(w)
			r = r.WithContext(ctx)
			next.ServeHTTP(rec, r)

			route := routePattern(r)
			if route != "" {
				span.SetName(r.Method + " " + route)
				span.SetAttributes(attribute.String("http.route", route))
			}
			status := rec.Status()
			span.SetAttributes(attribute.Int("http.status_code", status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}

			if metrics == nil {
				return
			}
			result := "success"
			if status >= http.StatusBadRequest {
				result = "error"
			}
			attrs := metric.WithAttributes(
				telemetry.AttrHTTPMethod.String(r.Method),
				telemetry.AttrHTTPRoute.String(route),
				telemetry.AttrHTTPStatus.Int(status),
				telemetry.AttrResult.String(result),
			)
			metrics.ServerRequestDuration.Record(ctx, time.Since(start).Seconds(), attrs)
			metrics.ServerRequestTotal.Add(ctx, 1, attrs)
		})
	}
}
