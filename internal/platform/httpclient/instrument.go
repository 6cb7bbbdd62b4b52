package httpclient

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen11/chatbot-service/internal/platform/telemetry"
)

const tracerName = "github.com/jsamuelsen11/chatbot-service/internal/platform/httpclient"

// startSpan opens a client span covering all retry attempts and writes the
// W3C trace context into the outgoing headers.
func (c *Client) startSpan(ctx context.Context, req *http.Request) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, req.Method+" "+c.serviceName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.method", req.Method),
			attribute.String("http.url", req.URL.Redacted()),
			attribute.String("peer.service", c.serviceName),
		),
	)
	otel.GetTextMapPropagator().Inject(ctx, propagation.HeaderCarrier(req.Header))
	return ctx, span
}

func endSpan(span trace.Span, resp *http.Response, err error) {
	if resp != nil {
		span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
}

// outcome classifies a finished call for the result metric label.
func outcome(resp *http.Response, err error) string {
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		return "circuit_open"
	case resp != nil && resp.StatusCode < http.StatusBadRequest:
		return "success"
	default:
		return "error"
	}
}

// record runs outside the breaker so rejected calls are counted too.
func (c *Client) record(ctx context.Context, method string, elapsed time.Duration, resp *http.Response, err error) {
	if c.metrics == nil {
		return
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	attrs := metric.WithAttributes(
		telemetry.AttrHTTPMethod.String(method),
		telemetry.AttrHTTPStatus.Int(status),
		telemetry.AttrPeerService.String(c.serviceName),
		telemetry.AttrResult.String(outcome(resp, err)),
	)
	c.metrics.ClientRequestDuration.Record(ctx, elapsed.Seconds(), attrs)
	c.metrics.ClientRequestTotal.Add(ctx, 1, attrs)
}
