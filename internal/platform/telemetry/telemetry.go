// Package telemetry provides OpenTelemetry tracer and meter initialization
// with support for stdout (development) and OTLP/HTTP (production) exporters.
//
// Tracer initialization:
//
//	tp, err := telemetry.InitTracer(ctx, "chatbot-service", telemetry.ExporterStdout, "")
//	defer tp.Shutdown(ctx)
//
// Meter initialization:
//
//	mp, err := telemetry.InitMeter(ctx, "chatbot-service", telemetry.ExporterStdout, "")
//	defer mp.Shutdown(ctx)
//
// Pre-registered metrics:
//
//	metrics, err := telemetry.NewMetrics(mp, "chatbot-service")
//	metrics.ServerRequestTotal.Add(ctx, 1, ...)
//	metrics.RecordToolInvocation(ctx, "Wikipedia", "success")
package telemetry

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetrichttp"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/propagation"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.39.0"
)

// Supported exporter names.
const (
	ExporterStdout = "stdout"
	ExporterOTLP   = "otlp"
)

// Attribute keys for metric labels.
var (
	AttrHTTPMethod  = attribute.Key("http.method")
	AttrHTTPStatus  = attribute.Key("http.status_code")
	AttrHTTPRoute   = attribute.Key("http.route")
	AttrPeerService = attribute.Key("peer.service")
	AttrResult      = attribute.Key("result")
	AttrTool        = attribute.Key("tool.name")
	AttrOutcome     = attribute.Key("agent.outcome")
)

// Metrics holds pre-registered OpenTelemetry metric instruments. A nil
// *Metrics is valid; every Record helper is a no-op on nil.
type Metrics struct {
	ServerRequestDuration metric.Float64Histogram
	ServerRequestTotal    metric.Int64Counter
	ClientRequestDuration metric.Float64Histogram
	ClientRequestTotal    metric.Int64Counter

	AgentIterations metric.Int64Histogram
	FallbackTotal   metric.Int64Counter
	ToolInvocations metric.Int64Counter
}

// InitTracer creates and registers a global TracerProvider.
//
// The exporter parameter selects the span exporter: "otlp" uses OTLP/HTTP
// with the given endpoint and "stdout" uses a pretty-printed stdout exporter
// for development. Any other value is an error.
//
// The returned TracerProvider must be shut down when the application exits.
func InitTracer(ctx context.Context, serviceName, exporter, endpoint string) (*sdktrace.TracerProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	spanExporter, err := newSpanExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating span exporter: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(spanExporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{},
		propagation.Baggage{},
	))

	return tp, nil
}

// InitMeter creates and registers a global MeterProvider.
//
// Exporter selection follows InitTracer.
//
// The returned MeterProvider must be shut down when the application exits.
func InitMeter(ctx context.Context, serviceName, exporter, endpoint string) (*sdkmetric.MeterProvider, error) {
	res, err := newResource(serviceName)
	if err != nil {
		return nil, fmt.Errorf("creating resource: %w", err)
	}

	metricExporter, err := newMetricExporter(ctx, exporter, endpoint)
	if err != nil {
		return nil, fmt.Errorf("creating metric exporter: %w", err)
	}

	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(sdkmetric.NewPeriodicReader(metricExporter)),
		sdkmetric.WithResource(res),
	)

	otel.SetMeterProvider(mp)

	return mp, nil
}

// NewMetrics creates and registers all metric instruments using the given
// MeterProvider. The meter is scoped to the service name.
func NewMetrics(mp metric.MeterProvider, serviceName string) (*Metrics, error) {
	meter := mp.Meter(serviceName)

	var (
		m    Metrics
		errs []error
		err  error
	)

	m.ServerRequestDuration, err = meter.Float64Histogram(
		"http.server.request.duration",
		metric.WithDescription("Duration of incoming HTTP requests"),
		metric.WithUnit("s"),
	)
	errs = append(errs, wrapInstrumentErr("http.server.request.duration", err))

	m.ServerRequestTotal, err = meter.Int64Counter(
		"http.server.request.total",
		metric.WithDescription("Total number of incoming HTTP requests"),
		metric.WithUnit("{request}"),
	)
	errs = append(errs, wrapInstrumentErr("http.server.request.total", err))

	m.ClientRequestDuration, err = meter.Float64Histogram(
		"http.client.request.duration",
		metric.WithDescription("Duration of outgoing HTTP requests"),
		metric.WithUnit("s"),
	)
	errs = append(errs, wrapInstrumentErr("http.client.request.duration", err))

	m.ClientRequestTotal, err = meter.Int64Counter(
		"http.client.request.total",
		metric.WithDescription("Total number of outgoing HTTP requests"),
		metric.WithUnit("{request}"),
	)
	errs = append(errs, wrapInstrumentErr("http.client.request.total", err))

	m.AgentIterations, err = meter.Int64Histogram(
		"chat.agent.iterations",
		metric.WithDescription("Number of reasoning steps taken per agent run"),
		metric.WithUnit("{step}"),
	)
	errs = append(errs, wrapInstrumentErr("chat.agent.iterations", err))

	m.FallbackTotal, err = meter.Int64Counter(
		"chat.fallback.total",
		metric.WithDescription("Number of chat requests answered by the plain completion fallback"),
		metric.WithUnit("{request}"),
	)
	errs = append(errs, wrapInstrumentErr("chat.fallback.total", err))

	m.ToolInvocations, err = meter.Int64Counter(
		"chat.tool.invocations",
		metric.WithDescription("Number of tool calls made by the agent"),
		metric.WithUnit("{call}"),
	)
	errs = append(errs, wrapInstrumentErr("chat.tool.invocations", err))

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return &m, nil
}

// RecordAgentRun records the number of steps an agent run took and how it
// ended ("final_answer", "iteration_limit", "error").
func (m *Metrics) RecordAgentRun(ctx context.Context, steps int, outcome string) {
	if m == nil {
		return
	}
	m.AgentIterations.Record(ctx, int64(steps), metric.WithAttributes(AttrOutcome.String(outcome)))
}

// RecordFallback counts a request answered (or attempted) by the fallback
// completion. result is "success" or "error".
func (m *Metrics) RecordFallback(ctx context.Context, result string) {
	if m == nil {
		return
	}
	m.FallbackTotal.Add(ctx, 1, metric.WithAttributes(AttrResult.String(result)))
}

// RecordToolInvocation counts a tool call. result is "success", "error" or
// "unknown_tool".
func (m *Metrics) RecordToolInvocation(ctx context.Context, tool, result string) {
	if m == nil {
		return
	}
	m.ToolInvocations.Add(ctx, 1, metric.WithAttributes(
		AttrTool.String(tool),
		AttrResult.String(result),
	))
}

func wrapInstrumentErr(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("creating %s: %w", name, err)
}

func newResource(serviceName string) (*resource.Resource, error) {
	return resource.Merge(
		resource.Default(),
		resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(serviceName),
		),
	)
}

func newSpanExporter(ctx context.Context, exporter, endpoint string) (sdktrace.SpanExporter, error) {
	switch exporter {
	case ExporterOTLP:
		if endpoint == "" {
			return nil, errors.New("otlp exporter requires an endpoint")
		}
		opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlptracehttp.WithInsecure())
		}
		return otlptracehttp.New(ctx, opts...)
	case ExporterStdout:
		return stdouttrace.New(stdouttrace.WithPrettyPrint())
	default:
		return nil, fmt.Errorf("unsupported exporter %q", exporter)
	}
}

func newMetricExporter(ctx context.Context, exporter, endpoint string) (sdkmetric.Exporter, error) {
	switch exporter {
	case ExporterOTLP:
		if endpoint == "" {
			return nil, errors.New("otlp exporter requires an endpoint")
		}
		opts := []otlpmetrichttp.Option{otlpmetrichttp.WithEndpoint(hostPort(endpoint))}
		if !isHTTPS(endpoint) {
			opts = append(opts, otlpmetrichttp.WithInsecure())
		}
		return otlpmetrichttp.New(ctx, opts...)
	case ExporterStdout:
		return stdoutmetric.New()
	default:
		return nil, fmt.Errorf("unsupported exporter %q", exporter)
	}
}

// hostPort extracts the host:port from a URL string
// (e.g., "http://otel-collector:4318" -> "otel-collector:4318").
func hostPort(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil || u.Host == "" {
		return endpoint
	}
	return u.Host
}

// isHTTPS returns true if the endpoint URL uses the https scheme.
func isHTTPS(endpoint string) bool {
	u, err := url.Parse(endpoint)
	if err != nil {
		return false
	}
	return u.Scheme == "https"
}
