package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	promexporter "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// PrometheusExporter collects OTel instruments into a private Prometheus
// registry that can be dumped in the text exposition format, e.g. for the
// node_exporter textfile collector.
type PrometheusExporter struct {
	registry *prometheus.Registry
	exporter *promexporter.Exporter
}

// NewPrometheusExporter creates an exporter backed by its own registry, so
// several exporters never conflict over collectors.
func NewPrometheusExporter() (*PrometheusExporter, error) {
	registry := prometheus.NewRegistry()

	exporter, err := promexporter.New(
		promexporter.WithRegisterer(registry),
	)
	if err != nil {
		return nil, fmt.Errorf("create prometheus exporter: %w", err)
	}

	return &PrometheusExporter{registry: registry, exporter: exporter}, nil
}

// Reader returns the metric reader to attach to a MeterProvider, see
// Config.MetricReaders. Without it the exporter has no metrics source.
func (pe *PrometheusExporter) Reader() sdkmetric.Reader {
	return pe.exporter
}

// Registry exposes the underlying registry, e.g. for an HTTP handler.
func (pe *PrometheusExporter) Registry() *prometheus.Registry {
	return pe.registry
}

// WriteTextfile gathers the registry and atomically writes it to path.
// It must run before the meter provider shuts down.
func (pe *PrometheusExporter) WriteTextfile(path string) error {
	err := prometheus.WriteToTextfile(path, pe.registry)
	if err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}

	return nil
}
