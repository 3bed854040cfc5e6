package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	metricOperationsTotal   = "infinitelist.operations.total"
	metricOperationDuration = "infinitelist.operation.duration.seconds"
	metricOperationErrors   = "infinitelist.operation.errors.total"
	metricScenariosTotal    = "infinitelist.scenarios.total"
	metricListOverrides     = "infinitelist.list.overrides"
	metricListRegions       = "infinitelist.list.regions"

	attrOp     = "op"
	attrStatus = "status"
)

// Scenario outcomes.
const (
	StatusPass  = "pass"
	StatusFail  = "fail"
	StatusError = "error"
)

// durationBucketBoundaries covers 1µs to 1s; list operations are in-memory.
var durationBucketBoundaries = []float64{1e-6, 1e-5, 1e-4, 1e-3, 0.01, 0.1, 1}

// sizeBucketBoundaries covers list shapes from a handful of entries up to
// large scripted scenarios.
var sizeBucketBoundaries = []float64{0, 1, 4, 16, 64, 256, 1024, 4096}

// ScenarioMetrics holds the OTel instruments recorded while scenarios run.
type ScenarioMetrics struct {
	operationsTotal   metric.Int64Counter
	operationDuration metric.Float64Histogram
	operationErrors   metric.Int64Counter
	scenariosTotal    metric.Int64Counter
	listOverrides     metric.Int64Histogram
	listRegions       metric.Int64Histogram
}

// NewScenarioMetrics creates scenario metric instruments from the given meter.
func NewScenarioMetrics(mt metric.Meter) (*ScenarioMetrics, error) {
	b := newMetricBuilder(mt)

	sm := &ScenarioMetrics{
		operationsTotal:   b.counter(metricOperationsTotal, "Total number of list operations applied", "{operation}"),
		operationDuration: b.histogram(metricOperationDuration, "List operation duration in seconds", "s", durationBucketBoundaries...),
		operationErrors:   b.counter(metricOperationErrors, "Total number of rejected list operations", "{error}"),
		scenariosTotal:    b.counter(metricScenariosTotal, "Total number of scenarios executed", "{scenario}"),
		listOverrides:     b.intHistogram(metricListOverrides, "Explicit values held by a list after a scenario", "{value}", sizeBucketBoundaries...),
		listRegions:       b.intHistogram(metricListRegions, "Background regions held by a list after a scenario", "{region}", sizeBucketBoundaries...),
	}

	if b.err != nil {
		return nil, b.err
	}

	return sm, nil
}

// RecordOperation records one applied list operation. A non-nil opErr also
// counts as a rejected operation.
func (sm *ScenarioMetrics) RecordOperation(ctx context.Context, op string, duration time.Duration, opErr error) {
	status := StatusPass
	if opErr != nil {
		status = StatusError
	}

	attrs := metric.WithAttributes(
		attribute.String(attrOp, op),
		attribute.String(attrStatus, status),
	)

	sm.operationsTotal.Add(ctx, 1, attrs)
	sm.operationDuration.Record(ctx, duration.Seconds(), attrs)

	if opErr != nil {
		sm.operationErrors.Add(ctx, 1, metric.WithAttributes(
			attribute.String(attrOp, op),
		))
	}
}

// RecordScenario records a finished scenario with its outcome and the shape
// of the resulting list.
func (sm *ScenarioMetrics) RecordScenario(ctx context.Context, status string, overrides, regions int) {
	sm.scenariosTotal.Add(ctx, 1, metric.WithAttributes(attribute.String(attrStatus, status)))
	sm.listOverrides.Record(ctx, int64(overrides))
	sm.listRegions.Record(ctx, int64(regions))
}
