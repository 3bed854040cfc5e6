package scenario

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	nooptrace "go.opentelemetry.io/otel/trace/noop"

	"github.com/Sumatoshi-tech/infinitelist/internal/observability"
	"github.com/Sumatoshi-tech/infinitelist/pkg/infinitelist"
)

// RunnerDeps holds the optional collaborators of a Runner. Nil fields fall
// back to no-op implementations.
type RunnerDeps struct {
	Logger  *slog.Logger
	Tracer  trace.Tracer
	Metrics *observability.ScenarioMetrics
}

// Runner executes scenarios.
type Runner struct {
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *observability.ScenarioMetrics
	strict  bool
}

// NewRunner creates a runner. In strict mode the first rejected step aborts
// the scenario with an error; otherwise it is recorded and execution goes on.
func NewRunner(deps RunnerDeps, strict bool) *Runner {
	runner := &Runner{
		logger:  deps.Logger,
		tracer:  deps.Tracer,
		metrics: deps.Metrics,
		strict:  strict,
	}

	if runner.logger == nil {
		runner.logger = slog.New(slog.DiscardHandler)
	}

	if runner.tracer == nil {
		runner.tracer = nooptrace.NewTracerProvider().Tracer("infinitelist")
	}

	return runner
}

// StepFailure is a step the list rejected.
type StepFailure struct {
	// Path locates the step, e.g. "steps[2].list.steps[0]".
	Path string
	Op   string
	Err  error
}

func (failure StepFailure) Error() string {
	return fmt.Sprintf("%s (%s): %v", failure.Path, failure.Op, failure.Err)
}

func (failure StepFailure) Unwrap() error {
	return failure.Err
}

// Mismatch is an expectation the final list does not meet. Err is set when
// the expected span could not be read at all.
type Mismatch struct {
	Expectation Expectation
	Got         []string
	Err         error
	Diff        string
}

// Result is the outcome of one scenario.
type Result struct {
	Name       string
	List       *infinitelist.List[string]
	Failures   []StepFailure
	Mismatches []Mismatch
	Elapsed    time.Duration
}

// Passed reports whether every step applied and every expectation held.
func (result *Result) Passed() bool {
	return len(result.Failures) == 0 && len(result.Mismatches) == 0
}

// Status returns the outcome label used in metrics and reports.
func (result *Result) Status() string {
	if result.Passed() {
		return observability.StatusPass
	}

	return observability.StatusFail
}

// Run executes the steps of sc on a fresh list and checks its expectations.
// The returned error is reserved for strict mode aborts and malformed
// scenarios; rejected steps and unmet expectations are part of the result.
func (runner *Runner) Run(ctx context.Context, sc *Scenario) (*Result, error) {
	ctx, span := runner.tracer.Start(ctx, "infinitelist.scenario",
		trace.WithAttributes(attribute.String("scenario.name", sc.Name)))
	defer span.End()

	started := time.Now()
	result := &Result{Name: sc.Name}

	list, err := runner.build(ctx, sc.ListSpec(), "", result)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())

		if runner.metrics != nil {
			runner.metrics.RecordScenario(ctx, observability.StatusError, 0, 0)
		}

		return nil, fmt.Errorf("scenario %q: %w", sc.Name, err)
	}

	result.List = list

	for _, exp := range sc.Expect {
		mismatch, ok := check(list, exp)
		if !ok {
			result.Mismatches = append(result.Mismatches, mismatch)
		}
	}

	result.Elapsed = time.Since(started)

	span.SetAttributes(
		attribute.Int("scenario.failures", len(result.Failures)),
		attribute.Int("scenario.mismatches", len(result.Mismatches)),
	)

	if runner.metrics != nil {
		runner.metrics.RecordScenario(ctx, result.Status(), list.Len(), list.Regions())
	}

	runner.logger.DebugContext(ctx, "scenario finished",
		"name", sc.Name,
		"status", result.Status(),
		"overrides", list.Len(),
		"regions", list.Regions(),
		"elapsed", result.Elapsed)

	return result, nil
}

// build creates the list described by listSpec and applies its steps.
func (runner *Runner) build(ctx context.Context, listSpec ListSpec, path string, result *Result) (*infinitelist.List[string], error) {
	domain, err := infinitelist.ParseDomain(listSpec.Domain)
	if err != nil {
		return nil, fmt.Errorf("%sdomain: %w", path, err)
	}

	list := infinitelist.NewFunc(domain, listSpec.Fill, equalString)

	for idx, step := range listSpec.Steps {
		stepPath := path + "steps[" + strconv.Itoa(idx) + "]"

		stepErr := runner.apply(ctx, list, step, stepPath, result)
		if stepErr == nil {
			continue
		}

		failure := StepFailure{Path: stepPath, Op: step.Op, Err: stepErr}

		runner.logger.WarnContext(ctx, "step rejected", "path", stepPath, "op", step.Op, "error", stepErr)

		if runner.strict {
			return nil, failure
		}

		result.Failures = append(result.Failures, failure)
	}

	return list, nil
}

func (runner *Runner) apply(
	ctx context.Context, list *infinitelist.List[string], step Step, path string, result *Result,
) error {
	ctx, span := runner.tracer.Start(ctx, "infinitelist.step",
		trace.WithAttributes(attribute.String("step.op", step.Op), attribute.String("step.path", path)))
	defer span.End()

	var src *infinitelist.List[string]

	if step.List != nil {
		var err error

		src, err = runner.build(ctx, *step.List, path+".list.", result)
		if err != nil {
			return err
		}
	}

	started := time.Now()
	err := applyStep(list, step, src)

	if runner.metrics != nil {
		runner.metrics.RecordOperation(ctx, step.Op, time.Since(started), err)
	}

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return err
}

func applyStep(list *infinitelist.List[string], step Step, src *infinitelist.List[string]) error {
	switch step.Op {
	case OpSet:
		return list.Set(step.Index, step.Value)
	case OpSetLeft:
		return list.SetAllLeft(step.Index, step.Value)
	case OpSetRight:
		return list.SetAllRight(step.Index, step.Value)
	case OpSetRange:
		return list.SetAllRange(step.Value, step.Start, step.Stop)
	case OpSetAll:
		list.SetAll(step.Value)

		return nil
	case OpAssign:
		return list.AssignSlice(infinitelist.Between(step.Start, step.Stop), step.Values)
	case OpSpliceLeft, OpSpliceRight:
		if src == nil {
			return fmt.Errorf("%w: %s needs a list", ErrInvalidScenario, step.Op)
		}

		if step.Op == OpSpliceLeft {
			return list.SpliceLeft(step.Index, src)
		}

		return list.SpliceRight(step.Index, src)
	default:
		return fmt.Errorf("%w: unknown op %q", ErrInvalidScenario, step.Op)
	}
}

// check reads the span of exp and compares it with the expected values.
func check(list *infinitelist.List[string], exp Expectation) (Mismatch, bool) {
	got, err := list.Values(exp.Span())
	if err != nil {
		return Mismatch{Expectation: exp, Err: err}, false
	}

	if slices.Equal(got, exp.Values) {
		return Mismatch{}, true
	}

	return Mismatch{Expectation: exp, Got: got, Diff: LineDiff(exp.Values, got)}, false
}

func equalString(a, b string) bool {
	return a == b
}
