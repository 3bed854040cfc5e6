// Package commands implements the infinitelist CLI subcommands.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/Sumatoshi-tech/infinitelist/internal/config"
	"github.com/Sumatoshi-tech/infinitelist/internal/observability"
	"github.com/Sumatoshi-tech/infinitelist/internal/scenario"
	"github.com/Sumatoshi-tech/infinitelist/pkg/version"
)

// GlobalOptions holds the flags shared by every subcommand.
type GlobalOptions struct {
	ConfigPath string
	NoColor    bool
}

// session bundles the configuration and telemetry of one command invocation.
type session struct {
	cfg        *config.Config
	providers  observability.Providers
	metrics    *observability.ScenarioMetrics
	prometheus *observability.PrometheusExporter
	textfile   string
}

// openSession loads the configuration and starts telemetry. A non-empty
// textfile attaches a Prometheus exporter whose registry is written there on
// close.
func openSession(ctx context.Context, opts *GlobalOptions, logWriter io.Writer, textfile string) (*session, error) {
	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	if opts.NoColor {
		cfg.Render.Color = false
	}

	obsCfg := observability.DefaultConfig()
	obsCfg.ServiceVersion = version.Version
	obsCfg.OTLPEndpoint = cfg.Telemetry.OTLPEndpoint
	obsCfg.OTLPHeaders = observability.ParseOTLPHeaders(cfg.Telemetry.OTLPHeaders)
	obsCfg.OTLPInsecure = cfg.Telemetry.OTLPInsecure
	obsCfg.SampleRatio = cfg.Telemetry.SampleRatio
	obsCfg.LogLevel = cfg.LogLevel()
	obsCfg.LogJSON = cfg.Logging.Format == config.FormatJSON
	obsCfg.LogWriter = logWriter

	sess := &session{cfg: cfg, textfile: textfile}

	if textfile != "" {
		sess.prometheus, err = observability.NewPrometheusExporter()
		if err != nil {
			return nil, err
		}

		obsCfg.MetricReaders = append(obsCfg.MetricReaders, sess.prometheus.Reader())
	}

	sess.providers, err = observability.Init(ctx, obsCfg)
	if err != nil {
		return nil, fmt.Errorf("init observability: %w", err)
	}

	sess.metrics, err = observability.NewScenarioMetrics(sess.providers.Meter)
	if err != nil {
		return nil, errors.Join(err, sess.providers.Shutdown(ctx))
	}

	return sess, nil
}

func (sess *session) runner() *scenario.Runner {
	return scenario.NewRunner(scenario.RunnerDeps{
		Logger:  sess.providers.Logger,
		Tracer:  sess.providers.Tracer,
		Metrics: sess.metrics,
	}, sess.cfg.Scenario.Strict)
}

// close writes the metrics textfile, if any, and flushes telemetry.
func (sess *session) close(ctx context.Context) error {
	var writeErr error

	if sess.prometheus != nil {
		writeErr = sess.prometheus.WriteTextfile(sess.textfile)
	}

	shutdownErr := sess.providers.Shutdown(ctx)
	if shutdownErr != nil {
		sess.providers.Logger.WarnContext(ctx, "observability shutdown failed", "error", shutdownErr)
	}

	return writeErr
}
