package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/infinitelist/internal/config"
	"github.com/Sumatoshi-tech/infinitelist/internal/scenario"
)

const (
	runCmdUse          = "run <scenario.yaml>..."
	runCmdShort        = "Execute scenarios and print the resulting lists"
	runMinArgs         = 1
	runBackgroundFlag  = "background"
	runBackgroundUsage = "also print the background regions"
)

// NewRunCommand creates the run subcommand.
func NewRunCommand(opts *GlobalOptions) *cobra.Command {
	var showBackground bool

	cmd := &cobra.Command{
		Use:   runCmdUse,
		Short: runCmdShort,
		Long: `Execute every scenario of the given YAML files and print a window of
each resulting list as a table. Rejected steps are reported but do not stop
the scenario unless scenario.strict is set.`,
		Args: cobra.MinimumNArgs(runMinArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runScenarios(cmd, opts, args, showBackground)
		},
	}

	cmd.Flags().BoolVar(&showBackground, runBackgroundFlag, false, runBackgroundUsage)

	return cmd
}

func runScenarios(cmd *cobra.Command, opts *GlobalOptions, paths []string, showBackground bool) (err error) {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	sess, err := openSession(ctx, opts, cmd.ErrOrStderr(), "")
	if err != nil {
		return err
	}

	defer func() { err = errors.Join(err, sess.close(ctx)) }()

	var scenarios []*scenario.Scenario

	for _, path := range paths {
		loaded, loadErr := scenario.LoadFile(path)
		if loadErr != nil {
			return loadErr
		}

		scenarios = append(scenarios, loaded...)
	}

	pal := newPalette(sess.cfg.Render.Color)
	runner := sess.runner()

	for _, sc := range scenarios {
		start, stop := windowFor(sc, sess.cfg)
		if start < stop && uint(stop-start) > config.MaxWindowWidth {
			return fmt.Errorf("%w: scenario %q", config.ErrWindowTooWide, sc.Name)
		}

		result, runErr := runner.Run(ctx, sc)
		if runErr != nil {
			return runErr
		}

		pal.title.Fprintf(out, "== %s (%s) ==\n", sc.Name, result.List.Domain())
		renderWindow(out, result.List, start, stop, sess.cfg.Render.Style)

		if showBackground {
			renderBackground(out, result.List, sess.cfg.Render.Style)
		}

		renderSummary(out, result, len(sc.Steps))
		renderFailures(out, result, pal)
	}

	return nil
}
