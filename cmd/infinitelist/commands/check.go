package commands

import (
	"errors"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/infinitelist/internal/scenario"
)

const (
	checkCmdUse        = "check <scenario.yaml>..."
	checkCmdShort      = "Verify the expectations of scenarios"
	checkTextfileFlag  = "metrics-textfile"
	checkTextfileUsage = "write Prometheus metrics of the run to this file"
)

// ErrScenariosFailed is returned when at least one scenario did not pass.
var ErrScenariosFailed = errors.New("scenarios failed")

// NewCheckCommand creates the check subcommand.
func NewCheckCommand(opts *GlobalOptions) *cobra.Command {
	var textfile string

	cmd := &cobra.Command{
		Use:   checkCmdUse,
		Short: checkCmdShort,
		Long: `Execute scenarios and compare the resulting lists with their expect
blocks. Mismatches are shown as a line diff of expected and actual values.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkScenarios(cmd, opts, args, textfile)
		},
	}

	cmd.Flags().StringVar(&textfile, checkTextfileFlag, "", checkTextfileUsage)

	return cmd
}

type checkTally struct {
	passed int
	failed int
}

func checkScenarios(cmd *cobra.Command, opts *GlobalOptions, paths []string, textfile string) (err error) {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	sess, err := openSession(ctx, opts, cmd.ErrOrStderr(), textfile)
	if err != nil {
		return err
	}

	defer func() { err = errors.Join(err, sess.close(ctx)) }()

	pal := newPalette(sess.cfg.Render.Color)
	runner := sess.runner()

	var tally checkTally

	for _, path := range paths {
		scenarios, loadErr := scenario.LoadFile(path)
		if loadErr != nil {
			return loadErr
		}

		for _, sc := range scenarios {
			result, runErr := runner.Run(ctx, sc)
			if runErr != nil {
				pal.fail.Fprint(out, "ERROR ")
				fmt.Fprintf(out, "%s: %v\n", sc.Name, runErr)

				tally.failed++

				continue
			}

			if result.Passed() {
				pal.pass.Fprint(out, "PASS  ")
				fmt.Fprintf(out, "%s (%s)\n", sc.Name, result.Elapsed)

				tally.passed++

				continue
			}

			pal.fail.Fprint(out, "FAIL  ")
			fmt.Fprintf(out, "%s\n", sc.Name)
			renderFailures(out, result, pal)

			tally.failed++
		}
	}

	fmt.Fprintf(out, "\n%s scenarios, %s passed, %s failed\n",
		humanize.Comma(int64(tally.passed+tally.failed)),
		humanize.Comma(int64(tally.passed)),
		humanize.Comma(int64(tally.failed)))

	if tally.failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrScenariosFailed, tally.failed, tally.passed+tally.failed)
	}

	return nil
}
