package commands

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/infinitelist/internal/config"
	"github.com/Sumatoshi-tech/infinitelist/internal/scenario"
	"github.com/Sumatoshi-tech/infinitelist/pkg/infinitelist"
)

const (
	sourceOverride   = "set"
	sourceBackground = "fill"
)

var tableStyles = map[string]table.Style{
	config.StyleDefault: table.StyleDefault,
	config.StyleLight:   table.StyleLight,
	config.StyleRounded: table.StyleRounded,
	config.StyleBold:    table.StyleBold,
	config.StyleDouble:  table.StyleDouble,
}

// palette holds the colors of the report. Colors are disabled per instance
// so that concurrent renders never touch the color.NoColor global.
type palette struct {
	pass   *color.Color
	fail   *color.Color
	add    *color.Color
	remove *color.Color
	title  *color.Color
}

func newPalette(enabled bool) palette {
	pal := palette{
		pass:   color.New(color.FgGreen, color.Bold),
		fail:   color.New(color.FgRed, color.Bold),
		add:    color.New(color.FgGreen),
		remove: color.New(color.FgRed),
		title:  color.New(color.FgCyan, color.Bold),
	}

	if !enabled {
		for _, c := range []*color.Color{pal.pass, pal.fail, pal.add, pal.remove, pal.title} {
			c.DisableColor()
		}
	}

	return pal
}

func newTable(style string) table.Writer {
	tbl := table.NewWriter()

	tableStyle, ok := tableStyles[style]
	if !ok {
		tableStyle = table.StyleRounded
	}

	tbl.SetStyle(tableStyle)

	return tbl
}

// renderWindow prints index, value and origin of every index in [start, stop)
// that lies in the domain of list.
func renderWindow(w io.Writer, list *infinitelist.List[string], start, stop int, style string) {
	start, stop = clampWindow(list.Domain(), start, stop)

	explicit := make(map[int]bool)

	for index := range list.Overrides() {
		if index >= start && index < stop {
			explicit[index] = true
		}
	}

	tbl := newTable(style)
	tbl.AppendHeader(table.Row{"Index", "Value", "Source"})

	if start < stop {
		values, err := list.Values(infinitelist.Between(start, stop))
		if err == nil {
			for idx, value := range values {
				source := sourceBackground
				if explicit[start+idx] {
					source = sourceOverride
				}

				tbl.AppendRow(table.Row{start + idx, value, source})
			}
		}
	}

	tbl.AppendFooter(table.Row{"", fmt.Sprintf("%s indices", humanize.Comma(int64(max(stop-start, 0)))), ""})

	fmt.Fprintln(w, tbl.Render())
}

// clampWindow narrows [start, stop) to the domain of a directional list.
func clampWindow(domain infinitelist.Domain, start, stop int) (int, int) {
	switch domain {
	case infinitelist.LeftBounded:
		stop = min(stop, 1)
	case infinitelist.RightBounded:
		start = max(start, 0)
	case infinitelist.Unbounded:
	}

	return start, stop
}

// renderBackground prints the background regions of list.
func renderBackground(w io.Writer, list *infinitelist.List[string], style string) {
	tbl := newTable(style)
	tbl.AppendHeader(table.Row{"From", "Value"})

	first := true

	for bound, value := range list.Background() {
		from := boundIndex(bound)
		if first {
			from = "-inf"
			first = false
		}

		tbl.AppendRow(table.Row{from, value})
	}

	fmt.Fprintln(w, tbl.Render())
}

// renderSummary prints one line with the shape of the resulting list.
func renderSummary(w io.Writer, result *scenario.Result, steps int) {
	fmt.Fprintf(w, "overrides: %s, regions: %s, steps: %s, elapsed: %s\n",
		humanize.Comma(int64(result.List.Len())),
		humanize.Comma(int64(result.List.Regions())),
		humanize.Comma(int64(steps)),
		result.Elapsed)
}

// renderFailures prints rejected steps and unmet expectations with diffs.
func renderFailures(w io.Writer, result *scenario.Result, pal palette) {
	for _, failure := range result.Failures {
		pal.fail.Fprint(w, "  rejected ")
		fmt.Fprintln(w, failure.Error())
	}

	for _, mismatch := range result.Mismatches {
		pal.fail.Fprintf(w, "  expect %s", mismatch.Expectation)

		if mismatch.Err != nil {
			fmt.Fprintf(w, ": %v\n", mismatch.Err)

			continue
		}

		fmt.Fprintln(w)

		for line := range strings.SplitSeq(strings.TrimSuffix(mismatch.Diff, "\n"), "\n") {
			switch {
			case strings.HasPrefix(line, "- "):
				pal.remove.Fprintln(w, "    "+line)
			case strings.HasPrefix(line, "+ "):
				pal.add.Fprintln(w, "    "+line)
			default:
				fmt.Fprintln(w, "    "+line)
			}
		}
	}
}

// windowFor picks the window of a scenario: its own, or the configured one.
func windowFor(sc *scenario.Scenario, cfg *config.Config) (int, int) {
	if sc.Window != nil {
		return sc.Window.Start, sc.Window.Stop
	}

	return cfg.Render.WindowStart, cfg.Render.WindowStop
}

// boundIndex renders math.MinInt and math.MaxInt symbolically.
func boundIndex(index int) string {
	switch index {
	case math.MinInt:
		return "-inf"
	case math.MaxInt:
		return "+inf"
	default:
		return humanize.Comma(int64(index))
	}
}
