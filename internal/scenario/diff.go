package scenario

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Diff prefixes.
const (
	diffKeep   = "  "
	diffRemove = "- "
	diffAdd    = "+ "
)

// LineDiff renders a line-level diff of want against got, one value per
// line: "- " marks values only in want, "+ " values only in got.
func LineDiff(want, got []string) string {
	dmp := diffmatchpatch.New()

	src, dst, lines := dmp.DiffLinesToRunes(joinLines(want), joinLines(got))
	diffs := dmp.DiffMainRunes(src, dst, false)
	diffs = dmp.DiffCharsToLines(diffs, lines)

	var buffer strings.Builder

	for _, diff := range diffs {
		prefix := diffKeep

		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			prefix = diffRemove
		case diffmatchpatch.DiffInsert:
			prefix = diffAdd
		case diffmatchpatch.DiffEqual:
		}

		for line := range strings.SplitSeq(strings.TrimSuffix(diff.Text, "\n"), "\n") {
			buffer.WriteString(prefix)
			buffer.WriteString(line)
			buffer.WriteByte('\n')
		}
	}

	return buffer.String()
}

// joinLines terminates every value with a newline so that the last value is
// compared like any other line.
func joinLines(values []string) string {
	if len(values) == 0 {
		return ""
	}

	return strings.Join(values, "\n") + "\n"
}
