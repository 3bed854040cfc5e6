package commands

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/infinitelist/internal/config"
	"github.com/Sumatoshi-tech/infinitelist/pkg/infinitelist"
)

func TestClampWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		domain    infinitelist.Domain
		start     int
		stop      int
		wantStart int
		wantStop  int
	}{
		{"unbounded keeps window", infinitelist.Unbounded, -5, 6, -5, 6},
		{"left cuts positive side", infinitelist.LeftBounded, -5, 6, -5, 1},
		{"right cuts negative side", infinitelist.RightBounded, -5, 6, 0, 6},
		{"right window fully outside", infinitelist.RightBounded, -9, -3, 0, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			start, stop := clampWindow(tt.domain, tt.start, tt.stop)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantStop, stop)
		})
	}
}

func TestBoundIndex(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-inf", boundIndex(math.MinInt))
	assert.Equal(t, "+inf", boundIndex(math.MaxInt))
	assert.Equal(t, "-1,000", boundIndex(-1000))
}

func TestRenderWindow_OutsideDomainIsEmpty(t *testing.T) {
	t.Parallel()

	list := infinitelist.NewRight("a")

	var buf bytes.Buffer

	renderWindow(&buf, list, -9, -3, config.StyleLight)

	text := strings.ToLower(buf.String())
	assert.Contains(t, text, "0 indices")
	assert.NotContains(t, text, "fill")
}

func TestRenderWindow_MarksOverrides(t *testing.T) {
	t.Parallel()

	list := infinitelist.NewLeft("a")
	require.NoError(t, list.Set(-1, "b"))

	var buf bytes.Buffer

	renderWindow(&buf, list, -2, 5, config.StyleDefault)

	text := buf.String()
	assert.Contains(t, strings.ToLower(text), "3 indices")
	assert.Equal(t, 1, strings.Count(text, " set "))
	assert.Equal(t, 2, strings.Count(text, " fill "))
}

func TestNewTable_UnknownStyleFallsBack(t *testing.T) {
	t.Parallel()

	tbl := newTable("neon")
	assert.Equal(t, tableStyles[config.StyleRounded].Name, tbl.Style().Name)
}
