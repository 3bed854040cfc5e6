package infinitelist_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/infinitelist/pkg/infinitelist"
)

// Test constants.
const (
	none     = ""
	largeIdx = 99999999
)

func values(t *testing.T, list *infinitelist.List[string], start, stop int) []string {
	t.Helper()

	result, err := list.Values(infinitelist.Between(start, stop))
	require.NoError(t, err)

	return result
}

func repeat(value string, count int) []string {
	return slices.Repeat([]string{value}, count)
}

func concat(parts ...[]string) []string {
	return slices.Concat(parts...)
}

func requireEqual(t *testing.T, expected, actual *infinitelist.List[string]) {
	t.Helper()

	equal, err := expected.Equal(actual)
	require.NoError(t, err)
	assert.True(t, equal, "expected %s, got %s", expected, actual)
}

func assign(t *testing.T, list *infinitelist.List[string], span infinitelist.Span, value string) {
	t.Helper()
	require.NoError(t, list.AssignValue(span, value))
}

func assignSlice(t *testing.T, list *infinitelist.List[string], span infinitelist.Span, vals ...string) {
	t.Helper()
	require.NoError(t, list.AssignSlice(span, vals))
}

func get(t *testing.T, list *infinitelist.List[string], index int) string {
	t.Helper()

	value, err := list.Get(index)
	require.NoError(t, err)

	return value
}

func sub(t *testing.T, list *infinitelist.List[string], span infinitelist.Span) *infinitelist.List[string] {
	t.Helper()

	result, err := list.Sub(span)
	require.NoError(t, err)

	return result
}

func TestReadFromEmptyList(t *testing.T) {
	t.Parallel()

	assert.Equal(t, none, get(t, infinitelist.New(none), 0))
	assert.Equal(t, "hello", get(t, infinitelist.New("hello"), 0))
}

func TestPointRoundTrip(t *testing.T) {
	t.Parallel()

	for _, index := range []int{0, -1, largeIdx, -largeIdx, 1 << 62, -(1 << 62)} {
		list := infinitelist.New(none)
		require.NoError(t, list.Set(index, "v"))
		assert.Equal(t, "v", get(t, list, index), "index %d", index)
		assert.Equal(t, none, get(t, list, index+1))
	}
}

func TestZeroValueOverridePrecedence(t *testing.T) {
	t.Parallel()

	list := infinitelist.New("fill")
	require.NoError(t, list.Set(3, none))

	assert.Equal(t, none, get(t, list, 3))
	assert.Equal(t, "fill", get(t, list, 4))

	numbers := infinitelist.New(7)
	require.NoError(t, numbers.Set(0, 0))

	value, err := numbers.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 0, value)
}

func TestBoundedListSlice(t *testing.T) {
	t.Parallel()

	list := infinitelist.New(none)
	assignSlice(t, list, infinitelist.Between(1, 4), "a", "b", "c")
	require.NoError(t, list.Set(5, "d"))

	assert.Equal(t, []string{none, "a", "b", "c", none, "d", none}, values(t, list, 0, 7))
}

func TestComparingLists(t *testing.T) {
	t.Parallel()

	build := func(last string) *infinitelist.List[string] {
		list := infinitelist.New(none)
		assignSlice(t, list, infinitelist.Between(0, 3), "a", "b", "c")
		require.NoError(t, list.Set(5, last))

		return list
	}

	requireEqual(t, build("d"), build("d"))

	equal, err := build("d").Equal(build("e"))
	require.NoError(t, err)
	assert.False(t, equal)
}

func TestLeftUnboundedSlice(t *testing.T) {
	t.Parallel()

	list := infinitelist.New(none)
	assignSlice(t, list, infinitelist.Between(-7, -4), "a", "b", "c")
	require.NoError(t, list.Set(2, "d"))
	require.NoError(t, list.Set(-2, "e"))

	actual := sub(t, list, infinitelist.To(3))
	assert.Equal(t, infinitelist.LeftBounded, actual.Domain())

	expected := infinitelist.NewLeft(none)
	assignSlice(t, expected, infinitelist.Between(-9, 1),
		"a", "b", "c", none, none, "e", none, none, none, "d")

	requireEqual(t, expected, actual)
}

func TestRightUnboundedSlice(t *testing.T) {
	t.Parallel()

	list := infinitelist.New(none)
	assignSlice(t, list, infinitelist.Between(0, 3), "a", "b", "c")
	require.NoError(t, list.Set(5, "d"))
	require.NoError(t, list.Set(-2, "e"))

	actual := sub(t, list, infinitelist.From(1))
	assert.Equal(t, infinitelist.RightBounded, actual.Domain())

	expected := infinitelist.NewRight(none)
	assignSlice(t, expected, infinitelist.Between(0, 2), "b", "c")
	require.NoError(t, expected.Set(4, "d"))

	requireEqual(t, expected, actual)
}

func TestFullSliceIsCopy(t *testing.T) {
	t.Parallel()

	list := infinitelist.New(none)
	assignSlice(t, list, infinitelist.Between(0, 3), "a", "b", "c")
	require.NoError(t, list.Set(5, "d"))
	require.NoError(t, list.Set(-2, "e"))

	actual := sub(t, list, infinitelist.All())
	requireEqual(t, list.Clone(), actual)

	require.NoError(t, actual.Set(0, "z"))
	assert.Equal(t, "a", get(t, list, 0))
}

func TestSpliceLeftFromAnotherList(t *testing.T) {
	t.Parallel()

	list := infinitelist.New("a")
	require.NoError(t, list.Set(-1, "w"))
	require.NoError(t, list.Set(-2, "x"))
	require.NoError(t, list.Set(-4, "y"))
	assign(t, list, infinitelist.To(-7), "z")

	other := infinitelist.New("b")
	require.NoError(t, other.Set(-2, "c"))
	require.NoError(t, other.Set(-5, "d"))
	assign(t, other, infinitelist.To(-6), "e")

	require.NoError(t, list.AssignList(infinitelist.To(-1), sub(t, other, infinitelist.To(-1))))

	assert.Equal(t,
		[]string{"e", "e", "e", "b", "d", "b", "b", "c", "w", "a"},
		values(t, list, -9, 1))
}

func TestSpliceLeftFromAnotherListEdgeCase(t *testing.T) {
	t.Parallel()

	list := infinitelist.New("a")
	require.NoError(t, list.Set(-1, "b"))
	require.NoError(t, list.Set(-5, "c"))
	require.NoError(t, list.Set(-2, "d"))

	other := infinitelist.New("x")
	require.NoError(t, other.Set(-4, "y"))
	require.NoError(t, other.Set(-7, "z"))

	require.NoError(t, list.AssignList(infinitelist.To(-2), sub(t, other, infinitelist.To(-2))))

	assert.Equal(t,
		[]string{"x", "x", "x", "z", "x", "x", "y", "x", "d", "b", "a"},
		values(t, list, -10, 1))
}

func TestSpliceRightFromAnotherList(t *testing.T) {
	t.Parallel()

	list := infinitelist.New("a")
	require.NoError(t, list.Set(1, "w"))
	require.NoError(t, list.Set(2, "x"))
	require.NoError(t, list.Set(4, "y"))
	assign(t, list, infinitelist.From(8), "z")

	other := infinitelist.New("b")
	require.NoError(t, other.Set(2, "c"))
	require.NoError(t, other.Set(5, "d"))
	assign(t, other, infinitelist.From(7), "e")

	require.NoError(t, list.AssignList(infinitelist.From(2), sub(t, other, infinitelist.From(2))))

	assert.Equal(t,
		[]string{"a", "w", "c", "b", "b", "d", "b", "e", "e", "e"},
		values(t, list, 0, 10))
}

func TestSpliceRightFromAnotherListEdgeCase(t *testing.T) {
	t.Parallel()

	list := infinitelist.New("a")
	require.NoError(t, list.Set(1, "b"))
	require.NoError(t, list.Set(5, "c"))
	require.NoError(t, list.Set(2, "d"))

	other := infinitelist.NewRight("x")
	require.NoError(t, other.Set(1, "y"))
	require.NoError(t, other.Set(4, "z"))

	require.NoError(t, list.AssignList(infinitelist.From(3), other))

	assert.Equal(t,
		[]string{"a", "b", "d", "x", "y", "x", "x", "z", "x", "x"},
		values(t, list, 0, 10))
}

func TestSpliceComposition(t *testing.T) {
	t.Parallel()

	for _, pivot := range []int{-20, -1, 0, 3, 17} {
		list := infinitelist.New("a")
		require.NoError(t, list.Set(pivot-1, "keep"))
		require.NoError(t, list.Set(pivot+2, "gone"))
		assign(t, list, infinitelist.From(pivot+5), "q")

		right := infinitelist.NewRight("r")
		require.NoError(t, right.Set(0, "s"))
		require.NoError(t, right.Set(6, "t"))
		assign(t, right, infinitelist.Between(2, 4), "u")

		require.NoError(t, list.SpliceRight(pivot, right))

		requireEqual(t, right, sub(t, list, infinitelist.From(pivot)))
		assert.Equal(t, "keep", get(t, list, pivot-1))
		assert.Equal(t, "a", get(t, list, pivot-2))

		left := infinitelist.NewLeft("l")
		require.NoError(t, left.Set(-3, "m"))

		require.NoError(t, list.SpliceLeft(pivot, left))
		requireEqual(t, left, sub(t, list, infinitelist.To(pivot+1)))
		assert.Equal(t, "r", get(t, list, pivot+1))
	}
}

func TestSpliceRejectsWrongDirection(t *testing.T) {
	t.Parallel()

	list := infinitelist.New("a")

	err := list.AssignList(infinitelist.From(0), infinitelist.NewLeft("b"))
	require.ErrorIs(t, err, infinitelist.ErrDomain)

	err = list.AssignList(infinitelist.To(0), infinitelist.New("b"))
	require.ErrorIs(t, err, infinitelist.ErrDomain)

	err = list.AssignList(infinitelist.At(0), infinitelist.New("b"))
	require.ErrorIs(t, err, infinitelist.ErrDomain)

	assert.Equal(t, "a", get(t, list, 0))
}

func TestSpliceIntoItself(t *testing.T) {
	t.Parallel()

	list := infinitelist.NewLeft("a")
	require.NoError(t, list.Set(0, "b"))
	require.NoError(t, list.Set(-1, "c"))

	require.NoError(t, list.SpliceLeft(-2, list))

	assert.Equal(t, []string{"a", "c", "b", "c", "b"}, values(t, list, -4, 1))
}

func TestLeftUnboundedScalar(t *testing.T) {
	t.Parallel()

	list := infinitelist.New("a")
	assign(t, list, infinitelist.To(5), "b")

	requireEqual(t, infinitelist.NewLeft("b"), sub(t, list, infinitelist.To(5)))
	requireEqual(t, infinitelist.NewRight("a"), sub(t, list, infinitelist.From(5)))
}

func TestRightUnboundedScalar(t *testing.T) {
	t.Parallel()

	list := infinitelist.New("b")
	assign(t, list, infinitelist.From(5), "a")

	requireEqual(t, infinitelist.NewLeft("b"), sub(t, list, infinitelist.To(5)))
	requireEqual(t, infinitelist.NewRight("a"), sub(t, list, infinitelist.From(5)))
}

func TestOneSidedOverwrites(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		spans    []infinitelist.Span
		vals     []string
		start    int
		stop     int
		expected []string
		regions  int
	}{
		{
			name:     "right twice",
			spans:    []infinitelist.Span{infinitelist.From(5), infinitelist.From(10)},
			vals:     []string{"b", "c"},
			start:    0,
			stop:     15,
			expected: concat(repeat("a", 5), repeat("b", 5), repeat("c", 5)),
			regions:  3,
		},
		{
			name:     "right overwrite",
			spans:    []infinitelist.Span{infinitelist.From(10), infinitelist.From(5)},
			vals:     []string{"c", "b"},
			start:    0,
			stop:     15,
			expected: concat(repeat("a", 5), repeat("b", 10)),
			regions:  2,
		},
		{
			name:     "right exact overwrite",
			spans:    []infinitelist.Span{infinitelist.From(5), infinitelist.From(5)},
			vals:     []string{"b", "c"},
			start:    0,
			stop:     15,
			expected: concat(repeat("a", 5), repeat("c", 10)),
			regions:  2,
		},
		{
			name: "right exact overwrite with more values",
			spans: []infinitelist.Span{
				infinitelist.From(5), infinitelist.From(10), infinitelist.From(5),
			},
			vals:     []string{"b", "d", "c"},
			start:    0,
			stop:     15,
			expected: concat(repeat("a", 5), repeat("c", 10)),
			regions:  2,
		},
		{
			name:     "left twice",
			spans:    []infinitelist.Span{infinitelist.To(-4), infinitelist.To(-9)},
			vals:     []string{"b", "c"},
			start:    -14,
			stop:     1,
			expected: concat(repeat("c", 5), repeat("b", 5), repeat("a", 5)),
			regions:  3,
		},
		{
			name:     "left overwrite",
			spans:    []infinitelist.Span{infinitelist.To(-9), infinitelist.To(-4)},
			vals:     []string{"c", "b"},
			start:    -14,
			stop:     1,
			expected: concat(repeat("b", 10), repeat("a", 5)),
			regions:  2,
		},
		{
			name:     "left exact overwrite",
			spans:    []infinitelist.Span{infinitelist.To(-4), infinitelist.To(-4)},
			vals:     []string{"b", "c"},
			start:    -14,
			stop:     1,
			expected: concat(repeat("c", 10), repeat("a", 5)),
			regions:  2,
		},
		{
			name: "left exact overwrite with more values",
			spans: []infinitelist.Span{
				infinitelist.To(-4), infinitelist.To(-9), infinitelist.To(-4),
			},
			vals:     []string{"b", "d", "c"},
			start:    -14,
			stop:     1,
			expected: concat(repeat("c", 10), repeat("a", 5)),
			regions:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			list := infinitelist.New("a")

			for idx, span := range tt.spans {
				assign(t, list, span, tt.vals[idx])
			}

			assert.Equal(t, tt.expected, values(t, list, tt.start, tt.stop))
			assert.Equal(t, tt.regions, list.Regions())

			var bounds []int
			for bound := range list.Background() {
				bounds = append(bounds, bound)
			}

			assert.Len(t, slices.Compact(slices.Clone(bounds)), len(bounds))
		})
	}
}

func TestOneSidedOverwriteIdempotence(t *testing.T) {
	t.Parallel()

	twice := infinitelist.New("x")
	require.NoError(t, twice.SetAllRight(4, "a"))
	require.NoError(t, twice.SetAllRight(4, "b"))

	once := infinitelist.New("x")
	require.NoError(t, once.SetAllRight(4, "b"))

	requireEqual(t, once, twice)
	assert.Equal(t, once.Regions(), twice.Regions())
}

func TestUnboundedAssignment(t *testing.T) {
	t.Parallel()

	list := infinitelist.New("a")
	require.NoError(t, list.Set(4, "q"))
	require.NoError(t, list.AssignList(infinitelist.All(), infinitelist.New("b")))
	requireEqual(t, infinitelist.New("b"), list)
	assert.Equal(t, 0, list.Len())

	scalar := infinitelist.New("a")
	require.NoError(t, scalar.Set(4, "q"))
	assign(t, scalar, infinitelist.All(), "b")
	requireEqual(t, infinitelist.New("b"), scalar)
	assert.Equal(t, 0, scalar.Len())
}

func TestReplaceWithPrunesOutsideDomain(t *testing.T) {
	t.Parallel()

	source := infinitelist.New("a")
	require.NoError(t, source.Set(-3, "y"))
	require.NoError(t, source.Set(3, "x"))

	left := infinitelist.NewLeft("z")
	left.ReplaceWith(source)

	assert.Equal(t, 1, left.Len())
	assert.Equal(t, "y", get(t, left, -3))
	assert.Equal(t, "a", get(t, left, 0))
}

func TestCopy(t *testing.T) {
	t.Parallel()

	list := infinitelist.New(none)
	require.NoError(t, list.Set(0, "a"))
	require.NoError(t, list.Set(100, "b"))
	require.NoError(t, list.Set(-100, "c"))

	clone := list.Clone()
	require.NoError(t, clone.Set(0, "d"))
	require.NoError(t, clone.SetAllRight(50, "e"))

	assert.Equal(t, "a", get(t, list, 0))
	assert.Equal(t, "b", get(t, list, 100))
	assert.Equal(t, none, get(t, list, 60))
}

func newSliceList() *infinitelist.List[[]string] {
	return infinitelist.NewFunc(infinitelist.Unbounded, []string(nil), slices.Equal[[]string])
}

func TestCloneSharesValues(t *testing.T) {
	t.Parallel()

	list := newSliceList()
	require.NoError(t, list.Set(-100, []string{"c", "d", "e"}))

	clone := list.Clone()
	value, err := clone.Get(-100)
	require.NoError(t, err)

	value[0] = "z"

	original, err := list.Get(-100)
	require.NoError(t, err)
	assert.Equal(t, "z", original[0])
}

func TestCloneDeep(t *testing.T) {
	t.Parallel()

	list := newSliceList()
	require.NoError(t, list.Set(0, []string{"a"}))
	require.NoError(t, list.Set(-100, []string{"c", "d", "e"}))

	clone := list.CloneDeep(slices.Clone[[]string])
	value, err := clone.Get(-100)
	require.NoError(t, err)

	value[0] = "z"

	original, err := list.Get(-100)
	require.NoError(t, err)
	assert.Equal(t, "c", original[0])
}

func TestCloneDeepOnFillValues(t *testing.T) {
	t.Parallel()

	list := newSliceList()
	require.NoError(t, list.AssignValue(infinitelist.From(0), []string{"f", "g", "h"}))

	clone := list.CloneDeep(slices.Clone[[]string])
	value, err := clone.Get(5)
	require.NoError(t, err)

	value[0] = "z"

	original, err := list.Get(5)
	require.NoError(t, err)
	assert.Equal(t, "f", original[0])
}

func TestDirectionalBounds(t *testing.T) {
	t.Parallel()

	left := infinitelist.NewLeft(none)
	_, err := left.Get(1)
	require.ErrorIs(t, err, infinitelist.ErrOutOfBounds)

	require.NoError(t, left.Set(-1, "a"))
	assert.Equal(t, "a", get(t, left, -1))

	right := infinitelist.NewRight(none)
	_, err = right.Get(-1)
	require.ErrorIs(t, err, infinitelist.ErrOutOfBounds)

	require.ErrorIs(t, right.Set(-1, "a"), infinitelist.ErrOutOfBounds)
	require.ErrorIs(t, right.SetAllLeft(-1, "a"), infinitelist.ErrOutOfBounds)
	require.ErrorIs(t, left.SetAllRight(1, "a"), infinitelist.ErrOutOfBounds)
	require.ErrorIs(t, left.SetAllRange("a", -2, 2), infinitelist.ErrOutOfBounds)
	require.ErrorIs(t, left.SpliceLeft(1, infinitelist.NewLeft("a")), infinitelist.ErrOutOfBounds)
	require.ErrorIs(t, right.SpliceRight(-1, infinitelist.NewRight("a")), infinitelist.ErrOutOfBounds)

	_, err = right.LeftOf(-1)
	require.ErrorIs(t, err, infinitelist.ErrOutOfBounds)
}

func TestSplicePrunesOutsideDomain(t *testing.T) {
	t.Parallel()

	left := infinitelist.NewLeft("l")
	require.NoError(t, left.Set(-10, "x"))
	require.NoError(t, left.Set(-1, "y"))

	right := infinitelist.NewRight("a")
	require.NoError(t, right.SpliceLeft(3, left))

	assert.Equal(t, 1, right.Len())
	assert.Equal(t, "y", get(t, right, 2))
	assert.Equal(t, "a", get(t, right, 4))

	for index := range right.Overrides() {
		assert.GreaterOrEqual(t, index, 0)
	}

	source := infinitelist.NewRight("r")
	require.NoError(t, source.Set(1, "x"))
	require.NoError(t, source.Set(10, "y"))

	target := infinitelist.NewLeft("a")
	require.NoError(t, target.SpliceRight(-3, source))

	assert.Equal(t, 1, target.Len())
	assert.Equal(t, "x", get(t, target, -2))
	assert.Equal(t, "a", get(t, target, -4))
	assert.NotContains(t, target.String(), "=y")
}

func TestWideBoundedReadIsRejected(t *testing.T) {
	t.Parallel()

	list := infinitelist.New("a")

	for _, span := range []infinitelist.Span{
		infinitelist.Between(math.MinInt, math.MaxInt),
		infinitelist.Between(-(1 << 62), 1<<62),
		infinitelist.Between(math.MaxInt, math.MinInt).Step(-1),
		infinitelist.Between(0, infinitelist.MaxValues+1),
	} {
		_, err := list.Values(span)
		require.ErrorIs(t, err, infinitelist.ErrDomain, span.String())
	}

	stepped, err := list.Values(infinitelist.Between(math.MinInt, math.MaxInt).Step(1 << 62))
	require.NoError(t, err)
	assert.Equal(t, repeat("a", 4), stepped)

	_, err = infinitelist.NewRight("a").LeftOf(1 << 62)
	require.ErrorIs(t, err, infinitelist.ErrDomain)

	_, err = infinitelist.NewLeft("a").RightOf(math.MinInt)
	require.ErrorIs(t, err, infinitelist.ErrDomain)
}

func TestBoundedReadOutsideDomain(t *testing.T) {
	t.Parallel()

	_, err := infinitelist.NewLeft(none).Values(infinitelist.Between(-2, 2))
	require.ErrorIs(t, err, infinitelist.ErrOutOfBounds)
	assert.Contains(t, err.Error(), "left")

	_, err = infinitelist.NewRight(none).Values(infinitelist.Between(-2, 2))
	require.ErrorIs(t, err, infinitelist.ErrOutOfBounds)
	assert.Contains(t, err.Error(), "right")
}

func TestIterateRightList(t *testing.T) {
	t.Parallel()

	list := infinitelist.NewRight(none)
	require.NoError(t, list.Set(0, "a"))
	require.NoError(t, list.Set(1, "b"))
	require.NoError(t, list.Set(2, "c"))

	var actual []string

	for index, value := range list.Ascend(0) {
		if index == 5 {
			break
		}

		actual = append(actual, value)
	}

	assert.Equal(t, []string{"a", "b", "c", none, none}, actual)

	var down []int
	for index := range list.Descend(2) {
		down = append(down, index)
	}

	assert.Equal(t, []int{2, 1, 0}, down)
}

func TestAscendLeftListStopsAtZero(t *testing.T) {
	t.Parallel()

	var indices []int
	for index := range infinitelist.NewLeft("a").Ascend(-2) {
		indices = append(indices, index)
	}

	assert.Equal(t, []int{-2, -1, 0}, indices)
}

func TestRightThenLeft(t *testing.T) {
	t.Parallel()

	list := infinitelist.New("a")
	assign(t, list, infinitelist.From(2), "b")
	assign(t, list, infinitelist.To(5), "c")

	assert.Equal(t, concat(repeat("c", 12), repeat("b", 2)), values(t, list, -7, 7))
}

func TestUnboundedScalarOverwritesOverrides(t *testing.T) {
	t.Parallel()

	left := infinitelist.New("a")
	require.NoError(t, left.Set(-5, "b"))
	assign(t, left, infinitelist.To(0), "c")
	assert.Equal(t, "c", get(t, left, -5))

	right := infinitelist.New("a")
	require.NoError(t, right.Set(5, "b"))
	assign(t, right, infinitelist.From(0), "c")
	assert.Equal(t, "c", get(t, right, 5))
}

func TestBoundedScalar(t *testing.T) {
	t.Parallel()

	list := infinitelist.New(0)
	require.NoError(t, list.AssignValue(infinitelist.Between(0, 5), 1))

	actual, err := list.Values(infinitelist.Between(0, 10))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 1, 1, 0, 0, 0, 0, 0}, actual)
}

func TestBoundedScalarPrunesOverrides(t *testing.T) {
	t.Parallel()

	list := infinitelist.New("a")
	require.NoError(t, list.Set(2, "x"))
	require.NoError(t, list.Set(7, "y"))
	assign(t, list, infinitelist.Between(0, 5), "b")

	assert.Equal(t, 1, list.Len())
	assert.Equal(t, []string{"b", "b", "b", "b", "b", "a", "a", "y"}, values(t, list, 0, 8))
}

func TestNonUnitStepAssignment(t *testing.T) {
	t.Parallel()

	list := infinitelist.New(1)

	err := list.AssignValue(infinitelist.Between(0, 10).Step(2), 0)
	require.ErrorIs(t, err, infinitelist.ErrUnsupportedStep)

	err = list.AssignSlice(infinitelist.Between(0, 4).Step(-1), []int{1, 2})
	require.ErrorIs(t, err, infinitelist.ErrUnsupportedStep)

	_, err = list.Sub(infinitelist.From(0).Step(2))
	require.ErrorIs(t, err, infinitelist.ErrUnsupportedStep)

	err = list.AssignValue(infinitelist.Between(0, 3).Step(1), 5)
	require.NoError(t, err)
}

func TestSteppedRead(t *testing.T) {
	t.Parallel()

	list := infinitelist.New(none)
	assignSlice(t, list, infinitelist.Between(0, 5), "a", "b", "c", "d", "e")

	forward, err := list.Values(infinitelist.Between(0, 5).Step(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "e"}, forward)

	backward, err := list.Values(infinitelist.Between(4, -1).Step(-2))
	require.NoError(t, err)
	assert.Equal(t, []string{"e", "c", "a"}, backward)

	empty, err := list.Values(infinitelist.Between(5, 0))
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestSpanShapeMismatch(t *testing.T) {
	t.Parallel()

	list := infinitelist.New(none)

	_, err := list.Values(infinitelist.All())
	require.ErrorIs(t, err, infinitelist.ErrDomain)

	_, err = list.Sub(infinitelist.Between(0, 3))
	require.ErrorIs(t, err, infinitelist.ErrDomain)

	err = list.AssignSlice(infinitelist.From(0), []string{"a"})
	require.ErrorIs(t, err, infinitelist.ErrDomain)
}

func TestBoundedAssignmentFromList(t *testing.T) {
	t.Parallel()

	source := infinitelist.NewRight("z")
	require.NoError(t, source.Set(0, "a"))
	require.NoError(t, source.Set(1, "b"))

	list := infinitelist.New(none)
	require.NoError(t, list.AssignList(infinitelist.Between(3, 6), source))
	assert.Equal(t, []string{none, "a", "b", "z", none}, values(t, list, 2, 7))

	left := infinitelist.NewLeft("q")
	require.NoError(t, list.AssignList(infinitelist.Between(10, 13), left))
	assert.Equal(t, []string{"q", none, none}, values(t, list, 10, 13))
}

func TestShortSequenceAssignment(t *testing.T) {
	t.Parallel()

	list := infinitelist.New(none)
	assignSlice(t, list, infinitelist.Between(0, 5), "a", "b")
	assignSlice(t, list, infinitelist.Between(10, 12), "c", "d", "e")

	assert.Equal(t, []string{"a", "b", none}, values(t, list, 0, 3))
	assert.Equal(t, []string{"c", "d", none}, values(t, list, 10, 13))
}

func TestOverwriteOnlyFillValue(t *testing.T) {
	t.Parallel()

	right := infinitelist.New("a")
	assign(t, right, infinitelist.From(0), "b")
	assert.Equal(t, []string{"a", "a", "b", "b"}, values(t, right, -2, 2))

	left := infinitelist.New("a")
	assign(t, left, infinitelist.To(1), "b")
	assert.Equal(t, []string{"b", "b", "b", "a"}, values(t, left, -2, 2))
}

func TestEqualityIsExtensional(t *testing.T) {
	t.Parallel()

	sliced := infinitelist.New("a")
	assign(t, sliced, infinitelist.From(5), "b")

	manual := infinitelist.New("b")
	require.NoError(t, manual.SetAllLeft(4, "a"))

	requireEqual(t, sliced, manual)

	overridden := infinitelist.New("a")
	require.NoError(t, overridden.Set(3, "b"))

	ranged := infinitelist.New("a")
	assign(t, ranged, infinitelist.Between(3, 4), "b")

	requireEqual(t, overridden, ranged)

	masked := infinitelist.New("a")
	assign(t, masked, infinitelist.Between(3, 6), "b")
	require.NoError(t, masked.Set(4, "a"))

	pointwise := infinitelist.New("a")
	require.NoError(t, pointwise.Set(3, "b"))
	require.NoError(t, pointwise.Set(5, "b"))

	requireEqual(t, masked, pointwise)

	require.NoError(t, pointwise.Set(-40, "c"))

	equal, err := masked.Equal(pointwise)
	require.NoError(t, err)
	assert.False(t, equal)
}

func TestEqualityIgnoresOutsideDomain(t *testing.T) {
	t.Parallel()

	first := infinitelist.NewRight("a")
	first.ReplaceWith(infinitelist.New("z"))
	assign(t, first, infinitelist.From(0), "a")

	requireEqual(t, infinitelist.NewRight("a"), first)
}

func TestEqualityDomainMismatch(t *testing.T) {
	t.Parallel()

	_, err := infinitelist.New("a").Equal(infinitelist.NewLeft("a"))
	require.ErrorIs(t, err, infinitelist.ErrDomain)
}

func TestCrossDirectionExtraction(t *testing.T) {
	t.Parallel()

	left := infinitelist.NewLeft("x")
	require.NoError(t, left.Set(-2, "a"))
	require.NoError(t, left.Set(-1, "b"))
	require.NoError(t, left.Set(0, "c"))

	fromLeft, err := left.RightOf(-2)
	require.NoError(t, err)
	assert.Equal(t, infinitelist.RightBounded, fromLeft.Domain())

	expectedRight := infinitelist.NewRight("c")
	require.NoError(t, expectedRight.Set(0, "a"))
	require.NoError(t, expectedRight.Set(1, "b"))
	requireEqual(t, expectedRight, fromLeft)

	right := infinitelist.NewRight("x")
	require.NoError(t, right.Set(0, "a"))
	require.NoError(t, right.Set(1, "b"))
	require.NoError(t, right.Set(2, "c"))

	fromRight, err := right.LeftOf(2)
	require.NoError(t, err)
	assert.Equal(t, infinitelist.LeftBounded, fromRight.Domain())

	expectedLeft := infinitelist.NewLeft("a")
	require.NoError(t, expectedLeft.Set(-1, "b"))
	require.NoError(t, expectedLeft.Set(0, "c"))
	requireEqual(t, expectedLeft, fromRight)
}

func TestOverridesBackgroundAndString(t *testing.T) {
	t.Parallel()

	list := infinitelist.NewRight("x")
	require.NoError(t, list.Set(0, "a"))
	require.NoError(t, list.Set(2, "c"))
	assign(t, list, infinitelist.From(5), "y")

	var keys []int
	for index := range list.Overrides() {
		keys = append(keys, index)
	}

	assert.Equal(t, []int{0, 2}, keys)
	assert.Equal(t, 2, list.Len())
	assert.Equal(t, 2, list.Regions())
	assert.Equal(t, "right{overrides: 0=a 2=c, background: 0=x 5=y}", list.String())
}

func TestParseDomain(t *testing.T) {
	t.Parallel()

	for _, domain := range []infinitelist.Domain{
		infinitelist.Unbounded, infinitelist.LeftBounded, infinitelist.RightBounded,
	} {
		parsed, err := infinitelist.ParseDomain(domain.String())
		require.NoError(t, err)
		assert.Equal(t, domain, parsed)
	}

	_, err := infinitelist.ParseDomain("sideways")
	require.ErrorIs(t, err, infinitelist.ErrDomain)
	assert.Panics(t, func() { infinitelist.NewFunc(infinitelist.Domain(9), 0, func(a, b int) bool { return a == b }) })
}
