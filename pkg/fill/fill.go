// Package fill provides a piecewise-constant function over all ints.
//
// Ranges stores an ordered list of breakpoints with one value per breakpoint.
// The value of breakpoint k applies from bounds[k] up to (but excluding)
// bounds[k+1]; the last value extends to +inf. The first breakpoint is an
// anchor: every index to its left resolves to the first value as well, so a
// Ranges is defined on every int.
//
// Every mutating operation leaves the breakpoints strictly increasing and
// merges neighbours holding equal values, which makes the representation
// canonical up to the position of the anchor.
package fill

import (
	"errors"
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"
)

// ErrOverlap is returned by Concat when the right operand starts at or before
// the last breakpoint of the left operand.
var ErrOverlap = errors.New("fill ranges overlap")

// Ranges is a piecewise-constant mapping from int to V.
type Ranges[V any] struct {
	bounds []int
	values []V
	eq     func(a, b V) bool
}

// New creates a uniform mapping that resolves every index to value.
// The eq function decides when two neighbouring regions are merged and must
// not be nil.
func New[V any](value V, eq func(a, b V) bool) *Ranges[V] {
	if eq == nil {
		panic("fill: nil equality function")
	}

	return &Ranges[V]{
		bounds: []int{0},
		values: []V{value},
		eq:     eq,
	}
}

// At returns the value in effect at index.
func (ranges *Ranges[V]) At(index int) V {
	pos := ranges.upperBound(index)
	if pos == 0 {
		return ranges.values[0]
	}

	return ranges.values[pos-1]
}

// Reset makes the mapping uniform again.
func (ranges *Ranges[V]) Reset(value V) {
	ranges.bounds = []int{0}
	ranges.values = []V{value}
}

// SetLeft resolves every index <= index to value. Indices to the right keep
// their previous values.
func (ranges *Ranges[V]) SetLeft(index int, value V) {
	if index == math.MaxInt {
		ranges.Reset(value)

		return
	}

	next := ranges.At(index + 1)
	pos := ranges.upperBound(index + 1)

	bounds := make([]int, 0, len(ranges.bounds)-pos+2)
	bounds = append(bounds, index, index+1)
	bounds = append(bounds, ranges.bounds[pos:]...)

	values := make([]V, 0, len(bounds))
	values = append(values, value, next)
	values = append(values, ranges.values[pos:]...)

	ranges.bounds, ranges.values = bounds, values
	ranges.normalize()
}

// SetRight resolves every index >= index to value. Indices to the left keep
// their previous values.
func (ranges *Ranges[V]) SetRight(index int, value V) {
	if index == math.MinInt {
		ranges.Reset(value)

		return
	}

	pos := ranges.lowerBound(index)

	var bounds []int

	var values []V

	if pos == 0 {
		bounds = []int{index - 1, index}
		values = []V{ranges.values[0], value}
	} else {
		bounds = append(slices.Clip(ranges.bounds[:pos]), index)
		values = append(slices.Clip(ranges.values[:pos]), value)
	}

	ranges.bounds, ranges.values = bounds, values
	ranges.normalize()
}

// SetRange resolves every index in [start, stop) to value. An empty or
// inverted interval is a no-op.
func (ranges *Ranges[V]) SetRange(value V, start, stop int) {
	if start >= stop {
		return
	}

	after := ranges.At(stop)
	left := ranges.lowerBound(start)
	right := ranges.upperBound(stop)

	bounds := make([]int, 0, left+3+len(ranges.bounds)-right)
	values := make([]V, 0, cap(bounds))

	switch {
	case left > 0:
		bounds = append(bounds, ranges.bounds[:left]...)
		values = append(values, ranges.values[:left]...)
	case start != math.MinInt:
		bounds = append(bounds, start-1)
		values = append(values, ranges.values[0])
	}

	bounds = append(bounds, start, stop)
	values = append(values, value, after)
	bounds = append(bounds, ranges.bounds[right:]...)
	values = append(values, ranges.values[right:]...)

	ranges.bounds, ranges.values = bounds, values
	ranges.normalize()
}

// SplitLeft returns a new mapping that agrees with ranges on every index
// <= index and continues the value at index to the right of it. Unless
// keepOffsets is set, the result is shifted so that index lands on 0.
func (ranges *Ranges[V]) SplitLeft(index int, keepOffsets bool) *Ranges[V] {
	pos := ranges.upperBound(index)

	result := &Ranges[V]{eq: ranges.eq}

	if pos == 0 {
		result.bounds = []int{index}
		result.values = []V{ranges.values[0]}
	} else {
		result.bounds = slices.Clone(ranges.bounds[:pos])
		result.values = slices.Clone(ranges.values[:pos])
	}

	if !keepOffsets {
		result.rebase(index)
	}

	return result
}

// SplitRight returns a new mapping that agrees with ranges on every index
// >= index and continues the value at index to the left of it. Unless
// keepOffsets is set, the result is shifted so that index lands on 0.
func (ranges *Ranges[V]) SplitRight(index int, keepOffsets bool) *Ranges[V] {
	pos := ranges.upperBound(index)

	result := &Ranges[V]{
		bounds: make([]int, 0, len(ranges.bounds)-pos+1),
		values: make([]V, 0, len(ranges.bounds)-pos+1),
		eq:     ranges.eq,
	}

	result.bounds = append(result.bounds, index)
	result.values = append(result.values, ranges.At(index))
	result.bounds = append(result.bounds, ranges.bounds[pos:]...)
	result.values = append(result.values, ranges.values[pos:]...)

	if !keepOffsets {
		result.rebase(index)
	}

	return result
}

// Shift moves every breakpoint by delta. Breakpoints that would overflow are
// clamped to math.MinInt or math.MaxInt.
func (ranges *Ranges[V]) Shift(delta int) {
	if delta == 0 {
		return
	}

	for idx, bound := range ranges.bounds {
		ranges.bounds[idx] = saturatingAdd(bound, delta)
	}

	ranges.normalize()
}

// rebase moves origin onto 0, clamping like Shift.
func (ranges *Ranges[V]) rebase(origin int) {
	for idx, bound := range ranges.bounds {
		ranges.bounds[idx] = saturatingSub(bound, origin)
	}

	ranges.normalize()
}

// Concat appends other to the right of ranges: indices before the first
// breakpoint of other keep the values of ranges, the rest take the values of
// other. The first breakpoint of other must lie strictly to the right of the
// last breakpoint of ranges. For any k > math.MinInt,
// SplitLeft(k-1, true) concatenated with SplitRight(k, true) reproduces the
// original mapping.
func (ranges *Ranges[V]) Concat(other *Ranges[V]) error {
	last := ranges.bounds[len(ranges.bounds)-1]
	first := other.bounds[0]

	if first <= last {
		return fmt.Errorf("%w: right side starts at %d, left side ends at %d", ErrOverlap, first, last)
	}

	ranges.bounds = append(ranges.bounds, other.bounds...)
	ranges.values = append(ranges.values, other.values...)
	ranges.normalize()

	return nil
}

// Equal reports whether both mappings resolve every index to equal values.
func (ranges *Ranges[V]) Equal(other *Ranges[V]) bool {
	if len(ranges.bounds) != len(other.bounds) {
		return false
	}

	// The anchor position carries no information.
	if !slices.Equal(ranges.bounds[1:], other.bounds[1:]) {
		return false
	}

	for idx, value := range ranges.values {
		if !ranges.eq(value, other.values[idx]) {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of the breakpoints. Values are assigned,
// so reference-typed values stay shared.
func (ranges *Ranges[V]) Clone() *Ranges[V] {
	return &Ranges[V]{
		bounds: slices.Clone(ranges.bounds),
		values: slices.Clone(ranges.values),
		eq:     ranges.eq,
	}
}

// CloneDeep returns an independent copy and passes every value through
// copyValue. A nil copyValue is equivalent to Clone.
func (ranges *Ranges[V]) CloneDeep(copyValue func(V) V) *Ranges[V] {
	clone := ranges.Clone()

	if copyValue != nil {
		for idx, value := range clone.values {
			clone.values[idx] = copyValue(value)
		}
	}

	return clone
}

// Len returns the number of breakpoints.
func (ranges *Ranges[V]) Len() int {
	return len(ranges.bounds)
}

// Bounds returns a copy of the breakpoints, in ascending order.
func (ranges *Ranges[V]) Bounds() []int {
	return slices.Clone(ranges.bounds)
}

// Segments yields every breakpoint with the value starting there.
func (ranges *Ranges[V]) Segments() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for idx, bound := range ranges.bounds {
			if !yield(bound, ranges.values[idx]) {
				return
			}
		}
	}
}

// Dump writes the breakpoints to a string, one "bound value" pair per line.
func (ranges *Ranges[V]) Dump() string {
	var buffer strings.Builder

	for bound, value := range ranges.Segments() {
		fmt.Fprintf(&buffer, "%d %v\n", bound, value)
	}

	return buffer.String()
}

// Validate checks the internal integrity and panics on the first violation.
// The checks are as follows:
//
// 1. There is at least one breakpoint and exactly one value per breakpoint.
//
// 2. Breakpoints strictly increase.
//
// 3. Neighbouring values differ.
func (ranges *Ranges[V]) Validate() {
	if len(ranges.bounds) == 0 {
		panic("fill ranges must have at least one breakpoint")
	}

	if len(ranges.bounds) != len(ranges.values) {
		panic(fmt.Sprintf("%d breakpoints but %d values", len(ranges.bounds), len(ranges.values)))
	}

	for idx := 1; idx < len(ranges.bounds); idx++ {
		if ranges.bounds[idx] <= ranges.bounds[idx-1] {
			panic(fmt.Sprintf("breakpoints are not increasing: %d after %d", ranges.bounds[idx], ranges.bounds[idx-1]))
		}

		if ranges.eq(ranges.values[idx], ranges.values[idx-1]) {
			panic(fmt.Sprintf("unmerged breakpoint: %d", ranges.bounds[idx]))
		}
	}
}

// normalize drops collapsed breakpoints, keeping the rightmost value, and
// merges neighbours holding equal values.
func (ranges *Ranges[V]) normalize() {
	bounds := ranges.bounds[:0]
	values := ranges.values[:0]

	for idx, bound := range ranges.bounds {
		value := ranges.values[idx]

		if len(bounds) > 0 && bounds[len(bounds)-1] >= bound {
			// Only clamped breakpoints collide; the later one wins.
			values[len(values)-1] = value

			if len(values) > 1 && ranges.eq(values[len(values)-2], value) {
				bounds = bounds[:len(bounds)-1]
				values = values[:len(values)-1]
			}

			continue
		}

		if len(values) > 0 && ranges.eq(values[len(values)-1], value) {
			continue
		}

		bounds = append(bounds, bound)
		values = append(values, value)
	}

	clear(ranges.values[len(values):])

	ranges.bounds, ranges.values = bounds, values
}

// upperBound returns the number of breakpoints <= index.
func (ranges *Ranges[V]) upperBound(index int) int {
	pos, found := slices.BinarySearch(ranges.bounds, index)
	if found {
		return pos + 1
	}

	return pos
}

// lowerBound returns the number of breakpoints < index.
func (ranges *Ranges[V]) lowerBound(index int) int {
	pos, _ := slices.BinarySearch(ranges.bounds, index)

	return pos
}

func saturatingAdd(a, b int) int {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return math.MaxInt
	case b < 0 && a < math.MinInt-b:
		return math.MinInt
	default:
		return a + b
	}
}

func saturatingSub(a, b int) int {
	switch {
	case b < 0 && a > math.MaxInt+b:
		return math.MaxInt
	case b > 0 && a < math.MinInt+b:
		return math.MinInt
	default:
		return a - b
	}
}
