// Package infinitelist implements a sequence indexed by every int.
//
// A List layers two structures. Explicit values live in a sparse overlay
// (an ordered map from index to value); every other index resolves to a
// piecewise-constant background. Point writes go to the overlay, bulk writes
// reshape the background and prune the overlay entries they cover, so both
// layers stay consistent and memory grows with the number of distinct regions
// rather than with the covered span.
//
// Lists come in three domains: unbounded, left (indices <= 0) and right
// (indices >= 0). Directional lists are what one half of another list reads
// as, and what splices into one half of another list.
package infinitelist

import (
	"fmt"
	"math"
	"slices"

	"github.com/Sumatoshi-tech/infinitelist/pkg/fill"
	"github.com/Sumatoshi-tech/infinitelist/pkg/rbtree"
)

// List is a bi-infinite (or one-side infinite) indexable sequence.
type List[V any] struct {
	domain  Domain
	overlay *rbtree.Tree[V]
	fills   *fill.Ranges[V]
	eq      func(a, b V) bool
}

// New creates an unbounded list resolving every index to fill.
func New[V comparable](fill V) *List[V] {
	return NewFunc(Unbounded, fill, equal[V])
}

// NewLeft creates a list accepting indices <= 0.
func NewLeft[V comparable](fill V) *List[V] {
	return NewFunc(LeftBounded, fill, equal[V])
}

// NewRight creates a list accepting indices >= 0.
func NewRight[V comparable](fill V) *List[V] {
	return NewFunc(RightBounded, fill, equal[V])
}

// NewFunc creates a list over any value type. The eq function defines value
// equality, used to merge background regions and to compare lists.
func NewFunc[V any](domain Domain, fillValue V, eq func(a, b V) bool) *List[V] {
	if !domain.Valid() {
		panic(fmt.Sprintf("infinitelist: invalid domain %d", int(domain)))
	}

	return &List[V]{
		domain:  domain,
		overlay: rbtree.New[V](),
		fills:   fill.New(fillValue, eq),
		eq:      eq,
	}
}

func equal[V comparable](a, b V) bool {
	return a == b
}

// Domain returns the index domain of the list.
func (list *List[V]) Domain() Domain {
	return list.domain
}

// Get returns the value at index: the explicit value if one was set,
// otherwise the background.
func (list *List[V]) Get(index int) (V, error) {
	err := list.domain.check(index)
	if err != nil {
		var zero V

		return zero, err
	}

	return list.value(index), nil
}

func (list *List[V]) value(index int) V {
	value, found := list.overlay.Get(index)
	if found {
		return value
	}

	return list.fills.At(index)
}

// Set stores value at index, overriding the background.
func (list *List[V]) Set(index int, value V) error {
	err := list.domain.check(index)
	if err != nil {
		return err
	}

	list.overlay.Put(index, value)

	return nil
}

// SetAllLeft resolves every index <= index to value.
func (list *List[V]) SetAllLeft(index int, value V) error {
	err := list.domain.check(index)
	if err != nil {
		return err
	}

	list.overlay.DeleteRange(math.MinInt, index)
	list.fills.SetLeft(index, value)

	return nil
}

// SetAllRight resolves every index >= index to value.
func (list *List[V]) SetAllRight(index int, value V) error {
	err := list.domain.check(index)
	if err != nil {
		return err
	}

	list.overlay.DeleteRange(index, math.MaxInt)
	list.fills.SetRight(index, value)

	return nil
}

// SetAllRange resolves every index in [start, stop) to value. An empty range
// is a no-op.
func (list *List[V]) SetAllRange(value V, start, stop int) error {
	if start >= stop {
		return nil
	}

	err := list.domain.checkRange(start, stop)
	if err != nil {
		return err
	}

	list.overlay.DeleteRange(start, stop-1)
	list.fills.SetRange(value, start, stop)

	return nil
}

// SetAll resolves every index to value and drops all explicit values.
func (list *List[V]) SetAll(value V) {
	list.overlay.Erase()
	list.fills.Reset(value)
}

// SpliceLeft installs src, a left list, so that its index 0 lands on index.
// Indices > index are unaffected.
func (list *List[V]) SpliceLeft(index int, src *List[V]) error {
	err := list.domain.check(index)
	if err != nil {
		return err
	}

	if src.domain != LeftBounded {
		return fmt.Errorf("%w: cannot splice a %s list into the left side", ErrDomain, src.domain)
	}

	if src == list {
		src = src.Clone()
	}

	list.overlay.DeleteRange(math.MinInt, index)

	for key, value := range src.overlay.DescendFrom(0) {
		shifted, ok := shiftIndex(key, index)
		if !ok {
			break
		}

		list.overlay.Put(shifted, value)
	}

	list.pruneOutside()

	fills := src.fills.SplitLeft(0, true)
	fills.Shift(index)

	if index < math.MaxInt {
		err = fills.Concat(list.fills.SplitRight(index+1, true))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrDomain, err)
		}
	}

	list.fills = fills

	return nil
}

// SpliceRight installs src, a right list, so that its index 0 lands on index.
// Indices < index are unaffected.
func (list *List[V]) SpliceRight(index int, src *List[V]) error {
	err := list.domain.check(index)
	if err != nil {
		return err
	}

	if src.domain != RightBounded {
		return fmt.Errorf("%w: cannot splice a %s list into the right side", ErrDomain, src.domain)
	}

	if src == list {
		src = src.Clone()
	}

	list.overlay.DeleteRange(index, math.MaxInt)

	for key, value := range src.overlay.AscendFrom(0) {
		shifted, ok := shiftIndex(key, index)
		if !ok {
			break
		}

		list.overlay.Put(shifted, value)
	}

	list.pruneOutside()

	right := src.fills.SplitRight(0, true)
	right.Shift(index)

	if index == math.MinInt {
		list.fills = right

		return nil
	}

	fills := list.fills.SplitLeft(index-1, true)

	err = fills.Concat(right)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrDomain, err)
	}

	list.fills = fills

	return nil
}

// ReplaceWith makes the list a structural copy of other. Explicit values
// outside the list's own domain are dropped.
func (list *List[V]) ReplaceWith(other *List[V]) {
	list.overlay = other.overlay.CloneShallow()
	list.fills = other.fills.Clone()

	list.pruneOutside()
}

// pruneOutside drops explicit values the list's domain cannot reach.
func (list *List[V]) pruneOutside() {
	lo, hi := list.domain.bounds()

	if lo > math.MinInt {
		list.overlay.DeleteRange(math.MinInt, lo-1)
	}

	if hi < math.MaxInt {
		list.overlay.DeleteRange(hi+1, math.MaxInt)
	}
}

// LeftOf returns a left list holding every index <= index, re-anchored so
// that index becomes 0.
func (list *List[V]) LeftOf(index int) (*List[V], error) {
	err := list.domain.check(index)
	if err != nil {
		return nil, err
	}

	if list.domain == RightBounded {
		return list.crossLeftOf(index)
	}

	result := &List[V]{
		domain:  LeftBounded,
		overlay: rbtree.New[V](),
		fills:   list.fills.SplitLeft(index, false),
		eq:      list.eq,
	}

	for key, value := range list.overlay.DescendFrom(index) {
		shifted, ok := offset(key, index)
		if !ok {
			break
		}

		result.overlay.Put(shifted, value)
	}

	return result, nil
}

// RightOf returns a right list holding every index >= index, re-anchored so
// that index becomes 0.
func (list *List[V]) RightOf(index int) (*List[V], error) {
	err := list.domain.check(index)
	if err != nil {
		return nil, err
	}

	if list.domain == LeftBounded {
		return list.crossRightOf(index)
	}

	result := &List[V]{
		domain:  RightBounded,
		overlay: rbtree.New[V](),
		fills:   list.fills.SplitRight(index, false),
		eq:      list.eq,
	}

	for key, value := range list.overlay.AscendFrom(index) {
		shifted, ok := offset(key, index)
		if !ok {
			break
		}

		result.overlay.Put(shifted, value)
	}

	return result, nil
}

// crossLeftOf extracts [0, index] of a right list. Indices below 0 have no
// source values and continue the value at 0.
func (list *List[V]) crossLeftOf(index int) (*List[V], error) {
	if index == math.MaxInt {
		return nil, fmt.Errorf("%w: cannot extract [0, %d] of a right list", ErrOutOfBounds, index)
	}

	values, err := list.Values(Between(0, index+1))
	if err != nil {
		return nil, err
	}

	result := NewFunc(LeftBounded, values[0], list.eq)

	err = result.AssignSlice(Between(-index, 1), values)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// crossRightOf extracts [index, 0] of a left list. Indices above 0 have no
// source values and continue the value at 0.
func (list *List[V]) crossRightOf(index int) (*List[V], error) {
	values, err := list.Values(Between(index, 1))
	if err != nil {
		return nil, err
	}

	result := NewFunc(RightBounded, values[len(values)-1], list.eq)

	err = result.AssignSlice(Between(0, len(values)), values)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Equal reports whether both lists resolve every index of their domain to
// equal values, regardless of how those values are split between the overlay
// and the background. Lists of different domains cannot be compared.
func (list *List[V]) Equal(other *List[V]) (bool, error) {
	if list.domain != other.domain {
		return false, fmt.Errorf("%w: cannot compare a %s list with a %s list", ErrDomain, list.domain, other.domain)
	}

	for _, index := range list.samplePoints(other) {
		if !list.eq(list.value(index), other.value(index)) {
			return false, nil
		}
	}

	return true, nil
}

// samplePoints returns one index per constant run of both lists: every
// breakpoint, every explicit index and its successor, and one index left of
// all of them. Both lists are constant between consecutive points.
func (list *List[V]) samplePoints(other *List[V]) []int {
	points := append(list.fills.Bounds(), other.fills.Bounds()...)

	for _, overlay := range []*rbtree.Tree[V]{list.overlay, other.overlay} {
		for key := range overlay.Ascend() {
			points = append(points, key)

			if key < math.MaxInt {
				points = append(points, key+1)
			}
		}
	}

	slices.Sort(points)

	if points[0] > math.MinInt {
		points = append(points, points[0]-1)
	}

	if list.domain != Unbounded {
		points = append(points, 0)
	}

	points = slices.DeleteFunc(points, func(index int) bool {
		return !list.domain.Contains(index)
	})

	slices.Sort(points)

	return slices.Compact(points)
}

// Clone returns a structural copy: the overlay and the background are
// duplicated, the values themselves are shared.
func (list *List[V]) Clone() *List[V] {
	return &List[V]{
		domain:  list.domain,
		overlay: list.overlay.CloneShallow(),
		fills:   list.fills.Clone(),
		eq:      list.eq,
	}
}

// CloneDeep returns a full copy: every explicit and background value is
// passed through copyValue.
func (list *List[V]) CloneDeep(copyValue func(V) V) *List[V] {
	return &List[V]{
		domain:  list.domain,
		overlay: list.overlay.CloneDeep(copyValue),
		fills:   list.fills.CloneDeep(copyValue),
		eq:      list.eq,
	}
}

// shiftIndex returns index+delta and false if the sum overflows.
func shiftIndex(index, delta int) (int, bool) {
	if (delta > 0 && index > math.MaxInt-delta) || (delta < 0 && index < math.MinInt-delta) {
		return 0, false
	}

	return index + delta, true
}

// offset returns index-origin and false if the difference overflows.
func offset(index, origin int) (int, bool) {
	diff := index - origin
	if (index >= 0) != (origin >= 0) && (diff >= 0) != (index >= 0) {
		return 0, false
	}

	return diff, true
}
