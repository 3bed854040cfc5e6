package infinitelist

import (
	"fmt"
	"iter"
	"math"
	"slices"
)

// MaxValues is the largest number of indices a single read may return.
const MaxValues = 1 << 26

type spanKind int

const (
	spanIndex spanKind = iota
	spanAll
	spanTo
	spanFrom
	spanBetween
)

// Span selects the indices a read or an assignment applies to: a single
// index, the whole list, a left-unbounded span [:stop), a right-unbounded
// span [start:) or a bounded span [start:stop).
type Span struct {
	kind  spanKind
	start int
	stop  int
	step  int
}

// At selects a single index.
func At(index int) Span {
	return Span{kind: spanIndex, start: index}
}

// All selects every index.
func All() Span {
	return Span{kind: spanAll}
}

// To selects every index < stop.
func To(stop int) Span {
	return Span{kind: spanTo, stop: stop}
}

// From selects every index >= start.
func From(start int) Span {
	return Span{kind: spanFrom, start: start}
}

// Between selects every index in [start, stop).
func Between(start, stop int) Span {
	return Span{kind: spanBetween, start: start, stop: stop}
}

// Step returns a copy of the span walking with the given step. A zero step
// means the default step of 1.
func (span Span) Step(step int) Span {
	span.step = step

	return span
}

func (span Span) stepOrDefault() int {
	if span.step == 0 {
		return 1
	}

	return span.step
}

func (span Span) String() string {
	var text string

	switch span.kind {
	case spanIndex:
		return fmt.Sprintf("[%d]", span.start)
	case spanAll:
		text = "[:"
	case spanTo:
		text = fmt.Sprintf("[:%d", span.stop)
	case spanFrom:
		text = fmt.Sprintf("[%d:", span.start)
	case spanBetween:
		text = fmt.Sprintf("[%d:%d", span.start, span.stop)
	}

	if span.step != 0 {
		text += fmt.Sprintf(":%d", span.step)
	}

	return text + "]"
}

func (span Span) checkUnitStep() error {
	if span.stepOrDefault() != 1 {
		return fmt.Errorf("%w: %s", ErrUnsupportedStep, span)
	}

	return nil
}

// AssignValue writes value to every index of span.
func (list *List[V]) AssignValue(span Span, value V) error {
	err := span.checkUnitStep()
	if err != nil {
		return err
	}

	switch span.kind {
	case spanIndex:
		return list.Set(span.start, value)
	case spanAll:
		list.SetAll(value)

		return nil
	case spanTo:
		if span.stop == math.MinInt {
			return nil
		}

		return list.SetAllLeft(span.stop-1, value)
	case spanFrom:
		return list.SetAllRight(span.start, value)
	default:
		return list.SetAllRange(value, span.start, span.stop)
	}
}

// AssignList writes src into span. The whole list is replaced by a copy of
// src, a left-unbounded span takes a left list, a right-unbounded span takes
// a right list and a bounded span is filled element-wise from src[0],
// src[1], ... for as long as src has values.
func (list *List[V]) AssignList(span Span, src *List[V]) error {
	err := span.checkUnitStep()
	if err != nil {
		return err
	}

	switch span.kind {
	case spanIndex:
		return fmt.Errorf("%w: cannot assign a list to index %d", ErrDomain, span.start)
	case spanAll:
		list.ReplaceWith(src)

		return nil
	case spanTo:
		if span.stop == math.MinInt {
			return nil
		}

		return list.SpliceLeft(span.stop-1, src)
	case spanFrom:
		return list.SpliceRight(span.start, src)
	default:
		if src == list {
			src = src.Clone()
		}

		return list.AssignSeq(span, func(yield func(V) bool) {
			for _, value := range src.Ascend(0) {
				if !yield(value) {
					return
				}
			}
		})
	}
}

// AssignSeq writes the values of seq to [start, stop) of a bounded span, in
// order. Assignment stops at whichever of the span and seq ends first.
func (list *List[V]) AssignSeq(span Span, seq iter.Seq[V]) error {
	err := span.checkUnitStep()
	if err != nil {
		return err
	}

	if span.kind != spanBetween {
		return fmt.Errorf("%w: element-wise assignment needs a bounded span, got %s", ErrDomain, span)
	}

	err = list.domain.checkRange(span.start, span.stop)
	if err != nil {
		return err
	}

	if span.start >= span.stop {
		return nil
	}

	index := span.start

	for value := range seq {
		list.overlay.Put(index, value)

		if index == span.stop-1 {
			break
		}

		index++
	}

	return nil
}

// AssignSlice is AssignSeq over the elements of values.
func (list *List[V]) AssignSlice(span Span, values []V) error {
	return list.AssignSeq(span, slices.Values(values))
}

// Values reads a single index or a bounded span. Bounded spans may use any
// step; a negative step walks from start down to, but excluding, stop.
func (list *List[V]) Values(span Span) ([]V, error) {
	switch span.kind {
	case spanIndex:
		value, err := list.Get(span.start)
		if err != nil {
			return nil, err
		}

		return []V{value}, nil
	case spanBetween:
		return list.stepValues(span.start, span.stop, span.stepOrDefault())
	default:
		return nil, fmt.Errorf("%w: %s is unbounded, read it with Sub", ErrDomain, span)
	}
}

func (list *List[V]) stepValues(start, stop, step int) ([]V, error) {
	count := stepCount(start, stop, step)
	if count == 0 {
		return []V{}, nil
	}

	if count > MaxValues {
		return nil, fmt.Errorf("%w: [%d:%d:%d] holds %d indices, more than %d", ErrDomain, start, stop, step, count, MaxValues)
	}

	last := start + int(count-1)*step

	for _, index := range []int{start, last} {
		err := list.domain.check(index)
		if err != nil {
			return nil, err
		}
	}

	values := make([]V, 0, count)

	for idx := range int(count) {
		values = append(values, list.value(start+idx*step))
	}

	return values, nil
}

// stepCount returns the number of indices visited walking from start towards
// stop (exclusive) by step. Distances are taken in uint so that spans wider
// than math.MaxInt do not wrap.
func stepCount(start, stop, step int) uint {
	switch {
	case step > 0 && start < stop:
		return (uint(stop)-uint(start)-1)/uint(step) + 1
	case step < 0 && start > stop:
		return (uint(start)-uint(stop)-1)/(-uint(step)) + 1
	default:
		return 0
	}
}

// Sub reads an unbounded span as a list: All returns a structural copy,
// To(stop) the left list of indices < stop and From(start) the right list of
// indices >= start.
func (list *List[V]) Sub(span Span) (*List[V], error) {
	err := span.checkUnitStep()
	if err != nil {
		return nil, err
	}

	switch span.kind {
	case spanAll:
		return list.Clone(), nil
	case spanTo:
		if span.stop == math.MinInt {
			return nil, fmt.Errorf("%w: %s is empty", ErrDomain, span)
		}

		return list.LeftOf(span.stop - 1)
	case spanFrom:
		return list.RightOf(span.start)
	default:
		return nil, fmt.Errorf("%w: %s is bounded, read it with Values", ErrDomain, span)
	}
}
