package infinitelist

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// Ascend yields index and value pairs from index from upwards until the end
// of the domain. For unbounded and right lists the sequence only ends at
// math.MaxInt, so callers are expected to break out of the loop.
func (list *List[V]) Ascend(from int) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for index := from; list.domain.Contains(index); index++ {
			if !yield(index, list.value(index)) || index == math.MaxInt {
				return
			}
		}
	}
}

// Descend yields index and value pairs from index from downwards until the
// start of the domain.
func (list *List[V]) Descend(from int) iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for index := from; list.domain.Contains(index); index-- {
			if !yield(index, list.value(index)) || index == math.MinInt {
				return
			}
		}
	}
}

// Overrides yields the explicitly set values in ascending index order.
func (list *List[V]) Overrides() iter.Seq2[int, V] {
	return list.overlay.Ascend()
}

// Background yields every background breakpoint with the value starting
// there. The first breakpoint also covers every index to its left.
func (list *List[V]) Background() iter.Seq2[int, V] {
	return list.fills.Segments()
}

// Len returns the number of explicitly set values.
func (list *List[V]) Len() int {
	return list.overlay.Len()
}

// Regions returns the number of background breakpoints.
func (list *List[V]) Regions() int {
	return list.fills.Len()
}

// String renders both layers, e.g. "right{overrides: 0=a 2=c, background: 0=x 5=y}".
func (list *List[V]) String() string {
	var builder strings.Builder

	builder.WriteString(list.domain.String())
	builder.WriteString("{overrides:")

	for index, value := range list.Overrides() {
		fmt.Fprintf(&builder, " %d=%v", index, value)
	}

	builder.WriteString(", background:")

	for index, value := range list.Background() {
		fmt.Fprintf(&builder, " %d=%v", index, value)
	}

	builder.WriteString("}")

	return builder.String()
}
