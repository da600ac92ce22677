package dllist

import (
	"fmt"
	"strings"
)

// NodeState состояние узла для диагностики: значение и наличие соседей.
type NodeState[T any] struct {
	Value   T
	HasPrev bool
	HasNext bool
}

// Dump возвращает состояние всех узлов от начала к концу.
// Состояние каждый раз вычисляется проходом по списку.
func (l *DLList[T]) Dump() []NodeState[T] {
	l.mustOwn("dump")

	res := make([]NodeState[T], 0, l.size)
	for n := l.first; n != nil; n = n.next {
		res = append(res, NodeState[T]{
			Value:   n.value,
			HasPrev: n.prev != nil,
			HasNext: n.next != nil,
		})
	}

	return res
}

// String отладочное представление списка вида
//
//	[{data: 1, prev: X, next: Some} {data: 2, prev: Some, next: X}]
func (l *DLList[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, st := range l.Dump() {
		if i > 0 {
			b.WriteByte(' ')
		}
		_, _ = fmt.Fprintf(
			&b,
			"{data: %v, prev: %s, next: %s}",
			st.Value,
			linkPresence(st.HasPrev),
			linkPresence(st.HasNext),
		)
	}
	b.WriteByte(']')

	return b.String()
}

func linkPresence(present bool) string {
	if present {
		return "Some"
	}

	return "X"
}
