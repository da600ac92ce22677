package dllist

// node узел списка содержащий одно значение.
// Ссылка next владеющая, ссылки prev, DLList.last и позиция курсора
// используются только для навигации.
type node[T any] struct {
	prev *node[T]
	next *node[T]

	value T
}

func (n *node[T]) cleanup() {
	n.prev = nil
	n.next = nil
}
