package dllist

// Iter отдача итератора по списку от начала к концу.
// Список не должен изменяться во время итерирования.
func (l *DLList[T]) Iter() *Iterator[T] {
	l.mustOwn("iterate")
	return &Iterator[T]{
		r: l.first,
	}
}

// IterBack отдача итератора по списку от конца к началу.
func (l *DLList[T]) IterBack() *Iterator[T] {
	l.mustOwn("iterate")
	return &Iterator[T]{
		r:    l.last,
		back: true,
	}
}

// Values возвращает значения списка в текущем порядке.
func (l *DLList[T]) Values() []T {
	res := make([]T, 0, l.Len())
	it := l.Iter()
	for it.Next() {
		res = append(res, it.Item())
	}

	return res
}

// Iterator итератор по элементам списка.
type Iterator[T any] struct {
	n *node[T]
	r *node[T]

	back bool
}

// Next проверка, что есть ещё непройденные узлы.
func (i *Iterator[T]) Next() bool {
	if i.n == nil && i.r == nil {
		return false
	}

	if i.n == nil {
		i.n = i.r
		return true
	}

	if i.back {
		i.n = i.n.prev
	} else {
		i.n = i.n.next
	}

	if i.n == nil {
		i.r = nil
		return false
	}

	return true
}

// Item отдать значение очередного узла.
func (i *Iterator[T]) Item() T {
	return i.n.value
}
