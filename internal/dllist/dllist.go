package dllist

// New конструктор пустого двусвязного списка.
func New[T any]() *DLList[T] {
	return &DLList[T]{}
}

// DLList двусвязный список с вставкой и удалением с обоих концов за O(1).
// Произвольные позиционные изменения делаются через курсор, см. CursorFront.
// Пока курсор открыт список доступен только через него, любое обращение
// к методам самого списка приводит к панике.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type DLList[T any] struct {
	first *node[T]
	last  *node[T]
	size  int

	cursor *Cursor[T]
}

// PushFront добавление нового значения в начало списка.
func (l *DLList[T]) PushFront(v T) {
	l.mustOwn("push front")
	l.linkFront(v)
}

// PushBack добавление нового значения в конец списка.
func (l *DLList[T]) PushBack(v T) {
	l.mustOwn("push back")
	l.linkBack(v)
}

// PopFront удаление первого элемента списка с возвратом его значения.
// Для пустого списка возвращает false.
func (l *DLList[T]) PopFront() (v T, ok bool) {
	l.mustOwn("pop front")
	if l.first == nil {
		return v, false
	}

	f := l.first
	l.unlink(f)
	return f.value, true
}

// PopBack удаление последнего элемента списка с возвратом его значения.
// Для пустого списка возвращает false.
func (l *DLList[T]) PopBack() (v T, ok bool) {
	l.mustOwn("pop back")
	if l.last == nil {
		return v, false
	}

	b := l.last
	l.unlink(b)
	return b.value, true
}

// Front возвращает значение первого элемента.
func (l *DLList[T]) Front() (v T, ok bool) {
	l.mustOwn("peek front")
	if l.first == nil {
		return v, false
	}

	return l.first.value, true
}

// Back возвращает значение последнего элемента.
func (l *DLList[T]) Back() (v T, ok bool) {
	l.mustOwn("peek back")
	if l.last == nil {
		return v, false
	}

	return l.last.value, true
}

// Len возвращает текущую длину списка.
func (l *DLList[T]) Len() int {
	l.mustOwn("get length")
	return l.size
}

// Clear удаление всех элементов списка.
func (l *DLList[T]) Clear() {
	l.mustOwn("clear")

	n := l.first
	for n != nil {
		next := n.next
		n.cleanup() // для упрощения работы GC
		n = next
	}

	l.first = nil
	l.last = nil
	l.size = 0
}

// CursorFront открывает курсор стоящий на первом элементе списка либо
// вне списка, если он пуст. До вызова Cursor.Close список доступен
// исключительно через курсор.
func (l *DLList[T]) CursorFront() *Cursor[T] {
	l.mustOwn("open cursor")

	c := &Cursor[T]{
		list: l,
		cur:  l.first,
		off:  offBack,
	}
	l.cursor = c

	return c
}

// WithCursor открывает курсор в начале списка, передаёт его в fn и
// закрывает после её завершения.
func (l *DLList[T]) WithCursor(fn func(c *Cursor[T])) {
	c := l.CursorFront()
	defer c.Close()

	fn(c)
}

// Borrowed сообщает, что у списка есть открытый курсор.
func (l *DLList[T]) Borrowed() bool {
	return l.cursor != nil
}

func (l *DLList[T]) mustOwn(action string) {
	if l.cursor != nil {
		panic("dllist: cannot " + action + " while a cursor is open")
	}
}

func (l *DLList[T]) linkFront(v T) *node[T] {
	n := &node[T]{
		next:  l.first,
		value: v,
	}
	l.size++

	if l.first == nil {
		l.first = n
		l.last = n
		return n
	}

	l.first.prev = n
	l.first = n

	return n
}

func (l *DLList[T]) linkBack(v T) *node[T] {
	n := &node[T]{
		prev:  l.last,
		value: v,
	}
	l.size++

	if l.first == nil {
		l.first = n
		l.last = n
		return n
	}

	l.last.next = n
	l.last = n

	return n
}

// linkAfter вставка нового узла сразу за данным.
func (l *DLList[T]) linkAfter(at *node[T], v T) *node[T] {
	if at == l.last {
		return l.linkBack(v)
	}

	n := &node[T]{
		prev:  at,
		next:  at.next,
		value: v,
	}
	at.next.prev = n
	at.next = n
	l.size++

	return n
}

// linkBefore вставка нового узла прямо перед данным.
func (l *DLList[T]) linkBefore(at *node[T], v T) *node[T] {
	if at == l.first {
		return l.linkFront(v)
	}

	n := &node[T]{
		prev:  at.prev,
		next:  at,
		value: v,
	}
	at.prev.next = n
	at.prev = n
	l.size++

	return n
}

// unlink удаление данного узла из списка.
func (l *DLList[T]) unlink(n *node[T]) {
	if n.prev != nil {
		n.prev.next = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	}

	if l.first == n {
		l.first = n.next
	}

	if l.last == n {
		l.last = n.prev
	}

	l.size--
	n.cleanup()
}
