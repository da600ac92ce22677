// Package slist односвязный список с доступом только к началу, по сути стек.
package slist

// New конструктор пустого списка.
func New[T any]() *SList[T] {
	return &SList[T]{}
}

// SList односвязный список, каждый узел единолично владеет следующим.
// WARNING: Не предоставляет гарантий безопасности при многопоточном доступе.
type SList[T any] struct {
	head *node[T]
	size int
}

type node[T any] struct {
	next  *node[T]
	value T
}

// Len возвращает текущую длину списка.
func (l *SList[T]) Len() int {
	return l.size
}

// Push добавление значения в начало списка.
func (l *SList[T]) Push(v T) {
	l.head = &node[T]{
		next:  l.head,
		value: v,
	}
	l.size++
}

// Pop удаление первого элемента с возвратом его значения.
func (l *SList[T]) Pop() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}

	h := l.head
	l.head = h.next
	l.size--
	h.next = nil

	return h.value, true
}

// Peek возвращает значение первого элемента.
func (l *SList[T]) Peek() (v T, ok bool) {
	if l.head == nil {
		return v, false
	}

	return l.head.value, true
}

// PeekMut возвращает указатель на значение первого элемента либо nil.
func (l *SList[T]) PeekMut() *T {
	if l.head == nil {
		return nil
	}

	return &l.head.value
}

// Clear удаление всех элементов.
func (l *SList[T]) Clear() {
	l.head = nil
	l.size = 0
}

// Iter отдача итератора от начала списка.
func (l *SList[T]) Iter() *Iterator[T] {
	return &Iterator[T]{
		next: l.head,
	}
}

// Iterator итератор по элементам списка. Item возвращает указатель, через
// который значение можно менять.
type Iterator[T any] struct {
	cur  *node[T]
	next *node[T]
}

// Next переход к следующему элементу.
func (i *Iterator[T]) Next() bool {
	if i.next == nil {
		i.cur = nil
		return false
	}

	i.cur = i.next
	i.next = i.cur.next
	return true
}

// Item указатель на значение текущего элемента.
func (i *Iterator[T]) Item() *T {
	return &i.cur.value
}
