package dllist

// Cursor позиция в списке с исключительным доступом к нему.
//
// Курсор либо стоит на некотором элементе, либо находится вне списка:
// список пуст, либо курсор сошёл с одного из концов. Сторона с которой
// курсор сошёл запоминается и определяет куда идёт вставка вне списка.
// Методы курсора не паникуют кроме как при использовании после Close.
type Cursor[T any] struct {
	list  *DLList[T]
	cur   *node[T]
	index int
	off   offSide
}

type offSide int

const (
	offBack offSide = iota
	offFront
)

// PeekMut возвращает указатель на значение текущего элемента, изменения
// через него видны в списке сразу и сохраняются после закрытия курсора.
// Вне списка возвращает nil.
func (c *Cursor[T]) PeekMut() *T {
	c.mustBeOpen()
	if c.cur == nil {
		return nil
	}

	return &c.cur.value
}

// Peek возвращает значение текущего элемента.
func (c *Cursor[T]) Peek() (v T, ok bool) {
	c.mustBeOpen()
	if c.cur == nil {
		return v, false
	}

	return c.cur.value, true
}

// Next сдвиг на одну позицию к концу списка с возвратом указателя на
// значение новой позиции. С последнего элемента курсор сходит со списка,
// вне списка остаётся на месте.
func (c *Cursor[T]) Next() *T {
	c.mustBeOpen()
	if c.cur == nil {
		return nil
	}

	c.cur = c.cur.next
	c.index++
	if c.cur == nil {
		c.off = offBack
	}

	return c.PeekMut()
}

// Prev сдвиг на одну позицию к началу списка с возвратом указателя на
// значение новой позиции. С первого элемента курсор сходит со списка,
// вне списка остаётся на месте.
func (c *Cursor[T]) Prev() *T {
	c.mustBeOpen()
	if c.cur == nil {
		return nil
	}

	c.cur = c.cur.prev
	c.index--
	if c.cur == nil {
		c.off = offFront
	}

	return c.PeekMut()
}

// Index возвращает номер текущего элемента считая от начала списка.
func (c *Cursor[T]) Index() (int, bool) {
	c.mustBeOpen()
	if c.cur == nil {
		return 0, false
	}

	return c.index, true
}

// Len возвращает длину списка.
func (c *Cursor[T]) Len() int {
	c.mustBeOpen()
	return c.list.size
}

// Close освобождение списка. Повторный вызов ничего не делает.
func (c *Cursor[T]) Close() {
	if c.list == nil {
		return
	}

	c.list.cursor = nil
	c.list = nil
	c.cur = nil
}

// Closed сообщает, что курсор уже закрыт.
func (c *Cursor[T]) Closed() bool {
	return c.list == nil
}

func (c *Cursor[T]) mustBeOpen() {
	if c.list == nil {
		panic("dllist: use of a closed cursor")
	}
}
