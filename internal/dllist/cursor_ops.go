package dllist

// Take удаление текущего элемента с возвратом его значения.
//
// Курсор переходит на следующий элемент, а если его не было, то на
// предыдущий, то есть на новый последний элемент. Если список опустел,
// курсор оказывается вне списка. Вне списка ничего не делает и
// возвращает false.
func (c *Cursor[T]) Take() (v T, ok bool) {
	c.mustBeOpen()
	if c.cur == nil {
		return v, false
	}

	n := c.cur
	switch {
	case n.next != nil:
		c.cur = n.next
	case n.prev != nil:
		c.cur = n.prev
		c.index--
	default:
		c.cur = nil
		c.index = 0
		c.off = offBack
	}

	c.list.unlink(n)
	return n.value, true
}

// InsertAfter вставка значения сразу за текущим элементом, курсор остаётся
// на месте. В пустом списке новый элемент становится единственным и
// курсор встаёт на него. Вне непустого списка значение добавляется с той
// стороны, с которой курсор сошёл, курсор остаётся вне списка.
func (c *Cursor[T]) InsertAfter(v T) {
	c.mustBeOpen()
	if c.cur != nil {
		c.list.linkAfter(c.cur, v)
		return
	}

	c.insertOff(v)
}

// InsertBefore вставка значения прямо перед текущим элементом, курсор
// остаётся на месте. Поведение для пустого списка и вне списка такое же
// как и у InsertAfter.
func (c *Cursor[T]) InsertBefore(v T) {
	c.mustBeOpen()
	if c.cur != nil {
		c.list.linkBefore(c.cur, v)
		c.index++
		return
	}

	c.insertOff(v)
}

func (c *Cursor[T]) insertOff(v T) {
	if c.list.first == nil {
		c.cur = c.list.linkBack(v)
		c.index = 0
		return
	}

	switch c.off {
	case offFront:
		c.list.linkFront(v)
	default:
		c.list.linkBack(v)
	}
}
