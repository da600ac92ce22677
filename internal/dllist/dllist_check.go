package dllist

import "github.com/sirkon/errors"

// Check проверка структурной целостности списка. Проходит список в обоих
// направлениях и возвращает ошибку для первого найденного нарушения.
func (l *DLList[T]) Check() error {
	l.mustOwn("check")
	return l.check()
}

// Check проверка структурной целостности списка под курсором.
func (c *Cursor[T]) Check() error {
	c.mustBeOpen()
	if err := c.list.check(); err != nil {
		return err
	}

	if c.cur == nil {
		return nil
	}

	pos := 0
	for n := c.list.first; n != c.cur; n = n.next {
		if n == nil {
			return errors.New("cursor points to a node outside of the list")
		}
		pos++
	}

	if pos != c.index {
		return errors.New("cursor index mismatch").
			Int("index", c.index).
			Int("position", pos)
	}

	return nil
}

func (l *DLList[T]) check() error {
	if (l.first == nil) != (l.last == nil) {
		return errors.New("list anchors disagree on emptiness").
			Bool("has-first", l.first != nil).
			Bool("has-last", l.last != nil)
	}

	var (
		count int
		prev  *node[T]
	)
	for n := l.first; n != nil; n = n.next {
		if count > l.size {
			return errors.New("forward chain is longer than the list length, possible cycle").
				Int("length", l.size)
		}

		if n.prev != prev {
			return errors.New("node predecessor link does not point to the previous node").
				Int("position", count)
		}

		prev = n
		count++
	}

	if prev != l.last {
		return errors.New("last node reached by the forward chain is not the list tail").
			Int("position", count-1)
	}

	if count != l.size {
		return errors.New("forward chain length mismatch").
			Int("length", l.size).
			Int("visited", count)
	}

	count = 0
	for n := l.last; n != nil; n = n.prev {
		count++
		if count > l.size {
			return errors.New("backward chain is longer than the list length, possible cycle").
				Int("length", l.size)
		}
	}

	if count != l.size {
		return errors.New("backward chain length mismatch").
			Int("length", l.size).
			Int("visited", count)
	}

	return nil
}
