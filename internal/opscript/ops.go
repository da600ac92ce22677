package opscript

// Op операция сценария.
type Op string

// Операции над списком.
const (
	OpPushFront Op = "push_front"
	OpPushBack  Op = "push_back"
	OpPopFront  Op = "pop_front"
	OpPopBack   Op = "pop_back"
	OpList      Op = "list"
	OpLen       Op = "len"
	OpCheck     Op = "check"
)

// Операции курсора.
const (
	OpCursorFront  Op = "cursor_front"
	OpPeek         Op = "peek"
	OpSet          Op = "set"
	OpNext         Op = "next"
	OpPrev         Op = "prev"
	OpTake         Op = "take"
	OpInsertAfter  Op = "insert_after"
	OpInsertBefore Op = "insert_before"
	OpClose        Op = "close"
)

func (o Op) known() bool {
	switch o {
	case OpPushFront, OpPushBack, OpPopFront, OpPopBack, OpList, OpLen, OpCheck:
		return true
	case OpCursorFront, OpPeek, OpSet, OpNext, OpPrev, OpTake, OpInsertAfter, OpInsertBefore, OpClose:
		return true
	default:
		return false
	}
}

// yieldsElement операция возвращает элемент либо его отсутствие.
func (o Op) yieldsElement() bool {
	switch o {
	case OpPopFront, OpPopBack, OpPeek, OpSet, OpNext, OpPrev, OpTake:
		return true
	default:
		return false
	}
}

// needsCursor операция выполняется через открытый курсор.
func (o Op) needsCursor() bool {
	switch o {
	case OpPeek, OpSet, OpNext, OpPrev, OpTake, OpInsertAfter, OpInsertBefore, OpClose:
		return true
	default:
		return false
	}
}

// needsList операция требует прямого доступа к списку, то есть отсутствия курсора.
func (o Op) needsList() bool {
	switch o {
	case OpPushFront, OpPushBack, OpPopFront, OpPopBack, OpCursorFront, OpList:
		return true
	default:
		return false
	}
}
