package opscript

import "github.com/sirkon/errors"

const (
	// ErrExpectation результат шага не совпал с ожидаемым.
	ErrExpectation errors.Const = "expectation failed"

	// ErrUnknownOp неизвестная операция.
	ErrUnknownOp errors.Const = "unknown operation"

	// ErrCursorState операция недопустима при текущем состоянии курсора:
	// операция курсора без открытого курсора либо операция над списком
	// при открытом курсоре.
	ErrCursorState errors.Const = "operation is not allowed in the current cursor state"
)
