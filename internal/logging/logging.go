//go:generate mockgen -destination ../logmocks/logger.go -package logmocks -mock_names Logger=LoggerMock github.com/sirkon/dlseq/internal/logging Logger

package logging

import "github.com/google/uuid"

// Logger абстракция предназначенная для логирования в строго определённых ситуациях
// при проигрывании сценариев операций над списком.
// Реализация логирования должна делаться пользователями библиотеки.
type Logger interface {
	// ScriptStart начало проигрывания сценария с данным числом шагов.
	ScriptStart(runID uuid.UUID, name string, steps int)
	// StepApplied шаг выполнен, result пуст если операция не вернула значения.
	StepApplied(runID uuid.UUID, step int, op string, result string, present bool)
	// ScriptFailed сценарий прерван с ошибкой на данном шаге.
	ScriptFailed(runID uuid.UUID, step int, err error)
	// ScriptDone сценарий успешно завершён, state отладочное представление
	// итогового состояния списка.
	ScriptDone(runID uuid.UUID, state string)
}
