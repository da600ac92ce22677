package opscript

import (
	"github.com/google/uuid"
	"github.com/sirkon/dlseq/internal/logging"
)

const defaultHistoryDepth = 5

// ReplayerOpt определение опции проигрывателя.
type ReplayerOpt func(r *Replayer, _ replayerOptRestriction)

type replayerOptRestriction struct{}

// WithLogger задание логгера. По умолчанию ничего не логируется.
func WithLogger(logger logging.Logger) ReplayerOpt {
	return func(r *Replayer, _ replayerOptRestriction) {
		r.logger = logger
	}
}

// WithHistoryDepth задание числа последних шагов попадающих в контекст ошибки.
func WithHistoryDepth(depth int) ReplayerOpt {
	return func(r *Replayer, _ replayerOptRestriction) {
		r.history = depth
	}
}

type nopLogger struct{}

func (nopLogger) ScriptStart(uuid.UUID, string, int)               {}
func (nopLogger) StepApplied(uuid.UUID, int, string, string, bool) {}
func (nopLogger) ScriptFailed(uuid.UUID, int, error)               {}
func (nopLogger) ScriptDone(uuid.UUID, string)                     {}

var _ logging.Logger = nopLogger{}
