package main

import (
	"github.com/google/uuid"
	"github.com/inconshreveable/log15"
	"github.com/sirkon/dlseq/internal/logging"
)

// replayLogger реализация logging.Logger поверх log15.
type replayLogger struct {
	log  log15.Logger
	dump bool
}

func newReplayLogger(level string, dump bool) (*replayLogger, error) {
	lvl, err := log15.LvlFromString(level)
	if err != nil {
		return nil, err
	}

	l := log15.New("service", "dlseq")
	l.SetHandler(log15.LvlFilterHandler(lvl, log15.StderrHandler))

	return &replayLogger{
		log:  l,
		dump: dump,
	}, nil
}

func (l *replayLogger) ScriptStart(runID uuid.UUID, name string, steps int) {
	l.log.Info("script started", "run-id", runID, "script", name, "steps", steps)
}

func (l *replayLogger) StepApplied(runID uuid.UUID, step int, op string, result string, present bool) {
	if !present {
		l.log.Debug("step applied", "run-id", runID, "step", step, "op", op)
		return
	}

	l.log.Debug("step applied", "run-id", runID, "step", step, "op", op, "result", result)
}

func (l *replayLogger) ScriptFailed(runID uuid.UUID, step int, err error) {
	l.log.Error("script failed", "run-id", runID, "step", step, "err", err)
}

func (l *replayLogger) ScriptDone(runID uuid.UUID, state string) {
	if l.dump {
		l.log.Info("script done", "run-id", runID, "state", state)
		return
	}

	l.log.Info("script done", "run-id", runID)
}

var _ logging.Logger = &replayLogger{}
