package opscript

import (
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/sirkon/dlseq/internal/dllist"
	"github.com/sirkon/dlseq/internal/logging"
	"github.com/sirkon/dlseq/internal/slist"
	"github.com/sirkon/errors"
	"golang.org/x/exp/slices"
)

// Replayer проигрыватель сценариев. Каждый сценарий выполняется над
// новым пустым списком.
type Replayer struct {
	logger  logging.Logger
	history int
}

// Result итог успешного проигрывания сценария.
type Result struct {
	RunID  uuid.UUID
	Name   string
	Steps  int
	Values []string
	State  string
}

// New конструктор проигрывателя с данными опциями.
func New(opts ...ReplayerOpt) *Replayer {
	r := &Replayer{
		logger:  nopLogger{},
		history: defaultHistoryDepth,
	}
	for _, opt := range opts {
		opt(r, replayerOptRestriction{})
	}

	return r
}

// Replay проигрывание сценария. Ошибка несовпадения результата шага с
// ожиданием оборачивает ErrExpectation и содержит в контексте номер шага,
// операцию и последние выполненные шаги.
func (r *Replayer) Replay(s *Script) (*Result, error) {
	run := &replay{
		id:      uuid.New(),
		list:    dllist.New[string](),
		history: slist.New[string](),
	}

	r.logger.ScriptStart(run.id, s.Name, len(s.Steps))
	for i, step := range s.Steps {
		res, present, err := run.apply(step)
		if err != nil {
			err = errors.Wrap(err, "apply step").
				Int("step", i).
				Str("op", string(step.Op)).
				Str("history", run.recent(r.history))
			r.logger.ScriptFailed(run.id, i, err)
			return nil, err
		}

		r.logger.StepApplied(run.id, i, string(step.Op), res, present)
		run.history.Push(describe(step, res, present))
	}

	if run.cursor != nil {
		run.cursor.Close()
	}

	result := &Result{
		RunID:  run.id,
		Name:   s.Name,
		Steps:  len(s.Steps),
		Values: run.list.Values(),
		State:  run.list.String(),
	}
	r.logger.ScriptDone(run.id, result.State)

	return result, nil
}

type replay struct {
	id      uuid.UUID
	list    *dllist.DLList[string]
	cursor  *dllist.Cursor[string]
	history *slist.SList[string]
}

func (r *replay) apply(step Step) (res string, present bool, err error) {
	switch {
	case step.Op.needsCursor() && r.cursor == nil:
		return "", false, errors.Wrap(ErrCursorState, "no cursor is open")
	case step.Op.needsList() && r.cursor != nil:
		return "", false, errors.Wrap(ErrCursorState, "list is borrowed by the cursor")
	}

	switch step.Op {
	case OpPushFront:
		r.list.PushFront(step.Value)
	case OpPushBack:
		r.list.PushBack(step.Value)
	case OpPopFront:
		res, present = r.list.PopFront()
	case OpPopBack:
		res, present = r.list.PopBack()
	case OpCursorFront:
		r.cursor = r.list.CursorFront()
	case OpPeek:
		res, present = r.cursor.Peek()
	case OpSet:
		if v := r.cursor.PeekMut(); v != nil {
			res, present = *v, true
			*v = step.Value
		}
	case OpNext:
		res, present = deref(r.cursor.Next())
	case OpPrev:
		res, present = deref(r.cursor.Prev())
	case OpTake:
		res, present = r.cursor.Take()
	case OpInsertAfter:
		r.cursor.InsertAfter(step.Value)
	case OpInsertBefore:
		r.cursor.InsertBefore(step.Value)
	case OpClose:
		r.cursor.Close()
		r.cursor = nil
	case OpList:
		values := r.list.Values()
		if step.Items != nil && !slices.Equal(step.Items, values) {
			return "", false, errors.Wrap(ErrExpectation, "list content mismatch").
				Str("expected", strings.Join(step.Items, ",")).
				Str("actual", strings.Join(values, ","))
		}
		res, present = strings.Join(values, ","), true
	case OpLen:
		var l int
		if r.cursor != nil {
			l = r.cursor.Len()
		} else {
			l = r.list.Len()
		}
		if step.Count != nil && *step.Count != l {
			return "", false, errors.Wrap(ErrExpectation, "list length mismatch").
				Int("expected", *step.Count).
				Int("actual", l)
		}
		res, present = strconv.Itoa(l), true
	case OpCheck:
		if r.cursor != nil {
			err = r.cursor.Check()
		} else {
			err = r.list.Check()
		}
		if err != nil {
			return "", false, errors.Wrap(err, "check list integrity")
		}
	default:
		return "", false, ErrUnknownOp
	}

	if err := expect(step, res, present); err != nil {
		return "", false, err
	}

	return res, present, nil
}

func expect(step Step, res string, present bool) error {
	switch {
	case step.Absent && present:
		return errors.Wrap(ErrExpectation, "expected no element").Str("actual", res)
	case step.Expect != nil && !present:
		return errors.Wrap(ErrExpectation, "expected an element, got none").Str("expected", *step.Expect)
	case step.Expect != nil && *step.Expect != res:
		return errors.Wrap(ErrExpectation, "element mismatch").
			Str("expected", *step.Expect).
			Str("actual", res)
	case step.Op == OpSet && !present && !step.Absent:
		return errors.Wrap(ErrExpectation, "no element to set")
	}

	return nil
}

// recent описание последних n выполненных шагов, начиная с самого свежего.
func (r *replay) recent(n int) string {
	var b strings.Builder
	it := r.history.Iter()
	for i := 0; i < n && it.Next(); i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(*it.Item())
	}

	return b.String()
}

func describe(step Step, res string, present bool) string {
	var b strings.Builder
	b.WriteString(string(step.Op))
	if step.Value != "" {
		b.WriteByte('(')
		b.WriteString(step.Value)
		b.WriteByte(')')
	}

	switch {
	case present:
		b.WriteString(" -> ")
		b.WriteString(res)
	case step.Op.yieldsElement():
		b.WriteString(" -> none")
	}

	return b.String()
}

func deref(v *string) (string, bool) {
	if v == nil {
		return "", false
	}

	return *v, true
}
