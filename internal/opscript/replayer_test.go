package opscript_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sirkon/deepequal"
	"github.com/sirkon/dlseq/internal/logmocks"
	"github.com/sirkon/dlseq/internal/opscript"
	"github.com/sirkon/dlseq/internal/tlog"
	"github.com/sirkon/errors"
)

func TestReplayFiles(t *testing.T) {
	type test struct {
		path string
		want []string
	}

	tests := []test{
		{
			path: "testdata/take-and-reposition.yaml",
			want: []string{"1"},
		},
		{
			path: "testdata/peek-mutate.yaml",
			want: []string{},
		},
		{
			path: "testdata/traversal.yaml",
			want: []string{"a", "b", "c"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			s, err := opscript.Load(tt.path)
			if err != nil {
				tlog.Error(t, errors.Wrap(err, "load script"))
				return
			}

			res, err := opscript.New().Replay(s)
			if err != nil {
				tlog.Error(t, errors.Wrap(err, "replay script"))
				return
			}

			if !deepequal.Equal(tt.want, res.Values) {
				t.Error("final list mismatch")
				deepequal.SideBySide(t, "values", tt.want, res.Values)
			}
			if res.Steps != len(s.Steps) {
				t.Errorf("expected %d steps to be applied, got %d", len(s.Steps), res.Steps)
			}
		})
	}
}

func TestReplayFailure(t *testing.T) {
	t.Run("expectation", func(t *testing.T) {
		s, err := opscript.Load("testdata/broken.yaml")
		if err != nil {
			tlog.Error(t, errors.Wrap(err, "load script"))
			return
		}

		_, err = opscript.New(opscript.WithHistoryDepth(2)).Replay(s)
		if !errors.Is(err, opscript.ErrExpectation) {
			t.Errorf("expected expectation error, got %v", err)
			return
		}

		tlog.Log(t, err)
	})

	type test struct {
		name string
		src  string
		err  error
	}

	tests := []test{
		{
			name: "cursor-op-without-cursor",
			src:  `steps: [{op: next}]`,
			err:  opscript.ErrCursorState,
		},
		{
			name: "list-op-under-cursor",
			src:  `steps: [{op: cursor_front}, {op: push_back, value: "1"}]`,
			err:  opscript.ErrCursorState,
		},
		{
			name: "second-cursor",
			src:  `steps: [{op: cursor_front}, {op: cursor_front}]`,
			err:  opscript.ErrCursorState,
		},
		{
			name: "set-off-list",
			src:  `steps: [{op: cursor_front}, {op: set, value: "1"}]`,
			err:  opscript.ErrExpectation,
		},
		{
			name: "wrong-length",
			src:  `steps: [{op: push_back, value: "1"}, {op: len, count: 2}]`,
			err:  opscript.ErrExpectation,
		},
		{
			name: "wrong-items",
			src:  `steps: [{op: push_back, value: "1"}, {op: list, items: ["2"]}]`,
			err:  opscript.ErrExpectation,
		},
		{
			name: "absent-expected",
			src:  `steps: [{op: push_back, value: "1"}, {op: pop_back, absent: true}]`,
			err:  opscript.ErrExpectation,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			s, err := opscript.Parse([]byte(tt.src))
			if err != nil {
				tlog.Error(t, errors.Wrap(err, "parse script"))
				return
			}

			if _, err := opscript.New().Replay(s); !errors.Is(err, tt.err) {
				t.Errorf("expected error %v, got %v", tt.err, err)
			}
		})
	}
}

func TestParse(t *testing.T) {
	type test struct {
		name string
		src  string
		err  error
	}

	tests := []test{
		{
			name: "unknown-op",
			src:  `steps: [{op: rotate}]`,
			err:  opscript.ErrUnknownOp,
		},
		{
			name: "expect-with-absent",
			src:  `steps: [{op: pop_front, expect: "1", absent: true}]`,
		},
		{
			name: "expect-without-element",
			src:  `steps: [{op: push_back, value: "1", expect: "1"}]`,
		},
		{
			name: "items-on-wrong-op",
			src:  `steps: [{op: len, items: ["1"]}]`,
		},
		{
			name: "unknown-field",
			src:  `steps: [{op: len, size: 1}]`,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := opscript.Parse([]byte(tt.src))
			if err == nil {
				t.Error("invalid script must not be parsed")
				return
			}

			if tt.err != nil && !errors.Is(err, tt.err) {
				t.Errorf("expected error %v, got %v", tt.err, err)
				return
			}

			tlog.Log(t, err)
		})
	}
}

func TestReplayLogging(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := logmocks.NewLoggerMock(ctrl)

	s, err := opscript.Parse([]byte(`
name: logged
steps:
  - {op: push_back, value: "a"}
  - {op: pop_front, expect: "a"}
  - {op: pop_front}
`))
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "parse script"))
		return
	}

	var runID uuid.UUID
	gomock.InOrder(
		logger.EXPECT().ScriptStart(gomock.Any(), "logged", 3).Do(func(id uuid.UUID, _ string, _ int) {
			runID = id
		}),
		logger.EXPECT().StepApplied(gomock.Any(), 0, "push_back", "", false),
		logger.EXPECT().StepApplied(gomock.Any(), 1, "pop_front", "a", true),
		logger.EXPECT().StepApplied(gomock.Any(), 2, "pop_front", "", false),
		logger.EXPECT().ScriptDone(gomock.Any(), "[]"),
	)

	res, err := opscript.New(opscript.WithLogger(logger)).Replay(s)
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "replay script"))
		return
	}

	if res.RunID != runID {
		t.Errorf("expected run id %s to be logged, got %s", res.RunID, runID)
	}
}

func TestReplayLoggingFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := logmocks.NewLoggerMock(ctrl)

	s, err := opscript.Parse([]byte(`steps: [{op: take}]`))
	if err != nil {
		tlog.Error(t, errors.Wrap(err, "parse script"))
		return
	}

	logger.EXPECT().ScriptStart(gomock.Any(), "", 1)
	logger.EXPECT().ScriptFailed(gomock.Any(), 0, gomock.Any()).Do(func(_ uuid.UUID, _ int, err error) {
		if !errors.Is(err, opscript.ErrCursorState) {
			t.Errorf("expected cursor state error to be logged, got %v", err)
		}
	})

	if _, err := opscript.New(opscript.WithLogger(logger)).Replay(s); err == nil {
		t.Error("take without a cursor must fail")
	}
}
