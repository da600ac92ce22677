package main

import (
	"testing"

	"github.com/sirkon/dlseq/internal/tlog"
)

func TestRun(t *testing.T) {
	t.Run("all-pass", func(t *testing.T) {
		failed, err := run("", []string{
			"../../internal/opscript/testdata/traversal.yaml",
			"../../internal/opscript/testdata/peek-mutate.yaml",
		})
		if tlog.Check(t, err) {
			return
		}
		if failed != 0 {
			t.Errorf("expected all scripts to pass, %d failed", failed)
		}
	})

	t.Run("failures-counted", func(t *testing.T) {
		failed, err := run("", []string{
			"../../internal/opscript/testdata/broken.yaml",
			"../../internal/opscript/testdata/traversal.yaml",
			"../../internal/opscript/testdata/broken.yaml",
		})
		if tlog.Check(t, err) {
			return
		}
		if failed != 2 {
			t.Errorf("expected 2 failed scripts, got %d", failed)
		}
	})

	t.Run("stop-on-failure", func(t *testing.T) {
		failed, err := run("testdata/stop.yaml", []string{
			"../../internal/opscript/testdata/broken.yaml",
			"../../internal/opscript/testdata/broken.yaml",
		})
		if tlog.Check(t, err) {
			return
		}
		if failed != 1 {
			t.Errorf("expected to stop after the first failure, got %d failed", failed)
		}
	})

	t.Run("missing-script", func(t *testing.T) {
		if _, err := run("", []string{"testdata/missing.yaml"}); err == nil {
			t.Error("missing script must be reported")
		}
	})
}
