// Package tlog вывод ошибок со структурированным контекстом в тестах.
package tlog

import (
	"fmt"
	"strings"

	"github.com/sirkon/errors"
)

const (
	highlightLog   = "\033[1m"
	highlightError = "\033[1;31m"
	resetStyle     = "\033[0m"
)

// Log вывод ошибки без провала теста.
func Log(t TestingPrinter, err error) {
	t.Helper()
	t.Log(render(err, highlightLog))
}

// Error вывод ошибки с провалом теста.
func Error(t TestingPrinter, err error) {
	t.Helper()
	t.Error(render(err, highlightError))
}

// Check для nil ничего не делает и возвращает false, иначе
// проваливает тест с выводом ошибки и возвращает true.
func Check(t TestingPrinter, err error) bool {
	if err == nil {
		return false
	}

	t.Helper()
	t.Error(render(err, highlightError))
	return true
}

func render(err error, highlight string) string {
	if err == nil {
		return "<nil>"
	}

	var b strings.Builder
	b.WriteString(highlight)
	b.WriteString(err.Error())
	b.WriteString(resetStyle)
	b.WriteByte('\n')

	var c contextCollector
	if d := errors.GetContextDeliverer(err); d != nil {
		d.Deliver(&c)
	}

	width := 0
	for _, v := range c.vars {
		if len(v.name) > width {
			width = len(v.name)
		}
	}

	for _, v := range c.vars {
		_, _ = fmt.Fprintf(&b, "    %s%-*s%s: %v\n", highlightLog, width, v.name, resetStyle, v.value)
	}

	return b.String()
}
