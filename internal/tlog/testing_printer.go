package tlog

// TestingPrinter часть *testing.T нужная для вывода ошибок.
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Error(a ...any)
}
