package core

// FatalHandler is called once with the reason for a contract violation.
// It may report or halt, but it cannot resume the caller: Fatal panics
// after the handler returns.
type FatalHandler func(msg string)

var fatalHandler FatalHandler = defaultFatalHandler

// SetFatalHandler swaps the fatal strategy. A nil handler restores the
// platform default.
func SetFatalHandler(h FatalHandler) {
	if h == nil {
		h = defaultFatalHandler
	}
	fatalHandler = h
}

// Fatal stops the program on a programming error such as starting the
// timebase twice. It never returns.
func Fatal(msg string) {
	fatalHandler(msg)
	panic(msg)
}

// HaltOnFatal spins forever. A debugger attached to the target still
// sees the full backtrace.
func HaltOnFatal(msg string) {
	halt()
}

// halt is replaced in tests
var halt = func() {
	for {
	}
}

// ReportFatal writes the message to w and then halts.
func ReportFatal(w DebugWriter) FatalHandler {
	return func(msg string) {
		if w != nil {
			w("panicked: " + msg)
		}
		HaltOnFatal(msg)
	}
}
