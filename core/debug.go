package core

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

var (
	// debugPrintln is the global debug print function (set by target code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether DebugPrintln produces output
	debugEnabled bool = true
)

// SetDebugWriter sets the platform-specific debug output function.
// Targets point this at semihosting or the LPUART.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled = enabled
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled
}

// DebugPrintln writes a debug message using the platform-specific writer.
// It blocks for as long as the writer does; semihosting is slow.
func DebugPrintln(msg string) {
	if debugEnabled && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// DebugValue prints "name = value", the firmware stand-in for a dbg! dump
func DebugValue(name string, value uint64) {
	DebugPrintln(name + " = " + Utoa64(value))
}
