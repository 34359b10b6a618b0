//go:build tinygo

package core

func defaultFatalHandler(msg string) {
	HaltOnFatal(msg)
}
