//go:build !tinygo

package core

// defaultFatalHandler leaves termination to the panic in Fatal so tests
// can recover it.
func defaultFatalHandler(msg string) {}
