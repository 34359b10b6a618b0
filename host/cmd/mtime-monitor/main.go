package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"nucleog4/host/monitor"
	"nucleog4/host/serial"
)

var (
	device  = flag.String("device", "/dev/ttyACM0", "Serial device path (ST-LINK virtual COM port)")
	baud    = flag.Int("baud", serial.DefaultBaud, "Baud rate")
	timeout = flag.Int("timeout", 100, "Read timeout in milliseconds")
	verbose = flag.Bool("verbose", false, "Enable verbose output")
)

func main() {
	flag.Parse()

	fmt.Println("mtime monitor - NUCLEO-G474RE timebase reports")
	fmt.Println("==============================================")

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	cfg.ReadTimeout = *timeout

	fmt.Printf("Opening %s at %d baud...\n", cfg.Device, cfg.Baud)
	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	if err := port.Flush(); err != nil && *verbose {
		fmt.Fprintf(os.Stderr, "Warning: flush failed: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Println("Press the USER button on the board; Ctrl-C to exit")

	m := monitor.New(port, os.Stdout, *verbose)
	m.Follow = true
	if err := m.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		m.PrintStats()
		os.Exit(1)
	}
	m.PrintStats()
}
