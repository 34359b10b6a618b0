// Package monitor decodes the firmware's mtime reports from a serial
// stream and prints them.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"nucleog4/protocol"
)

// Monitor turns a framed byte stream into printed lines
type Monitor struct {
	in      io.Reader
	out     io.Writer
	verbose bool

	// Follow keeps reading after io.EOF. tarm/serial reports a read
	// timeout on Linux as EOF, so a live port needs this set.
	Follow bool

	decoder *protocol.Decoder

	haveLast  bool
	lastMTime uint64

	// Stats
	Frames     int
	Reports    int
	Backwards  int
	BadPayload int
}

// New creates a monitor reading from in and printing to out
func New(in io.Reader, out io.Writer, verbose bool) *Monitor {
	return &Monitor{
		in:      in,
		out:     out,
		verbose: verbose,
		decoder: protocol.NewDecoder(),
	}
}

// Run reads until ctx is cancelled, the reader fails, or (without
// Follow) the reader returns EOF.
func (m *Monitor) Run(ctx context.Context) error {
	buf := make([]byte, 256)
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		n, err := m.in.Read(buf)
		if n > 0 {
			m.Process(buf[:n])
		}
		if errors.Is(err, io.EOF) {
			if m.Follow {
				continue
			}
			return nil
		}
		if err != nil {
			return fmt.Errorf("read: %w", err)
		}
	}
}

// Process handles one chunk of received bytes
func (m *Monitor) Process(data []byte) {
	frames, dropped := m.decoder.Feed(data)
	if dropped > 0 && m.verbose {
		fmt.Fprintf(m.out, "dropped %d bytes\n", dropped)
	}

	for _, f := range frames {
		m.Frames++
		msgs, err := protocol.DecodeMessages(f.Payload)
		if err != nil {
			m.BadPayload++
			if m.verbose {
				fmt.Fprintf(m.out, "frame seq=%d: %v\n", f.Seq, err)
			}
		}
		for _, msg := range msgs {
			m.handle(msg)
		}
	}
}

func (m *Monitor) handle(msg protocol.Message) {
	switch msg.ID {
	case protocol.MsgMTime:
		m.Reports++
		fmt.Fprintf(m.out, "mtime=%dms\n", msg.MTime)
		if m.haveLast && msg.MTime < m.lastMTime {
			m.Backwards++
			fmt.Fprintf(m.out, "warning: mtime went backwards from %d to %d\n", m.lastMTime, msg.MTime)
		}
		m.haveLast = true
		m.lastMTime = msg.MTime
	case protocol.MsgLog:
		fmt.Fprintf(m.out, "log: %s\n", msg.Text)
	}
}

// CRCErrors returns the number of corrupt frames discarded so far
func (m *Monitor) CRCErrors() int {
	return m.decoder.Errors
}

// PrintStats writes a one-line summary to stderr
func (m *Monitor) PrintStats() {
	fmt.Fprintf(os.Stderr, "frames=%d reports=%d backwards=%d bad_frames=%d bad_payloads=%d\n",
		m.Frames, m.Reports, m.Backwards, m.CRCErrors(), m.BadPayload)
}
