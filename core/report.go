package core

import (
	"fmt"
	"io"

	"nucleog4/protocol"
)

// maxLogText is the longest text that fits one frame: the payload minus
// a one-byte message ID and a one-byte length
const maxLogText = protocol.MessageLengthMax - protocol.MessageLengthMin - 2

// Reporter sends framed timebase readings and log lines to the host
// monitor over w
type Reporter struct {
	w   io.Writer
	tb  *Timebase
	seq uint8
	out protocol.ScratchOutput
}

// NewReporter returns a reporter for tb writing to w
func NewReporter(w io.Writer, tb *Timebase) *Reporter {
	return &Reporter{w: w, tb: tb}
}

// SystemTimebase returns the process-wide timebase driven by MTimeTick
func SystemTimebase() *Timebase {
	return mtime
}

// ReportMTime sends the current reading. Before the timebase is started
// it sends a log line instead, since there is no time to report.
func (r *Reporter) ReportMTime() error {
	count, ok := r.tb.Read()
	if !ok {
		return r.Log("mtime not started")
	}
	return r.send(func(out protocol.OutputBuffer) {
		protocol.EncodeMTime(out, count)
	})
}

// Log sends text, cut to what fits in one frame
func (r *Reporter) Log(text string) error {
	if len(text) > maxLogText {
		text = text[:maxLogText]
	}
	return r.send(func(out protocol.OutputBuffer) {
		protocol.EncodeLog(out, text)
	})
}

// Println is Log without the error, for use as a DebugWriter
func (r *Reporter) Println(text string) {
	_ = r.Log(text)
}

func (r *Reporter) send(body func(protocol.OutputBuffer)) error {
	r.out.Reset()
	if err := protocol.EncodeFrame(&r.out, r.seq, body); err != nil {
		return fmt.Errorf("encode frame: %w", err)
	}
	r.seq = (r.seq + 1) & protocol.MessageSeqMask

	if _, err := r.w.Write(r.out.Result()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}
