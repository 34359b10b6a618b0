package protocol

import "fmt"

// Message IDs carried in frame payloads
const (
	MsgMTime = 1 // count_lo=%u count_hi=%u
	MsgLog   = 2 // text=%s
)

// Message is a decoded payload entry
type Message struct {
	ID    uint32
	MTime uint64 // MsgMTime
	Text  string // MsgLog
}

// EncodeMTime writes an mtime report. The 64-bit count is split into two
// 32-bit VLQs, low word first.
func EncodeMTime(output OutputBuffer, count uint64) {
	EncodeVLQUint(output, MsgMTime)
	EncodeVLQUint(output, uint32(count))
	EncodeVLQUint(output, uint32(count>>32))
}

// EncodeLog writes a text message
func EncodeLog(output OutputBuffer, text string) {
	EncodeVLQUint(output, MsgLog)
	EncodeVLQString(output, text)
}

// DecodeMessages decodes every message in a frame payload
func DecodeMessages(payload []byte) ([]Message, error) {
	var msgs []Message
	for len(payload) > 0 {
		id, err := DecodeVLQUint(&payload)
		if err != nil {
			return msgs, fmt.Errorf("message id: %w", err)
		}

		msg := Message{ID: id}
		switch id {
		case MsgMTime:
			lo, err := DecodeVLQUint(&payload)
			if err != nil {
				return msgs, fmt.Errorf("mtime count_lo: %w", err)
			}
			hi, err := DecodeVLQUint(&payload)
			if err != nil {
				return msgs, fmt.Errorf("mtime count_hi: %w", err)
			}
			msg.MTime = uint64(hi)<<32 | uint64(lo)
		case MsgLog:
			text, err := DecodeVLQString(&payload)
			if err != nil {
				return msgs, fmt.Errorf("log text: %w", err)
			}
			msg.Text = text
		default:
			return msgs, fmt.Errorf("unknown message id %d", id)
		}
		msgs = append(msgs, msg)
	}
	return msgs, nil
}
