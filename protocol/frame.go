package protocol

import "errors"

// Frame is one validated frame with header and trailer stripped
type Frame struct {
	Seq     uint8
	Payload []byte
}

// EncodeFrame appends a complete frame to output. body writes the
// payload; seq is masked into the low nibble of the sequence byte.
// If the payload is too long it returns ErrFrameLength and the output
// holds a partial frame that must be discarded.
func EncodeFrame(output OutputBuffer, seq uint8, body func(output OutputBuffer)) error {
	cursor := output.CurPosition()

	output.Output([]byte{0, MessageDest | (seq & MessageSeqMask)})
	if body != nil {
		body(output)
	}

	msgLen := len(output.DataSince(cursor)) + MessageTrailerSize
	if msgLen > MessageLengthMax {
		return ErrFrameLength
	}
	output.Update(cursor, uint8(msgLen))

	crc := CRC16(output.DataSince(cursor))
	output.Output([]byte{
		uint8(crc >> 8),
		uint8(crc & 0xFF),
		MessageValueSync,
	})
	return nil
}

// Decoder splits a byte stream into frames. After a corrupt frame it
// drops input up to the next sync byte and carries on.
type Decoder struct {
	buf          *FifoBuffer
	synchronized bool

	// Errors counts frames discarded for a bad length, destination,
	// trailer or CRC
	Errors int
}

// NewDecoder returns a decoder that starts synchronized
func NewDecoder() *Decoder {
	return &Decoder{
		buf:          NewFifoBuffer(MessageMax),
		synchronized: true,
	}
}

// Feed adds received bytes and returns every complete frame they finish.
// Bytes that do not fit in the buffer are returned as the count dropped.
func (d *Decoder) Feed(data []byte) (frames []Frame, dropped int) {
	for len(data) > 0 {
		n := d.buf.Write(data)
		data = data[n:]
		frames = append(frames, d.drain()...)
		if n == 0 {
			// A full buffer that yields no frame holds only garbage
			d.buf.Reset()
			d.synchronized = false
			dropped += len(data)
			break
		}
	}
	return frames, dropped
}

func (d *Decoder) drain() []Frame {
	var frames []Frame
	data := d.buf.Data()
	start := len(data)

	for len(data) > 0 {
		if !d.synchronized {
			i := 0
			for i < len(data) && data[i] != MessageValueSync {
				i++
			}
			if i == len(data) {
				data = nil
				break
			}
			data = data[i+1:]
			d.synchronized = true
			continue
		}

		if data[0] == MessageValueSync {
			data = data[1:]
			continue
		}
		if len(data) < MessageLengthMin {
			break
		}

		frame, err := d.parse(data)
		if err == errShortFrame {
			break
		}
		if err != nil {
			d.Errors++
			d.synchronized = false
			continue
		}

		frames = append(frames, frame)
		data = data[data[MessagePositionLen]:]
	}

	d.buf.Pop(start - len(data))
	return frames
}

// errShortFrame means the frame header is valid but the rest has not
// arrived yet
var errShortFrame = errors.New("frame incomplete")

func (d *Decoder) parse(data []byte) (Frame, error) {
	msgLen := int(data[MessagePositionLen])
	if msgLen < MessageLengthMin || msgLen > MessageLengthMax {
		return Frame{}, ErrFrameLength
	}

	seq := data[MessagePositionSeq]
	if seq&^MessageSeqMask != MessageDest {
		return Frame{}, ErrFrameDest
	}

	if len(data) < msgLen {
		return Frame{}, errShortFrame
	}

	if data[msgLen-MessageTrailerSync] != MessageValueSync {
		return Frame{}, ErrFrameSync
	}

	frameCRC := uint16(data[msgLen-MessageTrailerCRC])<<8 |
		uint16(data[msgLen-MessageTrailerCRC+1])
	if frameCRC != CRC16(data[:msgLen-MessageTrailerSize]) {
		return Frame{}, ErrFrameCRC
	}

	payload := make([]byte, msgLen-MessageLengthMin)
	copy(payload, data[MessageHeaderSize:msgLen-MessageTrailerSize])
	return Frame{Seq: seq & MessageSeqMask, Payload: payload}, nil
}
