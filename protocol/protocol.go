// Package protocol implements the framing the firmware uses to report
// timebase readings to a host over a serial line.
//
// A frame is
//
//	len | seq | payload... | crc_hi | crc_lo | 0x7E
//
// where len counts the whole frame, the high nibble of seq is always
// MessageDest and the CRC covers len, seq and the payload. The payload is
// a sequence of messages, each a VLQ message ID followed by its arguments.
package protocol

import "errors"

// Version represents the report format version
const Version = "1"

// Frame layout constants
const (
	MessageHeaderSize  = 2
	MessageTrailerSize = 3
	MessageLengthMin   = MessageHeaderSize + MessageTrailerSize
	MessageLengthMax   = 64
	MessagePositionLen = 0
	MessagePositionSeq = 1
	MessageTrailerCRC  = 3
	MessageTrailerSync = 1
	MessageValueSync   = 0x7E
	MessageDest        = 0x10
	MessageSeqMask     = 0x0F

	// MessageMax bounds a scratch buffer holding several frames
	MessageMax = 512
)

var (
	ErrFrameLength = errors.New("frame length out of range")
	ErrFrameCRC    = errors.New("frame CRC mismatch")
	ErrFrameSync   = errors.New("frame missing trailing sync byte")
	ErrFrameDest   = errors.New("frame sequence byte has wrong destination")
)
