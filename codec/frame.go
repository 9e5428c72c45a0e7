package codec

import (
	"encoding/binary"
	"errors"
)

// HeaderSize is the size of the frame length header in bytes.
const HeaderSize = 8

var (
	ErrTruncatedHeader  = errors.New("Frame header is truncated.")
	ErrTruncatedPayload = errors.New("Frame payload is shorter than its header claims.")
)

/*
 * A frame is the payload prefixed with its exact length as a big-endian
 * uint64. The header lets the decoder cut the payload out of the padded
 * pixel data without guessing where it ends, so payloads which legitimately
 * end with zero bytes survive the round trip. Stripping trailing zeroes
 * instead would corrupt them.
 */
func EncodeFrame(payload []byte) []byte {
	frame := make([]byte, HeaderSize+len(payload))
	binary.BigEndian.PutUint64(frame, uint64(len(payload)))
	copy(frame[HeaderSize:], payload)
	return frame
}

func DecodeFrame(data []byte) ([]byte, error) {
	if len(data) < HeaderSize {
		return nil, ErrTruncatedHeader
	}
	length := binary.BigEndian.Uint64(data[:HeaderSize])
	if uint64(len(data)-HeaderSize) < length {
		return nil, ErrTruncatedPayload
	}
	// anything past 8+length is padding and is never inspected
	return data[HeaderSize : HeaderSize+int(length)], nil
}
