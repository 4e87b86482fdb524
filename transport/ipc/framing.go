package ipc

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"unicode/utf8"
)

// headerSize is the fixed frame header: opcode uint32 LE, length uint32 LE.
const headerSize = 8

// maxPayload bounds decoded frames. The peer never sends anything close to
// this; a larger length means a corrupted header.
const maxPayload = 10 * 1024 * 1024

// EncodeFrame serializes payload as compact JSON and prefixes the 8-byte
// header. Encoding never fails for well-formed in-memory values.
func EncodeFrame(op OpCode, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("ipc: encode payload: %w", err)
	}
	buf := make([]byte, headerSize+len(body))
	binary.LittleEndian.PutUint32(buf[0:4], uint32(op))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(len(body)))
	copy(buf[headerSize:], body)
	return buf, nil
}

// DecodeHeader interprets exactly 8 bytes as opcode and payload length.
func DecodeHeader(b []byte) (OpCode, uint32, error) {
	if len(b) < headerSize {
		return 0, 0, &FramingError{Reason: fmt.Sprintf("got %d bytes, want %d", len(b), headerSize)}
	}
	op := OpCode(binary.LittleEndian.Uint32(b[0:4]))
	length := binary.LittleEndian.Uint32(b[4:8])
	if op > OpPong {
		return 0, 0, &FramingError{Reason: fmt.Sprintf("unknown opcode %d", uint32(op))}
	}
	if length > maxPayload {
		return 0, 0, &FramingError{Reason: fmt.Sprintf("payload length %d exceeds limit", length)}
	}
	return op, length, nil
}

// DecodePayload validates b as UTF-8 JSON and returns it untouched.
// Invalid input is surfaced as a DecodeError, never silently defaulted.
func DecodePayload(b []byte) (json.RawMessage, error) {
	if !utf8.Valid(b) {
		return nil, &DecodeError{Err: fmt.Errorf("invalid utf-8")}
	}
	if !json.Valid(b) {
		return nil, &DecodeError{Err: fmt.Errorf("invalid json")}
	}
	return json.RawMessage(b), nil
}
