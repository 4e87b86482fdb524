package ipc

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrNoCandidate is returned by Connect when none of the ten
	// well-known transport addresses accepted a connection.
	ErrNoCandidate = errors.New("ipc: no candidate available")

	// ErrConnectionClosed is returned when the peer hangs up mid-frame or
	// the connection is used after Close.
	ErrConnectionClosed = errors.New("ipc: connection closed")
)

// HandshakeError reports a rejected or unexpected handshake response.
// Payload holds the raw payload the peer sent, for diagnostics.
type HandshakeError struct {
	Op      OpCode
	Payload json.RawMessage
}

func (e *HandshakeError) Error() string {
	return fmt.Sprintf("ipc: handshake rejected (op=%s): %s", e.Op, e.Payload)
}

// FramingError reports a malformed frame header.
type FramingError struct {
	Reason string
}

func (e *FramingError) Error() string {
	return "ipc: bad frame header: " + e.Reason
}

// DecodeError reports a payload that is not valid UTF-8 JSON.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return "ipc: bad payload: " + e.Err.Error()
}

func (e *DecodeError) Unwrap() error { return e.Err }
