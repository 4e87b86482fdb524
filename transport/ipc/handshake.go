package ipc

import (
	"encoding/json"
	"fmt"
)

type handshakeRequest struct {
	V        int    `json:"v"`
	ClientID string `json:"client_id"`
}

type handshakeReply struct {
	Cmd string `json:"cmd"`
	Evt string `json:"evt"`
}

// performHandshake drives the mandatory first exchange over an established
// transport: send the version/identity frame, receive one frame, accept
// only a DISPATCH/READY dispatch. It runs exactly once per connection and
// is never retried.
//
// A Close reply means the peer rejected us outright; the transport is
// closed before the error is returned. Every other rejection leaves the
// transport to the caller.
func performHandshake(t Transport, clientID string) error {
	frame, err := EncodeFrame(OpHandshake, handshakeRequest{V: 1, ClientID: clientID})
	if err != nil {
		return err
	}
	if err := t.Write(frame); err != nil {
		return fmt.Errorf("ipc: handshake send: %w", err)
	}

	op, payload, err := recvFrame(t)
	if err != nil {
		return fmt.Errorf("ipc: handshake recv: %w", err)
	}
	if op == OpClose {
		_ = t.Close()
		return &HandshakeError{Op: op, Payload: payload}
	}
	var reply handshakeReply
	if op == OpFrame {
		if err := json.Unmarshal(payload, &reply); err != nil {
			return &DecodeError{Err: err}
		}
		if reply.Cmd == "DISPATCH" && reply.Evt == "READY" {
			return nil
		}
	}
	return &HandshakeError{Op: op, Payload: payload}
}
