package ipc

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
)

// Conn is a connected, handshaken IPC client. It owns its Transport
// exclusively from Dial until Close and must only be used from a single
// goroutine.
type Conn struct {
	clientID string
	t        Transport
	state    State
	log      *slog.Logger
}

// Dial selects the platform transport, connects and performs the
// handshake. It returns a Conn only in the Ready state.
func Dial(clientID string, logger *slog.Logger) (*Conn, error) {
	return NewConn(clientID, newPlatformTransport(), logger)
}

// NewConn is Dial over a caller-supplied transport.
func NewConn(clientID string, t Transport, logger *slog.Logger) (*Conn, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	c := &Conn{clientID: clientID, t: t, state: StateConnecting, log: logger}

	if err := t.Connect(); err != nil {
		c.state = StateFailed
		return nil, fmt.Errorf("ipc: connect: %w", err)
	}
	c.state = StateHandshaking
	if err := performHandshake(t, clientID); err != nil {
		c.state = StateFailed
		// A Close reply means the handshake already released the transport.
		var hs *HandshakeError
		if !(errors.As(err, &hs) && hs.Op == OpClose) {
			_ = t.Close()
		}
		return nil, err
	}
	c.state = StateReady
	logger.Info("ipc connected", "client_id", clientID)
	return c, nil
}

// State reports the connection lifecycle state.
func (c *Conn) State() State { return c.state }

// ClientID returns the application identity the connection was dialed
// with.
func (c *Conn) ClientID() string { return c.clientID }

// Send encodes payload under op and writes the frame. The write blocks
// until the transport has accepted every byte.
func (c *Conn) Send(op OpCode, payload any) error {
	if c.state != StateReady {
		return ErrConnectionClosed
	}
	frame, err := EncodeFrame(op, payload)
	if err != nil {
		return err
	}
	if err := c.t.Write(frame); err != nil {
		c.state = StateFailed
		return fmt.Errorf("ipc: send: %w", err)
	}
	c.log.Debug("frame sent", "op", op, "len", len(frame)-headerSize)
	return nil
}

// Recv blocks until a complete frame arrives and returns its opcode and
// validated JSON payload. Frames arrive in the order the peer sent them.
func (c *Conn) Recv() (OpCode, json.RawMessage, error) {
	if c.state != StateReady {
		return 0, nil, ErrConnectionClosed
	}
	op, payload, err := recvFrame(c.t)
	if err != nil {
		c.state = StateFailed
		return 0, nil, err
	}
	c.log.Debug("frame received", "op", op, "len", len(payload))
	return op, payload, nil
}

// SetRecvDeadline bounds the next Recv so a caller can abort a blocked
// read. A zero time removes the bound. A Recv that hits the deadline is
// fatal to the connection, as frame alignment is no longer guaranteed.
func (c *Conn) SetRecvDeadline(deadline time.Time) error {
	if c.state != StateReady {
		return ErrConnectionClosed
	}
	return c.t.SetReadDeadline(deadline)
}

// SendRecv sends one frame and waits for the reply. The protocol is
// strictly half-duplex per exchange; pipelining is not supported.
func (c *Conn) SendRecv(op OpCode, payload any) (OpCode, json.RawMessage, error) {
	if err := c.Send(op, payload); err != nil {
		return 0, nil, err
	}
	return c.Recv()
}

// SetActivity publishes a presence payload. The activity is wrapped in the
// SET_ACTIVITY envelope with this process's pid and a fresh nonce; no
// acknowledgement is awaited.
func (c *Conn) SetActivity(activity any) error {
	payload := map[string]any{
		"cmd": "SET_ACTIVITY",
		"args": map[string]any{
			"pid":      os.Getpid(),
			"activity": activity,
		},
		"nonce": uuid.NewString(),
	}
	return c.Send(OpFrame, payload)
}

// Close sends a best-effort Close frame and then unconditionally releases
// the transport. A failed Close-frame send is logged, never propagated:
// the transport may already be broken, and the OS resource must be
// released on every exit path regardless.
func (c *Conn) Close() error {
	if c.state == StateClosed {
		return nil
	}
	if c.state == StateReady {
		if err := c.Send(OpClose, struct{}{}); err != nil {
			c.log.Warn("close frame not delivered", "error", err)
		}
	}
	c.state = StateClosed
	return c.t.Close()
}

// recvFrame reads one complete frame: the 8-byte header, then exactly the
// announced number of payload bytes.
func recvFrame(t Transport) (OpCode, json.RawMessage, error) {
	header, err := readExactly(t, headerSize)
	if err != nil {
		return 0, nil, err
	}
	op, length, err := DecodeHeader(header)
	if err != nil {
		return 0, nil, err
	}
	body, err := readExactly(t, int(length))
	if err != nil {
		return 0, nil, err
	}
	payload, err := DecodePayload(body)
	if err != nil {
		return 0, nil, err
	}
	return op, payload, nil
}
