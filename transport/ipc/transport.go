package ipc

import (
	"errors"
	"io"
	"net"
	"time"
)

// candidateCount is the number of well-known addresses probed in order
// during connection establishment, on both platforms.
const candidateCount = 10

// Transport is the capability set the rest of the package is written
// against. Exactly one concrete transport exists per Conn, selected once
// at construction based on the host platform.
type Transport interface {
	// Connect probes the candidate addresses in order and retains the
	// first that accepts. It returns ErrNoCandidate when all ten fail.
	Connect() error

	// Write blocks until all of p has been handed to the OS or an error
	// occurs. Partial writes never return success.
	Write(p []byte) error

	// Read performs a single read attempt returning between 1 and max
	// bytes. A closed peer surfaces as ErrConnectionClosed; Read never
	// loops to fill max.
	Read(max int) ([]byte, error)

	// SetReadDeadline bounds subsequent Read calls. A zero time removes
	// the bound.
	SetReadDeadline(t time.Time) error

	// Close releases the underlying OS handle.
	Close() error
}

// probeCandidates tries open for indices 0..candidateCount-1 and returns
// the first connection that succeeds. Indices after the first success are
// never probed.
func probeCandidates(open func(i int) (net.Conn, error)) (net.Conn, error) {
	for i := 0; i < candidateCount; i++ {
		c, err := open(i)
		if err != nil {
			continue
		}
		return c, nil
	}
	return nil, ErrNoCandidate
}

// netTransport adapts a dialed net.Conn to the Transport contract. Both
// platform transports embed it once Connect has picked a candidate.
type netTransport struct {
	conn net.Conn
}

func (t *netTransport) Write(p []byte) error {
	if t.conn == nil {
		return ErrConnectionClosed
	}
	// net.Conn.Write already blocks until the full buffer is accepted.
	if _, err := t.conn.Write(p); err != nil {
		return err
	}
	return nil
}

func (t *netTransport) Read(max int) ([]byte, error) {
	if t.conn == nil {
		return nil, ErrConnectionClosed
	}
	buf := make([]byte, max)
	n, err := t.conn.Read(buf)
	if n > 0 {
		return buf[:n], nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return nil, ErrConnectionClosed
	}
	return nil, err
}

func (t *netTransport) SetReadDeadline(deadline time.Time) error {
	if t.conn == nil {
		return ErrConnectionClosed
	}
	return t.conn.SetReadDeadline(deadline)
}

func (t *netTransport) Close() error {
	if t.conn == nil {
		return nil
	}
	err := t.conn.Close()
	t.conn = nil
	return err
}
