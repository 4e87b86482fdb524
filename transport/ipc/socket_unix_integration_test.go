//go:build !windows

package ipc

import (
	"encoding/binary"
	"encoding/json"
	"errors"
	"io"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// servePeer accepts one connection, answers the handshake with READY, and
// then echoes nothing further.
func servePeer(t *testing.T, ln net.Listener) {
	t.Helper()
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()

		header := make([]byte, headerSize)
		if _, err := io.ReadFull(conn, header); err != nil {
			return
		}
		length := binary.LittleEndian.Uint32(header[4:8])
		body := make([]byte, length)
		if _, err := io.ReadFull(conn, body); err != nil {
			return
		}

		var req handshakeRequest
		if err := json.Unmarshal(body, &req); err != nil || req.V != 1 {
			return
		}
		reply, _ := EncodeFrame(OpFrame, map[string]any{
			"cmd":   "DISPATCH",
			"data":  map[string]any{},
			"evt":   "READY",
			"nonce": nil,
		})
		conn.Write(reply)

		// Drain whatever the client sends until it hangs up.
		io.Copy(io.Discard, conn)
	}()
}

func TestUnixSocketTransportConnectAndHandshake(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", dir)

	// Candidates 0..2 do not exist; index 3 listens.
	ln, err := net.Listen("unix", filepath.Join(dir, "discord-ipc-3"))
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	servePeer(t, ln)

	conn, err := NewConn("1234", &UnixSocketTransport{}, nil)
	if err != nil {
		t.Fatalf("NewConn: %v", err)
	}
	if conn.State() != StateReady {
		t.Fatalf("state = %s, want ready", conn.State())
	}
	if err := conn.SetActivity(map[string]any{"state": "testing"}); err != nil {
		t.Fatalf("SetActivity: %v", err)
	}
	if err := conn.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestRecvDeadlineAbortsBlockedRead(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_RUNTIME_DIR", dir)

	ln, err := net.Listen("unix", filepath.Join(dir, "discord-ipc-0"))
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()
	servePeer(t, ln)

	conn, err := NewConn("1234", &UnixSocketTransport{}, nil)
	if err != nil {
		t.Fatalf("NewConn: %v", err)
	}
	defer conn.Close()

	// The peer sends nothing after READY; the deadline must unblock Recv.
	if err := conn.SetRecvDeadline(time.Now().Add(50 * time.Millisecond)); err != nil {
		t.Fatalf("SetRecvDeadline: %v", err)
	}
	if _, _, err := conn.Recv(); !errors.Is(err, os.ErrDeadlineExceeded) {
		t.Fatalf("Recv = %v, want deadline exceeded", err)
	}
	if conn.State() != StateFailed {
		t.Fatalf("state = %s, want failed", conn.State())
	}
}

func TestUnixSocketTransportNoCandidates(t *testing.T) {
	t.Setenv("XDG_RUNTIME_DIR", t.TempDir())

	tr := &UnixSocketTransport{}
	if err := tr.Connect(); err == nil {
		t.Fatal("Connect succeeded with no sockets present")
	} else if err != ErrNoCandidate {
		t.Fatalf("got %v, want ErrNoCandidate", err)
	}
}
