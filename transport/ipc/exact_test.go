package ipc

import (
	"bytes"
	"errors"
	"testing"
	"time"
)

// chunkTransport serves a fixed buffer in caller-defined chunk sizes and
// reports ErrConnectionClosed once drained.
type chunkTransport struct {
	data   *bytes.Buffer
	chunks []int
	call   int
}

func (c *chunkTransport) Connect() error { return nil }

func (c *chunkTransport) Write(p []byte) error { return nil }

func (c *chunkTransport) Read(max int) ([]byte, error) {
	if c.data.Len() == 0 {
		return nil, ErrConnectionClosed
	}
	n := max
	if c.call < len(c.chunks) && c.chunks[c.call] < n {
		n = c.chunks[c.call]
	}
	c.call++
	buf := make([]byte, n)
	m, _ := c.data.Read(buf)
	return buf[:m], nil
}

func (c *chunkTransport) SetReadDeadline(time.Time) error { return nil }

func (c *chunkTransport) Close() error { return nil }

func TestReadExactlyReassemblesShortReads(t *testing.T) {
	payload := []byte("0123456789abcdef")

	whole := &chunkTransport{data: bytes.NewBuffer(append([]byte(nil), payload...))}
	all, err := readExactly(whole, len(payload))
	if err != nil {
		t.Fatalf("readExactly (single read): %v", err)
	}

	short := &chunkTransport{
		data:   bytes.NewBuffer(append([]byte(nil), payload...)),
		chunks: []int{1, 3, 2},
	}
	pieced, err := readExactly(short, len(payload))
	if err != nil {
		t.Fatalf("readExactly (chunked): %v", err)
	}

	if !bytes.Equal(all, pieced) {
		t.Fatalf("chunked reassembly mismatch: %q vs %q", all, pieced)
	}
	if !bytes.Equal(pieced, payload) {
		t.Fatalf("got %q, want %q", pieced, payload)
	}
}

func TestReadExactlyPeerClosedMidFrame(t *testing.T) {
	short := &chunkTransport{data: bytes.NewBufferString("abc")}
	_, err := readExactly(short, 8)
	if !errors.Is(err, ErrConnectionClosed) {
		t.Fatalf("got %v, want ErrConnectionClosed", err)
	}
}
