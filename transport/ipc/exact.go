package ipc

// readExactly assembles exactly n bytes from a transport that may return
// short reads. This is the only place in the package that compensates for
// them; everything else assumes exact-length reads succeed or fail cleanly.
// A peer hanging up before n bytes arrive is ErrConnectionClosed.
func readExactly(t Transport, n int) ([]byte, error) {
	buf := make([]byte, 0, n)
	for len(buf) < n {
		chunk, err := t.Read(n - len(buf))
		if err != nil {
			return nil, err
		}
		if len(chunk) == 0 {
			return nil, ErrConnectionClosed
		}
		buf = append(buf, chunk...)
	}
	return buf, nil
}
