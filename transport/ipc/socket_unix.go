//go:build !windows

package ipc

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
)

const socketPattern = "discord-ipc-%d"

// runtimeDirEnv is checked in order; the first variable that is set names
// the directory holding the peer's sockets.
var runtimeDirEnv = []string{"XDG_RUNTIME_DIR", "TMPDIR", "TMP", "TEMP"}

const runtimeDirFallback = "/tmp"

// UnixSocketTransport connects over the Unix domain sockets the peer
// listens on.
type UnixSocketTransport struct {
	netTransport
}

func newPlatformTransport() Transport {
	return &UnixSocketTransport{}
}

func (t *UnixSocketTransport) Connect() error {
	dir := runtimeDir()
	conn, err := probeCandidates(func(i int) (net.Conn, error) {
		path := filepath.Join(dir, fmt.Sprintf(socketPattern, i))
		if _, err := os.Stat(path); err != nil {
			return nil, err
		}
		return net.Dial("unix", path)
	})
	if err != nil {
		return err
	}
	t.conn = conn
	return nil
}

func runtimeDir() string {
	for _, key := range runtimeDirEnv {
		if dir := os.Getenv(key); dir != "" {
			return dir
		}
	}
	return runtimeDirFallback
}
