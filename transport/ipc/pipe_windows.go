//go:build windows

package ipc

import (
	"fmt"
	"net"

	"github.com/Microsoft/go-winio"
)

const pipePattern = `\\?\pipe\discord-ipc-%d`

// NamedPipeTransport connects over the Windows named pipes the peer
// listens on.
type NamedPipeTransport struct {
	netTransport
}

func newPlatformTransport() Transport {
	return &NamedPipeTransport{}
}

func (t *NamedPipeTransport) Connect() error {
	conn, err := probeCandidates(func(i int) (net.Conn, error) {
		return winio.DialPipe(fmt.Sprintf(pipePattern, i), nil)
	})
	if err != nil {
		return err
	}
	t.conn = conn
	return nil
}
