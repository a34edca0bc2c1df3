//go:build !windows
// +build !windows

package daemon

import (
	"fmt"
	"net"
)

func listenPipe(path string) (net.Listener, error) {
	return nil, fmt.Errorf("the named pipe transport is only available on windows")
}
