//go:build windows
// +build windows

package daemon

import (
	"net"

	npipe "gopkg.in/natefinch/npipe.v2"
)

func listenPipe(path string) (net.Listener, error) {
	return npipe.Listen(path)
}
