//go:build !windows
// +build !windows

package system

import (
	"syscall"

	"github.com/pkg/errors"
)

// StatFS reports free space as seen by the calling process.
func StatFS(path string) (*StatFSResult, error) {
	var stats syscall.Statfs_t
	err := syscall.Statfs(path, &stats)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// XXX: bad cast hygiene. For very, very, very, very
	// large volumes, this will overflow.
	bsize := int64(stats.Bsize)
	res := &StatFSResult{
		FreeSize:  int64(stats.Bavail) * bsize,
		TotalSize: int64(stats.Blocks) * bsize,
	}
	return res, nil
}
