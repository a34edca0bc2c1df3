//go:build windows
// +build windows

package system

import (
	"github.com/itchio/partizan/winapi"
	"github.com/pkg/errors"
)

// StatFS reports free space as seen by the calling process, so quotas
// are accounted for.
func StatFS(path string) (*StatFSResult, error) {
	dfs, err := winapi.GetDiskFreeSpaceEx(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	res := &StatFSResult{
		// XXX: cast hygiene
		FreeSize:  int64(dfs.FreeBytesAvailable),
		TotalSize: int64(dfs.TotalNumberOfBytes),
	}
	return res, nil
}
