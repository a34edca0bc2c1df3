//go:build windows
// +build windows

package drives

import (
	"github.com/itchio/partizan/partizand"
	"github.com/itchio/partizan/winapi"
)

func DrivesListHandler(rc *partizand.RequestContext, params partizand.DrivesListParams) (*partizand.DrivesListResult, error) {
	letters, err := winapi.ListLogicalDrives()
	if err != nil {
		return nil, err
	}

	res := &partizand.DrivesListResult{}
	for _, letter := range letters {
		res.Drives = append(res.Drives, partizand.Drive{
			Letter:    string(letter),
			DriveType: winapi.GetDriveType(winapi.RootPath(letter)).String(),
		})
	}
	return res, nil
}
