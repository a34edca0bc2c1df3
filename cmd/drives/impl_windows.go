//go:build windows
// +build windows

package drives

import (
	"github.com/itchio/partizan/comm"
	"github.com/itchio/partizan/mansion"
	"github.com/itchio/partizan/winapi"
)

func Do(ctx *mansion.Context) error {
	letters, err := winapi.ListLogicalDrives()
	if err != nil {
		return err
	}

	for _, letter := range letters {
		root := winapi.RootPath(letter)
		driveType := winapi.GetDriveType(root)

		if ctx.JSON {
			comm.Result(&mansion.DriveResult{
				Type:      "drive",
				Letter:    string(letter),
				DriveType: driveType.String(),
			})
		} else {
			comm.Logf("%s (%s)", root, driveType)
		}
	}

	comm.Statf("%d drives", len(letters))
	return nil
}
