//go:build windows
// +build windows

package partitions

import (
	"github.com/itchio/partizan/winapi"
)

// SystemQuerier asks the OS, via the kernel32 wrappers in winapi.
type SystemQuerier struct{}

var _ Querier = SystemQuerier{}

func (SystemQuerier) LogicalDrives() ([]rune, error) {
	return winapi.ListLogicalDrives()
}

func (SystemQuerier) DriveType(root string) winapi.DriveType {
	return winapi.GetDriveType(root)
}

func (SystemQuerier) DiskFreeSpace(root string) (winapi.DiskFreeSpace, error) {
	return winapi.GetDiskFreeSpaceEx(root)
}

func (SystemQuerier) VolumeInformation(root string) (winapi.VolumeInformation, error) {
	return winapi.GetVolumeInformation(root)
}

// ListSystem lists the partitions of the machine we're running on.
func ListSystem() ([]Partition, error) {
	return List(SystemQuerier{})
}
