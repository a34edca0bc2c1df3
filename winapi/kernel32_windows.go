//go:build windows
// +build windows

package winapi

import (
	"golang.org/x/sys/windows"
)

// ListLogicalDrives returns the letters of all currently assigned
// drives, in ascending order.
func ListLogicalDrives() ([]rune, error) {
	mask, err := windows.GetLogicalDrives()
	if err != nil {
		return nil, err
	}
	return DriveLetters(mask), nil
}

// GetDriveType classifies the drive at the given root path, e.g. `C:\`.
// The native call cannot fail: unrecognized roots come back as
// DriveNoRootDir.
func GetDriveType(root string) DriveType {
	code := windows.GetDriveType(windows.StringToUTF16Ptr(root))
	return DriveTypeFromCode(code)
}

// GetDiskFreeSpaceEx queries free and total byte counts for the volume
// at the given root path.
func GetDiskFreeSpaceEx(root string) (DiskFreeSpace, error) {
	var dfs DiskFreeSpace
	err := windows.GetDiskFreeSpaceEx(
		windows.StringToUTF16Ptr(root),
		&dfs.FreeBytesAvailable,
		&dfs.TotalNumberOfBytes,
		&dfs.TotalNumberOfFreeBytes,
	)
	if err != nil {
		return DiskFreeSpace{}, err
	}
	return dfs, nil
}

// GetVolumeInformation queries the label, serial number, path limits and
// filesystem details of the volume at the given root path.
func GetVolumeInformation(root string) (VolumeInformation, error) {
	volumeName := make([]uint16, MaxVolumeNameLength+1)
	fsName := make([]uint16, MaxFileSystemNameLength+1)

	var serialNumber uint32
	var maxComponentLength uint32
	var fsFlags uint32

	err := windows.GetVolumeInformation(
		windows.StringToUTF16Ptr(root),
		&volumeName[0],
		uint32(len(volumeName)),
		&serialNumber,
		&maxComponentLength,
		&fsFlags,
		&fsName[0],
		uint32(len(fsName)),
	)
	if err != nil {
		return VolumeInformation{}, err
	}

	return VolumeInformation{
		VolumeName:             utf16ToString(volumeName),
		VolumeSerialNumber:     serialNumber,
		MaximumComponentLength: maxComponentLength,
		FileSystemFlags:        fsFlags,
		FileSystemName:         utf16ToString(fsName),
	}, nil
}
