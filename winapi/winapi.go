// Package winapi wraps the handful of kernel32 calls partizan needs to
// enumerate logical drives and query volumes. The wrappers are thin on
// purpose: they surface platform error codes verbatim and leave policy
// (like tolerating drives that aren't ready) to callers.
package winapi

import (
	"errors"
	"fmt"
	"syscall"
	"unicode/utf16"
)

// ErrorNotReady is the platform error code for a drive that has no media
// in it, e.g. an empty CD-ROM or card reader slot (ERROR_NOT_READY).
const ErrorNotReady = syscall.Errno(21)

// IsNotReady tells whether err is the not-ready platform error.
func IsNotReady(err error) bool {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno == ErrorNotReady
	}
	return false
}

// Documented maxima for the text fields of GetVolumeInformationW.
// Call sites allocate one extra slot for the terminating NUL.
const (
	MaxVolumeNameLength     = 32
	MaxFileSystemNameLength = 255
)

// DriveType is the return value of GetDriveTypeW.
type DriveType uint32

const (
	DriveUnknown   DriveType = 0
	DriveNoRootDir DriveType = 1
	DriveRemovable DriveType = 2
	DriveFixed     DriveType = 3
	DriveRemote    DriveType = 4
	DriveCDROM     DriveType = 5
	DriveRAMDisk   DriveType = 6
)

// DriveTypeFromCode maps a raw GetDriveTypeW return value to a DriveType.
// The native call documents exactly the codes 0 through 6. Anything else
// means we're talking to an API we don't understand, so this panics
// instead of quietly returning DriveUnknown (0 is itself a valid code).
func DriveTypeFromCode(code uint32) DriveType {
	if code > uint32(DriveRAMDisk) {
		panic(fmt.Sprintf("invalid drive type code: %d", code))
	}
	return DriveType(code)
}

func (dt DriveType) String() string {
	switch dt {
	case DriveUnknown:
		return "unknown"
	case DriveNoRootDir:
		return "no-root-dir"
	case DriveRemovable:
		return "removable"
	case DriveFixed:
		return "fixed"
	case DriveRemote:
		return "remote"
	case DriveCDROM:
		return "cd-rom"
	case DriveRAMDisk:
		return "ram-disk"
	default:
		return fmt.Sprintf("DriveType(%d)", uint32(dt))
	}
}

// DriveLetters decodes a logical-drive bitmask into uppercase drive
// letters, in ascending order. Bit 0 is A:, bit 25 is Z:, higher bits
// are ignored.
func DriveLetters(mask uint32) []rune {
	var letters []rune
	for bit := 0; bit < 26; bit++ {
		if mask&(1<<uint(bit)) != 0 {
			letters = append(letters, 'A'+rune(bit))
		}
	}
	return letters
}

// RootPath returns the root path for a drive letter, e.g. `C:\`
func RootPath(letter rune) string {
	return string(letter) + `:\`
}

// DiskFreeSpace is the result of GetDiskFreeSpaceExW: three independent
// 64-bit byte counts. FreeBytesAvailable accounts for quotas and can be
// lower than TotalNumberOfFreeBytes.
type DiskFreeSpace struct {
	FreeBytesAvailable     uint64
	TotalNumberOfBytes     uint64
	TotalNumberOfFreeBytes uint64
}

// VolumeInformation is the result of GetVolumeInformationW, with both
// text buffers already decoded.
type VolumeInformation struct {
	VolumeName             string
	VolumeSerialNumber     uint32
	MaximumComponentLength uint32
	FileSystemFlags        uint32
	FileSystemName         string
}

// utf16ToString decodes a NUL-terminated UTF-16 buffer, replacing any
// invalid sequences rather than failing.
func utf16ToString(buf []uint16) string {
	for i, c := range buf {
		if c == 0 {
			buf = buf[:i]
			break
		}
	}
	return string(utf16.Decode(buf))
}
