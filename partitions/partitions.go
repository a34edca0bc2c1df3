// Package partitions enumerates the logical drives of a Windows machine
// and describes each one: drive type, volume label, filesystem, sizes.
//
// Enumeration is all-or-nothing. The one tolerated per-drive failure is
// the not-ready error a removable drive reports when its slot is empty:
// such drives still get a record, marked Ready == false. Any other error
// aborts the whole listing, so callers never see partial results.
package partitions

import (
	"errors"

	"github.com/itchio/partizan/winapi"
)

// ErrUnsupported is returned by ListSystem on platforms without
// logical drives.
var ErrUnsupported = errors.New("partition enumeration is not supported on this platform")

// A Partition describes one logical drive.
type Partition struct {
	// Letter is the drive letter, 'A' through 'Z'
	Letter rune

	DriveType winapi.DriveType

	// Ready is false when the drive has no media in it, e.g. an empty
	// CD-ROM drive. Not-ready drives report zero values for all the
	// fields their queries would have filled.
	Ready bool

	// Name is the volume label, possibly empty
	Name string

	FileSystemName string

	// Size is the total capacity in bytes
	Size uint64

	// FreeSpace is the total unallocated space in bytes
	FreeSpace uint64

	VolumeSerialNumber uint32
	MaxComponentLength uint32
	FileSystemFlags    uint32
}

// A Querier answers the drive queries List needs. The live
// implementation is SystemQuerier; tests substitute fakes.
type Querier interface {
	LogicalDrives() ([]rune, error)
	DriveType(root string) winapi.DriveType
	DiskFreeSpace(root string) (winapi.DiskFreeSpace, error)
	VolumeInformation(root string) (winapi.VolumeInformation, error)
}

// List builds one Partition record per assigned drive letter, in
// ascending letter order.
func List(q Querier) ([]Partition, error) {
	letters, err := q.LogicalDrives()
	if err != nil {
		return nil, err
	}

	parts := make([]Partition, 0, len(letters))
	for _, letter := range letters {
		root := winapi.RootPath(letter)

		p := Partition{
			Letter:    letter,
			DriveType: q.DriveType(root),
			Ready:     true,
		}

		dfs, err := q.DiskFreeSpace(root)
		switch {
		case err == nil:
			p.Size = dfs.TotalNumberOfBytes
			p.FreeSpace = dfs.TotalNumberOfFreeBytes
		case winapi.IsNotReady(err):
			p.Ready = false
		default:
			return nil, err
		}

		vi, err := q.VolumeInformation(root)
		switch {
		case err == nil:
			p.Name = vi.VolumeName
			p.FileSystemName = vi.FileSystemName
			p.VolumeSerialNumber = vi.VolumeSerialNumber
			p.MaxComponentLength = vi.MaximumComponentLength
			p.FileSystemFlags = vi.FileSystemFlags
		case winapi.IsNotReady(err):
			p.Ready = false
		default:
			return nil, err
		}

		parts = append(parts, p)
	}

	return parts, nil
}
