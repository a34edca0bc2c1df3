package partitions

import (
	"syscall"
	"testing"

	"github.com/itchio/partizan/winapi"
	"github.com/stretchr/testify/assert"
)

type fakeQuerier struct {
	letters    []rune
	lettersErr error

	types    map[string]winapi.DriveType
	space    map[string]winapi.DiskFreeSpace
	spaceErr map[string]error
	vol      map[string]winapi.VolumeInformation
	volErr   map[string]error
}

var _ Querier = (*fakeQuerier)(nil)

const gib = uint64(1024 * 1024 * 1024)
const mib = uint64(1024 * 1024)

func (fq *fakeQuerier) LogicalDrives() ([]rune, error) {
	if fq.lettersErr != nil {
		return nil, fq.lettersErr
	}
	return fq.letters, nil
}

func (fq *fakeQuerier) DriveType(root string) winapi.DriveType {
	return fq.types[root]
}

func (fq *fakeQuerier) DiskFreeSpace(root string) (winapi.DiskFreeSpace, error) {
	if err := fq.spaceErr[root]; err != nil {
		return winapi.DiskFreeSpace{}, err
	}
	return fq.space[root], nil
}

func (fq *fakeQuerier) VolumeInformation(root string) (winapi.VolumeInformation, error) {
	if err := fq.volErr[root]; err != nil {
		return winapi.VolumeInformation{}, err
	}
	return fq.vol[root], nil
}

// a machine with a system drive and an empty CD-ROM drive
func twoDriveMachine() *fakeQuerier {
	return &fakeQuerier{
		letters: []rune{'C', 'D'},
		types: map[string]winapi.DriveType{
			`C:\`: winapi.DriveFixed,
			`D:\`: winapi.DriveCDROM,
		},
		space: map[string]winapi.DiskFreeSpace{
			`C:\`: {
				FreeBytesAvailable:     200 * gib,
				TotalNumberOfBytes:     500 * gib,
				TotalNumberOfFreeBytes: 210 * gib,
			},
		},
		spaceErr: map[string]error{
			`D:\`: winapi.ErrorNotReady,
		},
		vol: map[string]winapi.VolumeInformation{
			`C:\`: {
				VolumeName:             "System",
				VolumeSerialNumber:     0x1a2b3c4d,
				MaximumComponentLength: 255,
				FileSystemFlags:        0x00070022,
				FileSystemName:         "NTFS",
			},
		},
		volErr: map[string]error{
			`D:\`: winapi.ErrorNotReady,
		},
	}
}

func TestListTwoDriveMachine(t *testing.T) {
	parts, err := List(twoDriveMachine())
	assert.NoError(t, err)
	assert.Len(t, parts, 2)

	c := parts[0]
	assert.EqualValues(t, 'C', c.Letter)
	assert.EqualValues(t, winapi.DriveFixed, c.DriveType)
	assert.True(t, c.Ready)
	assert.EqualValues(t, "System", c.Name)
	assert.EqualValues(t, "NTFS", c.FileSystemName)
	assert.EqualValues(t, 500*gib, c.Size)
	assert.EqualValues(t, 210*gib, c.FreeSpace)
	assert.EqualValues(t, 0x1a2b3c4d, c.VolumeSerialNumber)
	assert.EqualValues(t, 255, c.MaxComponentLength)
	assert.True(t, c.FreeSpace <= c.Size)

	// the empty CD-ROM drive is reported, not skipped
	d := parts[1]
	assert.EqualValues(t, 'D', d.Letter)
	assert.EqualValues(t, winapi.DriveCDROM, d.DriveType)
	assert.False(t, d.Ready)
	assert.EqualValues(t, "", d.Name)
	assert.EqualValues(t, "", d.FileSystemName)
	assert.EqualValues(t, 0, d.Size)
	assert.EqualValues(t, 0, d.FreeSpace)
	assert.EqualValues(t, 0, d.VolumeSerialNumber)
}

func TestListContinuesPastNotReadyDrive(t *testing.T) {
	fq := twoDriveMachine()
	fq.letters = []rune{'C', 'D', 'E'}
	fq.types[`E:\`] = winapi.DriveRemovable
	fq.space[`E:\`] = winapi.DiskFreeSpace{
		FreeBytesAvailable:     1 * gib,
		TotalNumberOfBytes:     8 * gib,
		TotalNumberOfFreeBytes: 1 * gib,
	}
	fq.vol[`E:\`] = winapi.VolumeInformation{
		VolumeName:     "USBKEY",
		FileSystemName: "FAT32",
	}

	parts, err := List(fq)
	assert.NoError(t, err)
	assert.Len(t, parts, 3)

	// drives after the not-ready one are still enumerated
	e := parts[2]
	assert.EqualValues(t, 'E', e.Letter)
	assert.True(t, e.Ready)
	assert.EqualValues(t, "USBKEY", e.Name)
}

func TestListNotReadyVolumeInfoKeepsSizes(t *testing.T) {
	// free space answered, then the volume query reported not-ready:
	// the record keeps what it got and is marked not ready
	fq := twoDriveMachine()
	delete(fq.spaceErr, `D:\`)
	fq.space[`D:\`] = winapi.DiskFreeSpace{
		TotalNumberOfBytes:     700 * mib,
		TotalNumberOfFreeBytes: 0,
	}

	parts, err := List(fq)
	assert.NoError(t, err)
	assert.Len(t, parts, 2)

	d := parts[1]
	assert.False(t, d.Ready)
	assert.EqualValues(t, 700*mib, d.Size)
	assert.EqualValues(t, "", d.FileSystemName)
}

func TestListAbortsOnOtherErrors(t *testing.T) {
	accessDenied := syscall.Errno(5)

	fq := twoDriveMachine()
	fq.spaceErr[`D:\`] = accessDenied
	parts, err := List(fq)
	assert.Equal(t, accessDenied, err)
	assert.Nil(t, parts, "no partial results")

	fq = twoDriveMachine()
	fq.volErr[`C:\`] = accessDenied
	parts, err = List(fq)
	assert.Equal(t, accessDenied, err)
	assert.Nil(t, parts)
}

func TestListPropagatesEnumerationError(t *testing.T) {
	enumErr := syscall.Errno(1)
	parts, err := List(&fakeQuerier{lettersErr: enumErr})
	assert.Equal(t, enumErr, err)
	assert.Nil(t, parts)
}

func TestListNoDrives(t *testing.T) {
	parts, err := List(&fakeQuerier{})
	assert.NoError(t, err)
	assert.NotNil(t, parts)
	assert.Empty(t, parts)
}

func TestListIsIdempotent(t *testing.T) {
	fq := twoDriveMachine()

	first, err := List(fq)
	assert.NoError(t, err)
	second, err := List(fq)
	assert.NoError(t, err)

	assert.EqualValues(t, first, second)
}
