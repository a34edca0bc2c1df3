package winapi

import (
	"fmt"
	"io"
	"syscall"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestDriveLetters(t *testing.T) {
	assert.Empty(t, DriveLetters(0))

	// bit 0 is A:, bit 2 is C:
	assert.EqualValues(t, []rune{'A'}, DriveLetters(1))
	assert.EqualValues(t, []rune{'C'}, DriveLetters(1<<2))
	assert.EqualValues(t, []rune{'C', 'D'}, DriveLetters(1<<2|1<<3))
	assert.EqualValues(t, []rune{'A', 'C', 'E', 'Z'}, DriveLetters(1|1<<2|1<<4|1<<25))

	all := DriveLetters(1<<26 - 1)
	assert.Len(t, all, 26)
	assert.EqualValues(t, 'A', all[0])
	assert.EqualValues(t, 'Z', all[25])
	for i := 1; i < len(all); i++ {
		assert.True(t, all[i-1] < all[i], "letters must be ascending")
	}

	// bits above 25 don't name drives
	assert.Empty(t, DriveLetters(1<<26|1<<31))
	assert.EqualValues(t, []rune{'B'}, DriveLetters(1<<1|1<<30))
}

func TestDriveLettersPopcount(t *testing.T) {
	for mask := uint32(0); mask < 1<<8; mask++ {
		popcount := 0
		for bit := uint(0); bit < 26; bit++ {
			if mask&(1<<bit) != 0 {
				popcount++
			}
		}
		assert.Len(t, DriveLetters(mask), popcount, "mask %b", mask)
	}
}

func TestDriveTypeFromCode(t *testing.T) {
	assert.EqualValues(t, DriveUnknown, DriveTypeFromCode(0))
	assert.EqualValues(t, DriveNoRootDir, DriveTypeFromCode(1))
	assert.EqualValues(t, DriveRemovable, DriveTypeFromCode(2))
	assert.EqualValues(t, DriveFixed, DriveTypeFromCode(3))
	assert.EqualValues(t, DriveRemote, DriveTypeFromCode(4))
	assert.EqualValues(t, DriveCDROM, DriveTypeFromCode(5))
	assert.EqualValues(t, DriveRAMDisk, DriveTypeFromCode(6))

	assert.Panics(t, func() {
		DriveTypeFromCode(7)
	})
	assert.Panics(t, func() {
		DriveTypeFromCode(0xffffffff)
	})
}

func TestDriveTypeString(t *testing.T) {
	assert.EqualValues(t, "unknown", DriveUnknown.String())
	assert.EqualValues(t, "fixed", DriveFixed.String())
	assert.EqualValues(t, "cd-rom", DriveCDROM.String())
	assert.EqualValues(t, "ram-disk", DriveRAMDisk.String())
	assert.EqualValues(t, "DriveType(42)", DriveType(42).String())
}

func TestRootPath(t *testing.T) {
	assert.EqualValues(t, `C:\`, RootPath('C'))
	assert.EqualValues(t, `Z:\`, RootPath('Z'))
}

func TestUTF16ToString(t *testing.T) {
	// truncates at the first NUL, whatever follows it
	buf := encodeUTF16("DATA")
	buf = append(buf, 0)
	buf = append(buf, encodeUTF16("garbage")...)
	assert.EqualValues(t, "DATA", utf16ToString(buf))

	assert.EqualValues(t, "", utf16ToString(make([]uint16, 33)))
	assert.EqualValues(t, "", utf16ToString(nil))

	// no NUL at all: the whole buffer is the string
	assert.EqualValues(t, "NTFS", utf16ToString(encodeUTF16("NTFS")))

	// non-ASCII round-trips fine
	assert.EqualValues(t, "Données", utf16ToString(append(encodeUTF16("Données"), 0)))

	// an unpaired surrogate decodes to the replacement character
	// instead of failing
	assert.EqualValues(t, "a\uFFFDb", utf16ToString([]uint16{'a', 0xd800, 'b', 0}))
}

func TestIsNotReady(t *testing.T) {
	assert.True(t, IsNotReady(syscall.Errno(21)))
	assert.True(t, IsNotReady(ErrorNotReady))
	assert.True(t, IsNotReady(errors.WithStack(ErrorNotReady)))
	assert.True(t, IsNotReady(fmt.Errorf("querying D: %w", ErrorNotReady)))

	assert.False(t, IsNotReady(nil))
	assert.False(t, IsNotReady(syscall.Errno(5)))
	assert.False(t, IsNotReady(io.EOF))
	assert.False(t, IsNotReady(errors.New("not ready")))
}

func encodeUTF16(s string) []uint16 {
	var out []uint16
	for _, r := range s {
		out = append(out, uint16(r))
	}
	return out
}
