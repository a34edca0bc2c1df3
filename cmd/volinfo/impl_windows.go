//go:build windows
// +build windows

package volinfo

import (
	"fmt"

	"github.com/itchio/partizan/comm"
	"github.com/itchio/partizan/mansion"
	"github.com/itchio/partizan/winapi"
	"github.com/winlabs/gowin32"
)

var flagNames = []struct {
	flag gowin32.FileSystemFlags
	name string
}{
	{gowin32.FileSystemCaseSensitiveSearch, "case-sensitive-search"},
	{gowin32.FileSystemCasePreservedNames, "case-preserved-names"},
	{gowin32.FileSystemUnicodeOnDisk, "unicode-on-disk"},
	{gowin32.FileSystemPersistentACLs, "persistent-acls"},
	{gowin32.FileSystemFileCompression, "file-compression"},
	{gowin32.FileSystemVolumeQuotas, "volume-quotas"},
	{gowin32.FileSystemSupportsSparseFiles, "sparse-files"},
	{gowin32.FileSystemSupportsReparsePoints, "reparse-points"},
	{gowin32.FileSystemSupportsRemoteStorage, "remote-storage"},
	{gowin32.FileSystemVolumeIsCompressed, "volume-is-compressed"},
	{gowin32.FileSystemSupportsObjectIDs, "object-ids"},
	{gowin32.FileSystemSupportsEncryption, "encryption"},
	{gowin32.FileSystemNamedStreams, "named-streams"},
	{gowin32.FileSystemReadOnlyVolume, "read-only-volume"},
	{gowin32.FileSystemSequentialWriteOnce, "sequential-write-once"},
	{gowin32.FileSystemSupportsTransactions, "transactions"},
	{gowin32.FileSystemSupportsHardLinks, "hard-links"},
	{gowin32.FileSystemSupportsExtendedAttributes, "extended-attributes"},
	{gowin32.FileSystemSupportsOpenByFileID, "open-by-file-id"},
	{gowin32.FileSystemSupportsUSNJournal, "usn-journal"},
}

func decodeFlags(flags uint32) []string {
	var names []string
	for _, fn := range flagNames {
		if gowin32.FileSystemFlags(flags)&fn.flag != 0 {
			names = append(names, fn.name)
		}
	}
	return names
}

func Do(ctx *mansion.Context, root string) error {
	root = normalizeRoot(root)

	vi, err := winapi.GetVolumeInformation(root)
	if err != nil {
		return err
	}

	names := decodeFlags(vi.FileSystemFlags)
	serial := fmt.Sprintf("%04X-%04X", vi.VolumeSerialNumber>>16, vi.VolumeSerialNumber&0xffff)

	comm.ResultOrPrint(&mansion.VolumeInfoResult{
		Type:               "volume-info",
		Root:               root,
		Name:               vi.VolumeName,
		SerialNumber:       serial,
		MaxComponentLength: vi.MaximumComponentLength,
		FileSystem:         vi.FileSystemName,
		Flags:              vi.FileSystemFlags,
		FlagNames:          names,
	}, func() {
		comm.Statf("%s %q, a %s volume", root, vi.VolumeName, vi.FileSystemName)
		comm.Logf("serial number %s, max component length %d", serial, vi.MaximumComponentLength)
		for _, name := range names {
			comm.Logf("  %s", name)
		}
	})

	return nil
}
