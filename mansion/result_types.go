package mansion

// PartitionResult is sent for each partition that's enumerated
//
// For commands `list` and `watch`
type PartitionResult struct {
	Type       string `json:"type"`
	Letter     string `json:"letter"`
	DriveType  string `json:"driveType"`
	Ready      bool   `json:"ready"`
	Name       string `json:"name,omitempty"`
	FileSystem string `json:"fileSystem,omitempty"`
	Size       uint64 `json:"size"`
	FreeSpace  uint64 `json:"freeSpace"`
}

// DriveResult is sent for each drive letter the system knows about
//
// For command `drives`
type DriveResult struct {
	Type      string `json:"type"`
	Letter    string `json:"letter"`
	DriveType string `json:"driveType"`
}

// FreeSpaceResult is sent in json mode with the sizes of a filesystem
//
// For command `statfs`
type FreeSpaceResult struct {
	Type      string `json:"type"`
	Path      string `json:"path"`
	FreeSize  int64  `json:"freeSize"`
	TotalSize int64  `json:"totalSize"`
}

// VolumeInfoResult describes a single volume in detail
//
// For command `volinfo`
type VolumeInfoResult struct {
	Type               string   `json:"type"`
	Root               string   `json:"root"`
	Name               string   `json:"name,omitempty"`
	SerialNumber       string   `json:"serialNumber"`
	MaxComponentLength uint32   `json:"maxComponentLength"`
	FileSystem         string   `json:"fileSystem"`
	Flags              uint32   `json:"flags"`
	FlagNames          []string `json:"flagNames"`
}

// MountResult is sent for each mounted filesystem
//
// For command `mounts`
type MountResult struct {
	Type        string   `json:"type"`
	Device      string   `json:"device"`
	Mountpoint  string   `json:"mountpoint"`
	FSType      string   `json:"fsType"`
	Opts        []string `json:"opts,omitempty"`
	TotalSize   uint64   `json:"totalSize"`
	FreeSize    uint64   `json:"freeSize"`
	UsedPercent float64  `json:"usedPercent"`
}

// DiskResult describes a physical disk drive
//
// For command `disks`
type DiskResult struct {
	Type              string `json:"type"`
	Name              string `json:"name"`
	SizeBytes         uint64 `json:"sizeBytes"`
	DriveType         string `json:"driveType"`
	StorageController string `json:"storageController"`
	Vendor            string `json:"vendor,omitempty"`
	Model             string `json:"model,omitempty"`
	SerialNumber      string `json:"serialNumber,omitempty"`
	Removable         bool   `json:"removable"`
}
