package partizand

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

//----------------------------------------------------------------------
// Protocol
//----------------------------------------------------------------------

// When using the TCP or named pipe transport, must be the first message
// sent on a connection.
//
// @name Meta.Authenticate
// @category Protocol
// @caller client
type MetaAuthenticateParams struct {
	Secret string `json:"secret"`
}

func (p MetaAuthenticateParams) Validate() error {
	return nil
}

type MetaAuthenticateResult struct {
	OK bool `json:"ok"`
}

//----------------------------------------------------------------------
// Utilities
//----------------------------------------------------------------------

// Retrieves the version of the daemon.
//
// @name Version.Get
// @category Utilities
// @caller client
type VersionGetParams struct{}

func (p VersionGetParams) Validate() error {
	return nil
}

type VersionGetResult struct {
	// Something short, like `v8.0.0`
	Version string `json:"version"`

	// Something long, like `v8.0.0, built on Aug 27 2017 @ 01:13:55`
	VersionString string `json:"versionString"`
}

//----------------------------------------------------------------------
// System
//----------------------------------------------------------------------

// Get free space for a given path in the filesystem. Works on every
// platform.
//
// @name System.StatFS
// @category System
// @caller client
type SystemStatFSParams struct {
	Path string `json:"path"`
}

func (p SystemStatFSParams) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Path, validation.Required),
	)
}

type SystemStatFSResult struct {
	FreeSize  int64 `json:"freeSize"`
	TotalSize int64 `json:"totalSize"`
}

//----------------------------------------------------------------------
// Drives
//----------------------------------------------------------------------

// List the drive letters assigned on this machine. Windows only.
//
// @name Drives.List
// @category Drives
// @caller client
type DrivesListParams struct{}

func (p DrivesListParams) Validate() error {
	return nil
}

type DrivesListResult struct {
	Drives []Drive `json:"drives"`
}

type Drive struct {
	// A single letter, like "C"
	Letter string `json:"letter"`

	// One of "unknown", "no-root-dir", "removable", "fixed", "remote",
	// "cd-rom", "ram-disk"
	DriveType string `json:"driveType"`
}

// List the partitions of this machine, along with their sizes and
// volume information. Windows only.
//
// Drives that are not ready (typically empty card readers and optical
// drives) come back with `ready` set to false and zero sizes.
//
// @name Partitions.List
// @category Drives
// @caller client
type PartitionsListParams struct{}

func (p PartitionsListParams) Validate() error {
	return nil
}

type PartitionsListResult struct {
	Partitions []Partition `json:"partitions"`
}

type Partition struct {
	Letter             string `json:"letter"`
	DriveType          string `json:"driveType"`
	Ready              bool   `json:"ready"`
	Name               string `json:"name,omitempty"`
	FileSystem         string `json:"fileSystem,omitempty"`
	Size               uint64 `json:"size"`
	FreeSpace          uint64 `json:"freeSpace"`
	SerialNumber       uint32 `json:"serialNumber,omitempty"`
	MaxComponentLength uint32 `json:"maxComponentLength,omitempty"`
	FileSystemFlags    uint32 `json:"fileSystemFlags,omitempty"`
}

//----------------------------------------------------------------------
// Error codes
//----------------------------------------------------------------------

// partizand JSON-RPC 2.0 error codes
type Code int64

// Note: codes -32000 to -32099 are reserved for the JSON-RPC
// protocol.

const (
	// The called method only works on Windows
	CodeUnsupportedPlatform Code = 9100
)
