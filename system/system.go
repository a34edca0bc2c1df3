// Package system answers filesystem-level questions about arbitrary
// paths, on every platform partizan builds on. Unlike the partitions
// package it is not tied to drive letters: any path that exists works.
package system

// StatFSResult describes the filesystem a path lives on.
type StatFSResult struct {
	FreeSize  int64 `json:"freeSize"`
	TotalSize int64 `json:"totalSize"`
}
