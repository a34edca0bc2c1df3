package main

import (
	"github.com/itchio/partizan/cmd/daemon"
	"github.com/itchio/partizan/cmd/disks"
	"github.com/itchio/partizan/cmd/drives"
	"github.com/itchio/partizan/cmd/list"
	"github.com/itchio/partizan/cmd/mounts"
	"github.com/itchio/partizan/cmd/statfs"
	"github.com/itchio/partizan/cmd/version"
	"github.com/itchio/partizan/cmd/volinfo"
	"github.com/itchio/partizan/cmd/watch"
	"github.com/itchio/partizan/mansion"
)

// Each of these specify their own arguments and flags in
// their own package.
func registerCommands(ctx *mansion.Context) {
	// documented commands

	list.Register(ctx)
	drives.Register(ctx)
	volinfo.Register(ctx)
	statfs.Register(ctx)
	mounts.Register(ctx)
	disks.Register(ctx)
	watch.Register(ctx)
	version.Register(ctx)

	// hidden commands

	daemon.Register(ctx)
}
