package mounts

import (
	"fmt"
	"os"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/itchio/partizan/comm"
	"github.com/itchio/partizan/mansion"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/shirou/gopsutil/v4/disk"
)

var args = struct {
	all *bool
}{}

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("mounts", "List mounted filesystems, on any platform")
	args.all = cmd.Flag("all", "Include pseudo filesystems (proc, tmpfs, and friends)").Short('a').Bool()
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	ctx.Must(Do(ctx, *args.all))
}

var pseudoFSTypes = map[string]bool{
	"proc": true, "procfs": true, "sysfs": true, "devfs": true,
	"devtmpfs": true, "devpts": true, "tmpfs": true, "cgroup": true,
	"cgroup2": true, "pstore": true, "securityfs": true, "debugfs": true,
	"tracefs": true, "configfs": true, "overlay": true, "squashfs": true,
	"ramfs": true, "bpf": true, "nsfs": true, "autofs": true, "fusectl": true,
}

func isPseudo(p disk.PartitionStat) bool {
	if strings.HasPrefix(p.Device, "/dev/") {
		return false
	}
	return pseudoFSTypes[p.Fstype]
}

func Do(ctx *mansion.Context, includeAll bool) error {
	mounts, err := disk.Partitions(true)
	if err != nil {
		return errors.WithStack(err)
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Device", "Mount", "FS", "Size", "Free", "Use%"})

	count := 0
	for _, m := range mounts {
		if !includeAll && isPseudo(m) {
			continue
		}

		usage, err := disk.Usage(m.Mountpoint)
		if err != nil {
			comm.Debugf("skipping %s: %v", m.Mountpoint, err)
			continue
		}
		count++

		if ctx.JSON {
			comm.Result(&mansion.MountResult{
				Type:        "mount",
				Device:      m.Device,
				Mountpoint:  m.Mountpoint,
				FSType:      m.Fstype,
				Opts:        m.Opts,
				TotalSize:   usage.Total,
				FreeSize:    usage.Free,
				UsedPercent: usage.UsedPercent,
			})
		} else {
			table.Append([]string{
				m.Device,
				m.Mountpoint,
				m.Fstype,
				humanize.IBytes(usage.Total),
				humanize.IBytes(usage.Free),
				fmt.Sprintf("%.0f%%", usage.UsedPercent),
			})
		}
	}

	if !ctx.JSON {
		table.Render()
	}
	comm.Statf("%d filesystems", count)

	return nil
}
