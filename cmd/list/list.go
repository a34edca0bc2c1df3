package list

import (
	"io"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/itchio/partizan/comm"
	"github.com/itchio/partizan/mansion"
	"github.com/itchio/partizan/partitions"
	"github.com/itchio/partizan/winapi"
	"github.com/olekukonko/tablewriter"
)

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("list", "List this machine's partitions, with size and free space")
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	ctx.Must(Do(ctx))
}

func Do(ctx *mansion.Context) error {
	parts, err := partitions.ListSystem()
	if err != nil {
		return err
	}

	if ctx.JSON {
		for _, p := range parts {
			comm.Result(ResultFor(p))
		}
	} else {
		RenderTable(os.Stdout, parts)
	}

	ready := 0
	var totalSize, totalFree uint64
	for _, p := range parts {
		if !p.Ready {
			continue
		}
		ready++
		totalSize += p.Size
		totalFree += p.FreeSpace
	}
	comm.Statf("%d partitions (%d ready), %s free of %s total",
		len(parts), ready,
		humanize.IBytes(totalFree), humanize.IBytes(totalSize))

	return nil
}

// ResultFor maps a partition to its json result
func ResultFor(p partitions.Partition) *mansion.PartitionResult {
	return &mansion.PartitionResult{
		Type:       "partition",
		Letter:     string(p.Letter),
		DriveType:  p.DriveType.String(),
		Ready:      p.Ready,
		Name:       p.Name,
		FileSystem: p.FileSystemName,
		Size:       p.Size,
		FreeSpace:  p.FreeSpace,
	}
}

// RenderTable writes the partition table to out
func RenderTable(out io.Writer, parts []partitions.Partition) {
	theme := comm.GetTheme()

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Drive", "Type", "Ready", "Label", "FS", "Size", "Free"})

	for _, p := range parts {
		ready := theme.StatSign
		if !p.Ready {
			ready = ""
		}

		size := ""
		free := ""
		if p.Ready || p.Size > 0 {
			size = humanize.IBytes(p.Size)
			free = humanize.IBytes(p.FreeSpace)
		}

		table.Append([]string{
			winapi.RootPath(p.Letter),
			p.DriveType.String(),
			ready,
			p.Name,
			p.FileSystemName,
			size,
			free,
		})
	}

	table.Render()
}
