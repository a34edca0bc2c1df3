package disks

import (
	"fmt"
	"os"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/itchio/partizan/comm"
	"github.com/itchio/partizan/mansion"
	"github.com/jaypipes/ghw/pkg/block"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
)

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("disks", "List physical disk drives")
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	ctx.Must(Do(ctx))
}

func Do(ctx *mansion.Context) error {
	info, err := block.New()
	if err != nil {
		return errors.WithStack(err)
	}

	if ctx.JSON {
		for _, d := range info.Disks {
			comm.Result(&mansion.DiskResult{
				Type:              "disk",
				Name:              d.Name,
				SizeBytes:         d.SizeBytes,
				DriveType:         d.DriveType.String(),
				StorageController: d.StorageController.String(),
				Vendor:            d.Vendor,
				Model:             d.Model,
				SerialNumber:      d.SerialNumber,
				Removable:         d.IsRemovable,
			})
		}
	} else {
		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"Name", "Size", "Type", "Controller", "Model", "Partitions"})
		for _, d := range info.Disks {
			table.Append([]string{
				d.Name,
				humanize.IBytes(d.SizeBytes),
				d.DriveType.String(),
				d.StorageController.String(),
				strings.TrimSpace(fmt.Sprintf("%s %s", d.Vendor, d.Model)),
				fmt.Sprintf("%d", len(d.Partitions)),
			})
		}
		table.Render()
	}

	comm.Statf("%s of storage across %d disks",
		humanize.IBytes(info.TotalPhysicalBytes), len(info.Disks))

	return nil
}
