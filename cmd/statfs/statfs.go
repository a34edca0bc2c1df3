package statfs

import (
	humanize "github.com/dustin/go-humanize"
	"github.com/itchio/partizan/comm"
	"github.com/itchio/partizan/mansion"
	"github.com/itchio/partizan/system"
)

var args = struct {
	path *string
}{}

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("statfs", "Show free and total space of the filesystem a path lives on")
	args.path = cmd.Arg("path", "Any path on the filesystem of interest").Required().String()
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	ctx.Must(Do(ctx, *args.path))
}

func Do(ctx *mansion.Context, path string) error {
	res, err := system.StatFS(path)
	if err != nil {
		return err
	}

	comm.ResultOrPrint(&mansion.FreeSpaceResult{
		Type:      "statfs",
		Path:      path,
		FreeSize:  res.FreeSize,
		TotalSize: res.TotalSize,
	}, func() {
		comm.Statf("(%s): %s free of %s total",
			path,
			humanize.IBytes(uint64(res.FreeSize)),
			humanize.IBytes(uint64(res.TotalSize)),
		)
	})

	return nil
}
