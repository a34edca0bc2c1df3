package watch

import (
	"fmt"
	"time"

	"github.com/gosuri/uilive"
	"github.com/itchio/partizan/cmd/list"
	"github.com/itchio/partizan/comm"
	"github.com/itchio/partizan/mansion"
	"github.com/itchio/partizan/partitions"
)

var args = struct {
	interval *time.Duration
	count    *int
}{}

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("watch", "Re-list partitions on an interval, repainting in place")
	args.interval = cmd.Flag("interval", "Delay between two scans").Short('n').Default("2s").Duration()
	args.count = cmd.Flag("count", "Stop after that many scans (0 means forever)").Default("0").Int()
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	ctx.Must(Do(ctx, *args.interval, *args.count))
}

func Do(ctx *mansion.Context, interval time.Duration, count int) error {
	if interval <= 0 {
		return fmt.Errorf("interval must be positive, got %s", interval)
	}

	if ctx.JSON {
		return doJSON(interval, count)
	}

	writer := uilive.New()
	writer.Start()
	defer writer.Stop()

	for scan := 0; count == 0 || scan < count; scan++ {
		if scan > 0 {
			time.Sleep(interval)
		}

		parts, err := partitions.ListSystem()
		if err != nil {
			return err
		}

		list.RenderTable(writer, parts)
		fmt.Fprintf(writer, "scanned at %s, repeating every %s\n",
			time.Now().Format("15:04:05"), interval)
		_ = writer.Flush()
	}

	return nil
}

// doJSON skips the repainting entirely: consumers get one result per
// partition per scan, and tell scans apart by their time field.
func doJSON(interval time.Duration, count int) error {
	for scan := 0; count == 0 || scan < count; scan++ {
		if scan > 0 {
			time.Sleep(interval)
		}

		parts, err := partitions.ListSystem()
		if err != nil {
			return err
		}

		for _, p := range parts {
			comm.Result(list.ResultFor(p))
		}
	}

	return nil
}
