package drives

import (
	"github.com/itchio/partizan/mansion"
)

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("drives", "List the drive letters this machine assigns")
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	ctx.Must(Do(ctx))
}
