package volinfo

import (
	"github.com/itchio/partizan/mansion"
	"github.com/itchio/partizan/winapi"
)

var args = struct {
	root *string
}{}

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("volinfo", "Show label, filesystem and flags for one volume")
	args.root = cmd.Arg("root", `Volume to inspect: a letter like 'C', or a root path like 'C:\'`).Required().String()
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	ctx.Must(Do(ctx, *args.root))
}

// normalizeRoot accepts "C", "C:" and "C:\" alike, since all three
// come naturally to people typing drive names.
func normalizeRoot(root string) string {
	if len(root) == 1 {
		return winapi.RootPath(rune(root[0]))
	}
	if len(root) == 2 && root[1] == ':' {
		return root + `\`
	}
	return root
}
