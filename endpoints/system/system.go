package system

import (
	humanize "github.com/dustin/go-humanize"
	"github.com/itchio/partizan/comm"
	"github.com/itchio/partizan/partizand"
	sysinfo "github.com/itchio/partizan/system"
	"github.com/pkg/errors"
)

func Register(router *partizand.Router) {
	partizand.SystemStatFS.Register(router, StatFSHandler)
}

func StatFSHandler(rc *partizand.RequestContext, params partizand.SystemStatFSParams) (*partizand.SystemStatFSResult, error) {
	res, err := sysinfo.StatFS(params.Path)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	comm.Statf("(%s): %s free out of %s total",
		params.Path,
		humanize.IBytes(uint64(res.FreeSize)),
		humanize.IBytes(uint64(res.TotalSize)),
	)
	return &partizand.SystemStatFSResult{
		FreeSize:  res.FreeSize,
		TotalSize: res.TotalSize,
	}, nil
}
