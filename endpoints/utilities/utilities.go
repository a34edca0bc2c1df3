package utilities

import (
	"github.com/itchio/partizan/partizand"
)

func Register(router *partizand.Router) {
	partizand.VersionGet.Register(router, func(rc *partizand.RequestContext, params partizand.VersionGetParams) (*partizand.VersionGetResult, error) {
		return &partizand.VersionGetResult{
			Version:       rc.Version,
			VersionString: rc.VersionString,
		}, nil
	})
}
