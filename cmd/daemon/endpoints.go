package daemon

import (
	"github.com/itchio/partizan/endpoints/drives"
	"github.com/itchio/partizan/endpoints/meta"
	"github.com/itchio/partizan/endpoints/system"
	"github.com/itchio/partizan/endpoints/utilities"
	"github.com/itchio/partizan/mansion"
	"github.com/itchio/partizan/partizand"
)

var mainRouter *partizand.Router

func getRouter(mansionContext *mansion.Context) *partizand.Router {
	if mainRouter != nil {
		return mainRouter
	}

	mainRouter = partizand.NewRouter()
	mainRouter.Version = mansionContext.Version
	mainRouter.VersionString = mansionContext.VersionString

	meta.Register(mainRouter)
	utilities.Register(mainRouter)
	system.Register(mainRouter)
	drives.Register(mainRouter)

	partizand.EnsureAllRequests(mainRouter)

	return mainRouter
}
