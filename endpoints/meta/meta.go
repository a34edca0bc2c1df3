package meta

import (
	"github.com/itchio/partizan/partizand"
	"github.com/pkg/errors"
)

func Register(router *partizand.Router) {
	partizand.MetaAuthenticate.Register(router, func(rc *partizand.RequestContext, params partizand.MetaAuthenticateParams) (*partizand.MetaAuthenticateResult, error) {
		// the connection gate answers this one before the router ever
		// sees it; reaching this handler means something is miswired
		return nil, errors.Errorf("Meta.Authenticate is handled by the connection gate for your transport")
	})
}
