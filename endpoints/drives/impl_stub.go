//go:build !windows
// +build !windows

package drives

import (
	"github.com/itchio/partizan/partizand"
)

func DrivesListHandler(rc *partizand.RequestContext, params partizand.DrivesListParams) (*partizand.DrivesListResult, error) {
	return nil, partizand.CodeUnsupportedPlatform
}
