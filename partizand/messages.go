package partizand

import (
	"encoding/json"
	"fmt"

	"github.com/sourcegraph/jsonrpc2"
)

// Typed request definitions: endpoint packages register against these
// and get decoded, validated params instead of raw JSON.

type validator interface {
	Validate() error
}

func decodeParams(rc *RequestContext, v interface{}) error {
	if rc.Params != nil {
		err := json.Unmarshal(*rc.Params, v)
		if err != nil {
			return &RpcError{
				Code:    jsonrpc2.CodeParseError,
				Message: err.Error(),
			}
		}
	}

	if vv, ok := v.(validator); ok {
		err := vv.Validate()
		if err != nil {
			return &RpcError{
				Code:    jsonrpc2.CodeInvalidParams,
				Message: err.Error(),
			}
		}
	}

	return nil
}

// Meta.Authenticate (Request)

type MetaAuthenticateType struct{}

var MetaAuthenticate = &MetaAuthenticateType{}

func (r *MetaAuthenticateType) Method() string {
	return "Meta.Authenticate"
}

func (r *MetaAuthenticateType) Register(router *Router, f func(*RequestContext, MetaAuthenticateParams) (*MetaAuthenticateResult, error)) {
	router.Register(r.Method(), func(rc *RequestContext) (interface{}, error) {
		var params MetaAuthenticateParams
		err := decodeParams(rc, &params)
		if err != nil {
			return nil, err
		}
		return f(rc, params)
	})
}

// Version.Get (Request)

type VersionGetType struct{}

var VersionGet = &VersionGetType{}

func (r *VersionGetType) Method() string {
	return "Version.Get"
}

func (r *VersionGetType) Register(router *Router, f func(*RequestContext, VersionGetParams) (*VersionGetResult, error)) {
	router.Register(r.Method(), func(rc *RequestContext) (interface{}, error) {
		var params VersionGetParams
		err := decodeParams(rc, &params)
		if err != nil {
			return nil, err
		}
		return f(rc, params)
	})
}

// System.StatFS (Request)

type SystemStatFSType struct{}

var SystemStatFS = &SystemStatFSType{}

func (r *SystemStatFSType) Method() string {
	return "System.StatFS"
}

func (r *SystemStatFSType) Register(router *Router, f func(*RequestContext, SystemStatFSParams) (*SystemStatFSResult, error)) {
	router.Register(r.Method(), func(rc *RequestContext) (interface{}, error) {
		var params SystemStatFSParams
		err := decodeParams(rc, &params)
		if err != nil {
			return nil, err
		}
		return f(rc, params)
	})
}

// Drives.List (Request)

type DrivesListType struct{}

var DrivesList = &DrivesListType{}

func (r *DrivesListType) Method() string {
	return "Drives.List"
}

func (r *DrivesListType) Register(router *Router, f func(*RequestContext, DrivesListParams) (*DrivesListResult, error)) {
	router.Register(r.Method(), func(rc *RequestContext) (interface{}, error) {
		var params DrivesListParams
		err := decodeParams(rc, &params)
		if err != nil {
			return nil, err
		}
		return f(rc, params)
	})
}

// EnsureAllRequests panics unless every method of the protocol has a
// registered handler. Run it after endpoint registration so a missing
// handler fails at startup, not mid-session.
func EnsureAllRequests(router *Router) {
	methods := []string{
		MetaAuthenticate.Method(),
		VersionGet.Method(),
		SystemStatFS.Method(),
		DrivesList.Method(),
		PartitionsList.Method(),
	}
	for _, method := range methods {
		if _, ok := router.Handlers[method]; !ok {
			panic(fmt.Sprintf("missing request handler for %s", method))
		}
	}
}

// Partitions.List (Request)

type PartitionsListType struct{}

var PartitionsList = &PartitionsListType{}

func (r *PartitionsListType) Method() string {
	return "Partitions.List"
}

func (r *PartitionsListType) Register(router *Router, f func(*RequestContext, PartitionsListParams) (*PartitionsListResult, error)) {
	router.Register(r.Method(), func(rc *RequestContext) (interface{}, error) {
		var params PartitionsListParams
		err := decodeParams(rc, &params)
		if err != nil {
			return nil, err
		}
		return f(rc, params)
	})
}
