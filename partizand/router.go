package partizand

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/itchio/partizan/comm"
	"github.com/pkg/errors"
	"github.com/sourcegraph/jsonrpc2"
)

type RequestHandler func(rc *RequestContext) (interface{}, error)

type InFlightRequest struct {
	DispatchedAt time.Time
	Desc         string
}

type Router struct {
	Handlers map[string]RequestHandler

	ShutdownChan         chan struct{}
	initiateShutdownOnce sync.Once
	completeShutdownOnce sync.Once
	shuttingDown         bool

	inflightRequests map[jsonrpc2.ID]InFlightRequest
	inflightLock     sync.Mutex

	Version       string
	VersionString string
}

func NewRouter() *Router {
	return &Router{
		Handlers: make(map[string]RequestHandler),

		ShutdownChan: make(chan struct{}),

		inflightRequests: make(map[jsonrpc2.ID]InFlightRequest),
	}
}

func (r *Router) Register(method string, rh RequestHandler) {
	if _, ok := r.Handlers[method]; ok {
		panic(fmt.Sprintf("Can't register handler twice for %s", method))
	}
	r.Handlers[method] = rh
}

func (r *Router) initiateShutdown() {
	r.initiateShutdownOnce.Do(func() {
		r.Logf("Initiating graceful partizand shutdown")
		r.inflightLock.Lock()
		r.shuttingDown = true
		if len(r.inflightRequests) == 0 {
			r.completeShutdown()
		}
		r.inflightLock.Unlock()
	})
}

// caller must hold inflightLock
func (r *Router) onRequestStarted(id jsonrpc2.ID, req InFlightRequest) {
	r.inflightRequests[id] = req
}

// caller must hold inflightLock
func (r *Router) onRequestFinished(id jsonrpc2.ID) {
	delete(r.inflightRequests, id)
	if !r.shuttingDown {
		return
	}

	r.Logf("While shutting down, request %v has completed", id)
	if len(r.inflightRequests) == 0 {
		r.completeShutdown()
	} else {
		r.Logf("In-flight requests preventing shutdown:")
		for _, req := range r.inflightRequests {
			r.Logf(" - %s (%v)", req.Desc, time.Since(req.DispatchedAt))
		}
	}
}

func (r *Router) completeShutdown() {
	r.completeShutdownOnce.Do(func() {
		r.Logf("No in-flight requests left, we can shut down now.")
		close(r.ShutdownChan)
	})
}

func (r *Router) Dispatch(ctx context.Context, origConn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	r.inflightLock.Lock()
	r.onRequestStarted(req.ID, InFlightRequest{
		DispatchedAt: time.Now().UTC(),
		Desc:         fmt.Sprintf("[req %v] %s", req.ID, req.Method),
	})
	r.inflightLock.Unlock()

	defer func() {
		r.inflightLock.Lock()
		r.onRequestFinished(req.ID)
		r.inflightLock.Unlock()
	}()

	method := req.Method
	var res interface{}

	conn := &JsonRPC2Conn{origConn}

	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				if rErr, ok := r.(error); ok {
					err = errors.WithStack(rErr)
				} else {
					err = errors.Errorf("panic: %v", r)
				}
			}
		}()

		rc := &RequestContext{
			Ctx:    ctx,
			Params: req.Params,
			Conn:   conn,

			Version:       r.Version,
			VersionString: r.VersionString,

			Shutdown: r.initiateShutdown,

			method:   method,
			origConn: origConn,
		}

		if h, ok := r.Handlers[method]; ok {
			res, err = h(rc)
		} else {
			err = &RpcError{
				Code:    jsonrpc2.CodeMethodNotFound,
				Message: fmt.Sprintf("Method '%s' not found", req.Method),
			}
		}
		return
	}()

	if req.Notif {
		// partizand registers no notification handlers
		return
	}

	if err == nil {
		err = origConn.Reply(ctx, req.ID, res)
		if err != nil {
			comm.Warnf("Error while replying: %s", err.Error())
		}
		return
	}

	var code int64
	var message string
	var data map[string]interface{}

	if ee, ok := AsPartizandError(err); ok {
		code = ee.RpcErrorCode()
		message = ee.RpcErrorMessage()
		data = ee.RpcErrorData()
	} else {
		code = jsonrpc2.CodeInternalError
		message = err.Error()
	}

	if data == nil {
		data = make(map[string]interface{})
	}
	data["stack"] = fmt.Sprintf("%+v", err)
	data["partizanVersion"] = r.VersionString

	var rawData *json.RawMessage
	marshalledData, marshalErr := json.Marshal(data)
	if marshalErr == nil {
		rawMessage := json.RawMessage(marshalledData)
		rawData = &rawMessage
	}

	replyErr := origConn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
		Code:    code,
		Message: message,
		Data:    rawData,
	})
	if replyErr != nil {
		comm.Warnf("Error while replying with error: %s", replyErr.Error())
	}
}

func (r *Router) Logf(format string, args ...interface{}) {
	comm.Logf("[router] "+format, args...)
}

type RequestContext struct {
	Ctx    context.Context
	Params *json.RawMessage
	Conn   Conn

	Version       string
	VersionString string

	Shutdown func()

	method   string
	origConn *jsonrpc2.Conn
}

func (rc *RequestContext) Call(method string, params interface{}, res interface{}) error {
	return rc.Conn.Call(rc.Ctx, method, params, res)
}

func (rc *RequestContext) Notify(method string, params interface{}) error {
	return rc.Conn.Notify(rc.Ctx, method, params)
}
