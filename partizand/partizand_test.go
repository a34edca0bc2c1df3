package partizand

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/itchio/partizan/partitions"
	"github.com/sourcegraph/jsonrpc2"
	"github.com/stretchr/testify/assert"
)

type noopHandler struct{}

func (noopHandler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {}

type pongHandler struct{}

func (pongHandler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	if req.Notif {
		return
	}
	_ = conn.Reply(ctx, req.ID, map[string]string{"message": "pong"})
}

type routerHandler struct {
	router *Router
}

func (h routerHandler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	if req.Notif {
		return
	}
	h.router.Dispatch(ctx, conn, req)
}

func startGatedConn(t *testing.T, secret string, inner jsonrpc2.Handler) *jsonrpc2.Conn {
	t.Helper()

	serverConn, clientConn := net.Pipe()

	s := NewServer(secret)
	go func() {
		_ = s.handleConn(context.Background(), ServeParams{
			Handler: inner,
			Secret:  secret,
		}, serverConn)
	}()

	client := jsonrpc2.NewConn(
		context.Background(),
		jsonrpc2.NewBufferedStream(clientConn, LFObjectCodec{}),
		noopHandler{},
	)
	t.Cleanup(func() {
		_ = client.Close()
	})

	return client
}

func TestGateRejectsWithoutAuthentication(t *testing.T) {
	client := startGatedConn(t, "sssh", pongHandler{})

	var result map[string]string
	err := client.Call(context.Background(), "Ping", nil, &result)
	assert.Error(t, err)

	rpcErr, ok := err.(*jsonrpc2.Error)
	if !ok {
		t.Fatalf("expected *jsonrpc2.Error, got %#v", err)
	}
	assert.EqualValues(t, jsonrpc2.CodeInvalidRequest, rpcErr.Code)
	assert.Contains(t, rpcErr.Message, "Meta.Authenticate")
}

func TestGateRejectsWrongSecret(t *testing.T) {
	client := startGatedConn(t, "sssh", pongHandler{})

	var result MetaAuthenticateResult
	err := client.Call(context.Background(), "Meta.Authenticate", MetaAuthenticateParams{Secret: "nope"}, &result)
	assert.Error(t, err)

	rpcErr, ok := err.(*jsonrpc2.Error)
	if !ok {
		t.Fatalf("expected *jsonrpc2.Error, got %#v", err)
	}
	assert.EqualValues(t, jsonrpc2.CodeInvalidRequest, rpcErr.Code)
	assert.Contains(t, rpcErr.Message, "Invalid secret")
}

func TestGateLetsAuthenticatedRequestsThrough(t *testing.T) {
	client := startGatedConn(t, "sssh", pongHandler{})

	var authResult MetaAuthenticateResult
	err := client.Call(context.Background(), "Meta.Authenticate", MetaAuthenticateParams{Secret: "sssh"}, &authResult)
	assert.NoError(t, err)
	assert.True(t, authResult.OK)

	var result map[string]string
	err = client.Call(context.Background(), "Ping", nil, &result)
	assert.NoError(t, err)
	assert.EqualValues(t, "pong", result["message"])
}

func startRouterConn(t *testing.T, router *Router) *jsonrpc2.Conn {
	t.Helper()

	serverConn, clientConn := net.Pipe()

	server := jsonrpc2.NewConn(
		context.Background(),
		jsonrpc2.NewBufferedStream(serverConn, LFObjectCodec{}),
		routerHandler{router},
	)
	client := jsonrpc2.NewConn(
		context.Background(),
		jsonrpc2.NewBufferedStream(clientConn, LFObjectCodec{}),
		noopHandler{},
	)
	t.Cleanup(func() {
		_ = client.Close()
		_ = server.Close()
	})

	return client
}

func TestRouterRoutesRequests(t *testing.T) {
	router := NewRouter()
	router.Version = "v1.2.0"
	router.VersionString = "v1.2.0, no build date"
	VersionGet.Register(router, func(rc *RequestContext, params VersionGetParams) (*VersionGetResult, error) {
		return &VersionGetResult{
			Version:       rc.Version,
			VersionString: rc.VersionString,
		}, nil
	})

	client := startRouterConn(t, router)

	var result VersionGetResult
	err := client.Call(context.Background(), "Version.Get", VersionGetParams{}, &result)
	assert.NoError(t, err)
	assert.EqualValues(t, "v1.2.0", result.Version)
	assert.EqualValues(t, "v1.2.0, no build date", result.VersionString)
}

func TestRouterMethodNotFound(t *testing.T) {
	client := startRouterConn(t, NewRouter())

	var result map[string]interface{}
	err := client.Call(context.Background(), "Bogus.Method", nil, &result)
	assert.Error(t, err)

	rpcErr, ok := err.(*jsonrpc2.Error)
	if !ok {
		t.Fatalf("expected *jsonrpc2.Error, got %#v", err)
	}
	assert.EqualValues(t, jsonrpc2.CodeMethodNotFound, rpcErr.Code)
	assert.Contains(t, rpcErr.Message, "Bogus.Method")
}

func TestRouterRecoversFromPanics(t *testing.T) {
	router := NewRouter()
	router.Register("Boom", func(rc *RequestContext) (interface{}, error) {
		panic("here lies the handler")
	})

	client := startRouterConn(t, router)

	var result map[string]interface{}
	err := client.Call(context.Background(), "Boom", nil, &result)
	assert.Error(t, err)

	rpcErr, ok := err.(*jsonrpc2.Error)
	if !ok {
		t.Fatalf("expected *jsonrpc2.Error, got %#v", err)
	}
	assert.EqualValues(t, jsonrpc2.CodeInternalError, rpcErr.Code)
	assert.Contains(t, rpcErr.Message, "here lies the handler")

	var data map[string]interface{}
	if rpcErr.Data == nil {
		t.Fatalf("expected error data with a stack")
	}
	assert.NoError(t, json.Unmarshal(*rpcErr.Data, &data))
	assert.Contains(t, data, "stack")
	assert.Contains(t, data, "partizanVersion")
}

func TestRouterValidatesParams(t *testing.T) {
	router := NewRouter()
	SystemStatFS.Register(router, func(rc *RequestContext, params SystemStatFSParams) (*SystemStatFSResult, error) {
		t.Fatalf("handler must not run with invalid params")
		return nil, nil
	})

	client := startRouterConn(t, router)

	var result SystemStatFSResult
	err := client.Call(context.Background(), "System.StatFS", SystemStatFSParams{Path: ""}, &result)
	assert.Error(t, err)

	rpcErr, ok := err.(*jsonrpc2.Error)
	if !ok {
		t.Fatalf("expected *jsonrpc2.Error, got %#v", err)
	}
	assert.EqualValues(t, jsonrpc2.CodeInvalidParams, rpcErr.Code)
	assert.Contains(t, rpcErr.Message, "path")
}

func TestRouterMapsUnsupportedPlatform(t *testing.T) {
	router := NewRouter()
	PartitionsList.Register(router, func(rc *RequestContext, params PartitionsListParams) (*PartitionsListResult, error) {
		return nil, partitions.ErrUnsupported
	})

	client := startRouterConn(t, router)

	var result PartitionsListResult
	err := client.Call(context.Background(), "Partitions.List", PartitionsListParams{}, &result)
	assert.Error(t, err)

	rpcErr, ok := err.(*jsonrpc2.Error)
	if !ok {
		t.Fatalf("expected *jsonrpc2.Error, got %#v", err)
	}
	assert.EqualValues(t, CodeUnsupportedPlatform, rpcErr.Code)
}

func TestRouterRegisterTwicePanics(t *testing.T) {
	router := NewRouter()
	handler := func(rc *RequestContext) (interface{}, error) { return nil, nil }

	router.Register("Some.Method", handler)
	assert.Panics(t, func() {
		router.Register("Some.Method", handler)
	})
}

func TestServeKeepAliveShutsDownCleanly(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)

	router := NewRouter()
	VersionGet.Register(router, func(rc *RequestContext, params VersionGetParams) (*VersionGetResult, error) {
		return &VersionGetResult{Version: "head"}, nil
	})

	s := NewServer("sssh")
	serveDone := make(chan error, 1)
	go func() {
		serveDone <- s.Serve(context.Background(), ServeParams{
			Handler:      routerHandler{router},
			Listener:     listener,
			Secret:       "sssh",
			KeepAlive:    true,
			ShutdownChan: router.ShutdownChan,
		})
	}()

	netConn, err := net.Dial("tcp", listener.Addr().String())
	assert.NoError(t, err)

	client := jsonrpc2.NewConn(
		context.Background(),
		jsonrpc2.NewBufferedStream(netConn, LFObjectCodec{}),
		noopHandler{},
	)

	var authResult MetaAuthenticateResult
	err = client.Call(context.Background(), "Meta.Authenticate", MetaAuthenticateParams{Secret: "sssh"}, &authResult)
	assert.NoError(t, err)

	var versionResult VersionGetResult
	err = client.Call(context.Background(), "Version.Get", VersionGetParams{}, &versionResult)
	assert.NoError(t, err)
	assert.EqualValues(t, "head", versionResult.Version)

	_ = client.Close()
	router.initiateShutdown()

	select {
	case err := <-serveDone:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatalf("server did not shut down in time")
	}
}

func TestLFObjectCodec(t *testing.T) {
	var buf bytes.Buffer
	codec := LFObjectCodec{}

	err := codec.WriteObject(&buf, map[string]string{"hello": "world"})
	assert.NoError(t, err)
	assert.True(t, strings.HasSuffix(buf.String(), "\n"), "objects are LF-terminated")

	var decoded map[string]string
	err = codec.ReadObject(bufio.NewReader(&buf), &decoded)
	assert.NoError(t, err)
	assert.EqualValues(t, "world", decoded["hello"])

	// a missing trailing LF means the object never completed
	partial := bufio.NewReader(strings.NewReader(`{"truncated":`))
	err = codec.ReadObject(partial, &decoded)
	assert.Error(t, err)
}
