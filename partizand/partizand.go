package partizand

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net"
	"sync"
	"time"

	"github.com/itchio/partizan/comm"
	"github.com/pkg/errors"
	"github.com/sourcegraph/jsonrpc2"
)

type Server struct {
	secret string
}

func NewServer(secret string) *Server {
	return &Server{secret: secret}
}

type ServeParams struct {
	Handler  jsonrpc2.Handler
	Listener net.Listener
	Secret   string
	Log      bool

	// KeepAlive accepts connections until ShutdownChan closes,
	// instead of quitting after the first one hangs up.
	KeepAlive bool

	ShutdownChan chan struct{}
}

func (s *Server) Serve(ctx context.Context, params ServeParams) error {
	if params.KeepAlive {
		return s.serveKeepAlive(ctx, params)
	}
	return s.serveClose(ctx, params)
}

func (s *Server) serveClose(ctx context.Context, params ServeParams) error {
	conn, err := params.Listener.Accept()
	if err != nil {
		return err
	}

	return s.handleConn(ctx, params, conn)
}

func (s *Server) serveKeepAlive(ctx context.Context, params ServeParams) error {
	var wg sync.WaitGroup
	conns := make(chan net.Conn)
	go func() {
		for {
			conn, err := params.Listener.Accept()
			if err != nil {
				log.Printf("While accepting connection: %+v", err)
				return
			}
			conns <- conn
		}
	}()

	for {
		select {
		case conn := <-conns:
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := s.handleConn(ctx, params, conn)
				if err != nil {
					log.Printf("While handling connection: %+v", err)
				}
			}()
		case <-params.ShutdownChan:
			log.Printf("Closing listener...")
			err := params.Listener.Close()
			if err != nil {
				log.Printf("While closing listener: %+v", err)
			}

			log.Printf("Waiting for connections to close...")
			wg.Wait()
			log.Printf("All connections closed")

			return nil
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *Server) handleConn(parentCtx context.Context, params ServeParams, netConn net.Conn) error {
	handler := params.Handler
	if params.Log {
		handler = &loggingHandler{
			logger: slog.New(comm.NewSlogHandler(slog.LevelDebug)),
			inner:  handler,
		}
	}

	gh := &gatedHandler{
		secret: params.Secret,
		inner:  handler,
	}

	ctx, cancel := context.WithCancel(parentCtx)
	defer cancel()

	stream := jsonrpc2.NewBufferedStream(netConn, LFObjectCodec{})

	conn := jsonrpc2.NewConn(ctx, stream, gh)
	<-conn.DisconnectNotify()

	return nil
}

//

// gatedHandler rejects everything but Meta.Authenticate until the
// client has produced the connection secret.
type gatedHandler struct {
	authenticated bool
	secret        string
	inner         jsonrpc2.Handler
}

var _ jsonrpc2.Handler = (*gatedHandler)(nil)

func (h *gatedHandler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	if req.Method == "Meta.Authenticate" {
		err := func() error {
			var params MetaAuthenticateParams

			if req.Params == nil {
				return errors.Errorf("Missing params")
			}

			err := json.Unmarshal(*req.Params, &params)
			if err != nil {
				return errors.WithStack(err)
			}

			if params.Secret != h.secret {
				return errors.Errorf("Invalid secret")
			}
			return nil
		}()

		if err != nil {
			err := conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
				Code:    jsonrpc2.CodeInvalidRequest,
				Message: fmt.Sprintf("%+v", err),
			})
			if err != nil {
				comm.Warnf("Failed to reply: %#v", err)
			}
		} else {
			result := &MetaAuthenticateResult{OK: true}
			h.authenticated = true
			err := conn.Reply(ctx, req.ID, result)
			if err != nil {
				comm.Warnf("Failed to reply: %#v", err)
			}
		}
	} else {
		if h.authenticated {
			go h.inner.Handle(ctx, conn, req)
		} else {
			err := conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
				Code:    jsonrpc2.CodeInvalidRequest,
				Message: "Must call Meta.Authenticate with valid secret first",
			})
			if err != nil {
				comm.Warnf("Failed to reply with error: %#v", err)
			}
		}
	}
}

//

// loggingHandler times each request and reports it through comm's
// structured logging bridge.
type loggingHandler struct {
	logger *slog.Logger
	inner  jsonrpc2.Handler
}

var _ jsonrpc2.Handler = (*loggingHandler)(nil)

func (h *loggingHandler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	startedAt := time.Now()
	h.inner.Handle(ctx, conn, req)
	h.logger.Debug("handled request",
		slog.String("method", req.Method),
		slog.Bool("notif", req.Notif),
		slog.Duration("duration", time.Since(startedAt)),
	)
}

//

type LFObjectCodec struct{}

var separator = []byte("\n")

func (LFObjectCodec) WriteObject(stream io.Writer, obj interface{}) error {
	data, err := json.Marshal(obj)
	if err != nil {
		return err
	}

	if _, err := stream.Write(data); err != nil {
		return err
	}
	if _, err := stream.Write(separator); err != nil {
		return err
	}
	return nil
}

func (LFObjectCodec) ReadObject(stream *bufio.Reader, v interface{}) error {
	line, err := stream.ReadBytes('\n')
	if err != nil {
		return err
	}

	return json.Unmarshal(line[:len(line)-1], v)
}

type Conn interface {
	Notify(ctx context.Context, method string, params interface{}) error
	Call(ctx context.Context, method string, params interface{}, result interface{}) error
}

//

type JsonRPC2Conn struct {
	Conn *jsonrpc2.Conn
}

var _ Conn = (*JsonRPC2Conn)(nil)

func (jc *JsonRPC2Conn) Notify(ctx context.Context, method string, params interface{}) error {
	return jc.Conn.Notify(ctx, method, params)
}

func (jc *JsonRPC2Conn) Call(ctx context.Context, method string, params interface{}, result interface{}) error {
	return jc.Conn.Call(ctx, method, params, result)
}

func (jc *JsonRPC2Conn) Close() error {
	return jc.Conn.Close()
}
