package daemon

import (
	"context"
	"fmt"
	"net"
	"os"

	"github.com/google/gops/agent"
	"github.com/google/uuid"
	"github.com/itchio/partizan/comm"
	"github.com/itchio/partizan/mansion"
	"github.com/itchio/partizan/partizand"
	"github.com/sourcegraph/jsonrpc2"
)

var args = struct {
	destinyPids []int64
	transport   string
	keepAlive   bool
	log         bool
}{}

func Register(ctx *mansion.Context) {
	cmd := ctx.App.Command("daemon", "Start a partizand instance").Hidden()
	cmd.Flag("destiny-pid", "The daemon will shutdown whenever any of its destiny PIDs shuts down").Int64ListVar(&args.destinyPids)
	cmd.Flag("transport", "Which transport to use").Default("tcp").EnumVar(&args.transport, "tcp", "pipe")
	cmd.Flag("keep-alive", "Accept multiple connections, stay up until killed or a destiny PID shuts down").BoolVar(&args.keepAlive)
	cmd.Flag("log", "Log all requests to stderr").BoolVar(&args.log)
	ctx.Register(cmd, do)
}

func do(ctx *mansion.Context) {
	if !comm.JsonEnabled() {
		comm.Notice("Hello from partizan daemon", []string{"We can't do anything interesting without --json, bailing out"})
		os.Exit(1)
	}

	err := agent.Listen(agent.Options{
		Addr:            "localhost:0",
		ShutdownCleanup: true,
	})
	if err != nil {
		comm.Warnf("partizand: Could not start gops agent: %+v", err)
	}

	for _, destinyPid := range args.destinyPids {
		go tieDestiny(destinyPid)
	}

	secret := generateSecret()

	ctx.Must(Do(ctx, context.Background(), secret))
}

func generateSecret() string {
	var res string
	for rounds := 4; rounds > 0; rounds-- {
		res += uuid.New().String()
	}
	return res
}

type handler struct {
	router *partizand.Router
}

var _ jsonrpc2.Handler = (*handler)(nil)

func (h *handler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	if req.Notif {
		return
	}

	h.router.Dispatch(ctx, conn, req)
}

func Do(mansionContext *mansion.Context, ctx context.Context, secret string) error {
	s := partizand.NewServer(secret)
	h := &handler{
		router: getRouter(mansionContext),
	}

	var listener net.Listener
	var err error
	notification := comm.JsonMessage{
		"secret": secret,
	}

	switch args.transport {
	case "tcp":
		listener, err = net.Listen("tcp", "127.0.0.1:")
		if err != nil {
			return err
		}
		notification["tcp"] = map[string]interface{}{
			"address": listener.Addr().String(),
		}
	case "pipe":
		path := fmt.Sprintf(`\\.\pipe\partizand-%d`, os.Getpid())
		listener, err = listenPipe(path)
		if err != nil {
			return err
		}
		notification["pipe"] = map[string]interface{}{
			"path": path,
		}
	}

	comm.Object("partizand/listen-notification", notification)

	return s.Serve(ctx, partizand.ServeParams{
		Handler:   h,
		Listener:  listener,
		Secret:    secret,
		Log:       args.log,
		KeepAlive: args.keepAlive,

		ShutdownChan: h.router.ShutdownChan,
	})
}
