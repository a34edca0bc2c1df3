package main

import (
	"log"
	"os"

	"github.com/itchio/partizan/buildinfo"
	"github.com/itchio/partizan/comm"
	"github.com/itchio/partizan/mansion"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

var app = kingpin.New("partizan", "Tells you everything about the drives of this machine")

var appArgs = struct {
	json       *bool
	quiet      *bool
	verbose    *bool
	timestamps *bool
	panic      *bool
}{
	app.Flag("json", "Enable machine-readable JSON-lines output").Short('j').Bool(),
	app.Flag("quiet", "Hide non-essential info").Short('q').Bool(),
	app.Flag("verbose", "Display as much extra info as possible").Short('v').Bool(),
	app.Flag("timestamps", "Prefix all output by timestamps (for logging purposes)").Bool(),
	app.Flag("panic", "Panic instead of exiting on errors").Hidden().Bool(),
}

func main() {
	doMain(os.Args[1:])
}

func doMain(args []string) {
	app.HelpFlag.Short('h')
	app.Version(buildinfo.VersionString)
	app.VersionFlag.Short('V')

	ctx := mansion.NewContext(app)
	ctx.Version = buildinfo.Version
	ctx.Commit = buildinfo.Commit
	ctx.VersionString = buildinfo.VersionString
	registerCommands(ctx)

	cmd, err := app.Parse(args)
	if *appArgs.timestamps {
		log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)
	} else {
		log.SetFlags(0)
	}

	ctx.Quiet = *appArgs.quiet
	ctx.Verbose = *appArgs.verbose
	ctx.JSON = *appArgs.json
	comm.Configure(ctx.Quiet, ctx.Verbose, ctx.JSON, *appArgs.panic)

	fullCmd := kingpin.MustParse(cmd, err)
	do := ctx.Commands[fullCmd]
	if do == nil {
		comm.Dief("no handler for command %q", fullCmd)
	}
	do(ctx)
}
