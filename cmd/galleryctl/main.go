package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"

	"photogallery/internal/client"
	"photogallery/internal/frontend"
	"photogallery/internal/lib/logger/handlers/slogpretty"
)

type Context struct {
	context.Context

	Client     *client.Client
	Controller *frontend.Controller
	Log        *slog.Logger
}

var cli struct {
	Debug   bool          `help:"Enable debug logging."`
	Server  string        `default:"http://localhost:3000" env:"GALLERY_SERVER" help:"Gallery API base URL."`
	Timeout time.Duration `default:"10s" help:"Request timeout."`

	List   ListCmd   `cmd:"" default:"1" help:"Show gallery entries."`
	Add    AddCmd    `cmd:"" help:"Add an entry."`
	Update UpdateCmd `cmd:"" help:"Change fields of an entry."`
	Delete DeleteCmd `cmd:"" help:"Delete an entry."`
	Reset  ResetCmd  `cmd:"" help:"Restore the two seed entries."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("galleryctl"),
		kong.Description("Command line front-end for the photo gallery."),
	)

	level := slog.LevelWarn
	if cli.Debug {
		level = slog.LevelDebug
	}
	log := slog.New(slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{Level: level},
	}.NewPrettyHandler(os.Stderr))

	ctx, cancel := context.WithTimeout(context.Background(), cli.Timeout)
	defer cancel()

	c := client.New(cli.Server, nil)

	err := kctx.Run(&Context{
		Context:    ctx,
		Client:     c,
		Controller: frontend.NewController(log, c),
		Log:        log,
	})
	kctx.FatalIfErrorf(err)
}
