package main

import (
	"io"
	"log/slog"
	"os"

	"termcanvas/parallel"
	"termcanvas/picture"
	"termcanvas/plot"

	"github.com/alecthomas/kong"
)

type CLI struct {
	LogLevel slog.Level `help:"Log level (debug, info, warn, error)" default:"info" env:"TERMCANVAS_LOG_LEVEL"`
	Workers  int        `help:"Number of images loaded concurrently, 0 for one per CPU" default:"0"`

	Sine  plot.SineCmd   `cmd:"" help:"Draw one period of a sine wave"`
	Lines plot.LinesCmd  `cmd:"" help:"Draw the line fan test picture"`
	Show  picture.CLICmd `cmd:"" help:"Display image files inline"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("termcanvas"),
		kong.Description("Draw pictures inline in terminals supporting the iTerm2 image protocol."),
		kong.UsageOnError(),
	)

	// stdout only carries image sequences
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cli.LogLevel})))
	slog.Debug("running", "command", kctx.Command())

	pool := parallel.Start(cli.Workers)
	kctx.BindTo(os.Stdout, (*io.Writer)(nil))
	err := kctx.Run(pool)
	pool.Wait()

	kctx.FatalIfErrorf(err)
}
