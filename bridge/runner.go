package bridge

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/viant/prettier"
	"github.com/viant/prettier/client"
)

func Run(args []string) error {
	return run(context.Background(), args, os.Stdout)
}

func run(ctx context.Context, args []string, stdout io.Writer, extra ...client.Option) error {
	options := &Options{}
	_, err := flags.ParseArgs(options, args)
	if err != nil {
		return err
	}
	if err = options.Validate(); err != nil {
		return err
	}
	logger := slog.New(slog.DiscardHandler)
	if options.Verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	clientOptions := append([]client.Option{client.WithLogger(logger)}, extra...)
	aClient := prettier.NewClient(&options.ClientOptions, clientOptions...)
	service := New(options, aClient, WithStdout(stdout), WithLogger(logger))
	return service.Run(ctx)
}
