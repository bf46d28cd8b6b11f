package main

import (
	"context"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/litweave/cmd/litweave/commands"
	werrors "git.home.luguber.info/inful/litweave/internal/errors"
	"git.home.luguber.info/inful/litweave/internal/version"
)

func main() {
	// Cancelling the context on SIGINT/SIGTERM lets running collaborator
	// child processes be killed and the command's deferred workspace
	// cleanup execute before exit.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var cli commands.CLI
	kctx := kong.Parse(&cli,
		kong.Name("litweave"),
		kong.Description("Literate-programming renderer: annotated source in, two-column HTML document out."),
		kong.Vars{"version": version.Version},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	err := kctx.Run(&commands.Global{Logger: slog.Default()})
	stop()

	adapter := werrors.NewCLIErrorAdapter(cli.Verbose, slog.Default())
	adapter.HandleError(err)
}
