package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nikolayk812/storefront-widgets/internal/cart"
	"github.com/nikolayk812/storefront-widgets/internal/catalog"
	"github.com/nikolayk812/storefront-widgets/internal/config"
	"github.com/nikolayk812/storefront-widgets/internal/obs"
	"github.com/nikolayk812/storefront-widgets/internal/shell"
	"github.com/nikolayk812/storefront-widgets/internal/widget"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config.Load: %v\n", err)
		os.Exit(1)
	}

	// stdout belongs to the shell
	logger := obs.NewLogger(os.Stderr, cfg.LogFormat, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sh := &shell.Shell{
		Catalog: catalog.Default(cfg.Currency),
		Cart:    cart.New(cfg.Currency, cart.WithLogger(logger)),
		Random:  widget.NewRandomNumber(widget.NewRandomSource(cfg.RandomSeed), logger),
		Form:    widget.NewRegisterForm(logger),
		Survey:  widget.NewSurvey(logger),
		Log:     logger,
	}

	logger.Info().Str("currency", cfg.Currency.String()).Msg("widgets_started")
	fmt.Fprintln(os.Stdout, `type "help" for commands`)

	if err := sh.Run(ctx, os.Stdin, os.Stdout); err != nil {
		logger.Error().Err(err).Msg("shell.Run")
		os.Exit(1)
	}
}
