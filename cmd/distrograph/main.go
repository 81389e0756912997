package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/distrograph/distrograph/internal/cli"
	apperrors "github.com/distrograph/distrograph/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		os.Stderr.WriteString(apperrors.UserMessage(err) + "\n")
		os.Exit(1)
	}
}
