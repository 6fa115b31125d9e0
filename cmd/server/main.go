// Command server runs the vocabflash HTTP API backed by PostgreSQL.
//
// Configuration is read from CONFIG_PATH (YAML), an optional .env file and
// environment variables. SIGINT or SIGTERM starts a graceful shutdown.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/vocabflash-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}
