// Command server runs the users resources HTTP API together with the
// background indexing and moderation workers. Configuration comes from
// CONFIG_PATH and the environment; run with -h to list the variables.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/users-resources/internal/app"
	"github.com/heartmarshall/users-resources/internal/config"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s\n\n", os.Args[0])
		_ = config.Usage(flag.CommandLine.Output())
	}
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
