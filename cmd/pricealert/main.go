// cmd/pricealert/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/law-makers/pricealert/internal/cli"
)

func main() {
	// Cancel the in-flight request on interrupt instead of killing mid-write
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx)
}
