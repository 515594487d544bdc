// comandacli клиент API комманд: регистрация, вход и операции над коммандами.
package main

import (
	"RestAPIFurb/internal/cli/commands"
	"RestAPIFurb/internal/config"
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// заполняются через -ldflags при сборке
var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	cfg := config.NewConfig()
	if cfg.Version {
		fmt.Printf("comandacli %s (build %s)\n", version, buildDate)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := commands.Dispatch(ctx, cfg, flag.Args())
	stop()
	os.Exit(code)
}
