package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/flicktui/flick/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override gallery config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	remoteSeconds := flag.Int("remote", 0, "remote flip interval in seconds (optional, defaults to 5s)")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{ConfigPath: *configPath, PrefsPath: *prefsPath}
	if remote := *remoteSeconds; remote > 0 {
		opts.RemoteEvery = remote
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "flick: %v\n", err)
		return 1
	}
	return 0
}
