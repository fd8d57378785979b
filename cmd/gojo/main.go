package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ereft/gojo/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	timeout := flag.Duration("timeout", 0, "override API request timeout (e.g. 5s)")
	flag.Usage = usage
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		ListingID:  flag.Arg(0),
		Timeout:    *timeout,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "gojo: %v\n", err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "usage: gojo [flags] [listing-id]\n\n")
	fmt.Fprintf(flag.CommandLine.Output(), "Browse Ereft property listings; pass a listing id to open it directly.\n\n")
	flag.PrintDefaults()
}
