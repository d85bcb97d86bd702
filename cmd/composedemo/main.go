// Command composedemo replays the function composition workshop scenarios.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/KasperOmsK/compose/internal/config"
	"github.com/KasperOmsK/compose/internal/logger"
	"github.com/KasperOmsK/compose/internal/workshop"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return runWithArgs(ctx, os.Args[1:], os.Stdout, os.Stderr)
}

func runWithArgs(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("composedemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	envPath := fs.String("env-file", "", "path to a .env file")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: composedemo [options] [scenario...]\n\n")
		fmt.Fprintf(stderr, "Scenarios: %s (default: all)\n\n", strings.Join(workshop.Names(), ", "))
		fmt.Fprintln(stderr, "Options:")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var opts []config.LoaderOption
	if *configPath != "" {
		opts = append(opts, config.WithConfigFile(*configPath))
	}
	if *envPath != "" {
		opts = append(opts, config.WithEnvFile(*envPath))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	logOut := stderr
	if cfg.Logging.Output == "stdout" {
		logOut = stdout
	}
	log := logger.New(cfg.Logging, logOut)

	runner, err := workshop.NewRunner(cfg.Workshop, log)
	if err != nil {
		log.Error("failed to build runner", err)
		return 1
	}

	if err := runner.Run(ctx, fs.Args(), stdout); err != nil {
		log.Error("run failed", err)
		if errors.Is(err, workshop.ErrUnknownScenario) {
			fs.Usage()
			return 2
		}
		return 1
	}
	return 0
}
