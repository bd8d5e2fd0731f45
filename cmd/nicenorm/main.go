// Package main implements the nicenorm CLI, a colored wrapper around norminette.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/pflag"

	"github.com/Veraticus/nicenorm/internal/config"
	"github.com/Veraticus/nicenorm/internal/norm"
	"github.com/Veraticus/nicenorm/internal/shared"
)

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	flags, forwarded, err := config.ParseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "nicenorm: %v\n", err)
		return norm.ExitCodeFailure
	}

	opts, loadErr := loadOptions(flags, args)
	logger := shared.NewLogger(os.Stderr, opts.Debug)
	if loadErr != nil {
		logger.Warn("ignoring configuration", "err", loadErr)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := norm.NewDefaultDependencies()
	deps.Logger = logger

	return norm.Run(ctx, opts, forwarded, deps)
}

// loadOptions merges flags with the config file and environment. When the
// config cannot be read the flags alone decide.
func loadOptions(flags *pflag.FlagSet, args []string) (config.Options, error) {
	cfg, err := config.Load(flags)
	if err == nil {
		return cfg.Options(), nil
	}

	opts, _, parseErr := config.ParseOptions(args)
	if parseErr != nil {
		return config.Options{}, err
	}
	return opts, err
}
