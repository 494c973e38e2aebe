package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"creatorhub/config"
	logs "creatorhub/internal/infra/log"
	"creatorhub/internal/infra/persistence/migrations"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
)

// Supported subcommands:
// - up:      Apply all pending migrations
// - down:    Roll back the given number of migrations
// - version: Print the current schema version

func main() {
	upCmd := flag.NewFlagSet("up", flag.ExitOnError)
	downCmd := flag.NewFlagSet("down", flag.ExitOnError)
	versionCmd := flag.NewFlagSet("version", flag.ExitOnError)

	downSteps := downCmd.Int("steps", 1, "Number of migrations to roll back")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := migrateFlags{
		Up:        upCmd,
		Down:      downCmd,
		Version:   versionCmd,
		DownSteps: downSteps,
	}

	if err := runSubcommand(ctx, &flags, os.Args[1], os.Args[2:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type migrateFlags struct {
	Up        *flag.FlagSet
	Down      *flag.FlagSet
	Version   *flag.FlagSet
	DownSteps *int
}

func runSubcommand(ctx context.Context, flags *migrateFlags, command string, args []string) error {
	var parse *flag.FlagSet
	switch command {
	case "up":
		parse = flags.Up
	case "down":
		parse = flags.Down
	case "version":
		parse = flags.Version
	default:
		printUsage()

		return errors.Errorf("unknown subcommand %q", command)
	}
	if err := parse.Parse(args); err != nil {
		return errors.WithStack(err)
	}

	runner, closeDB, err := newRunner()
	if err != nil {
		return err
	}
	defer closeDB()

	switch command {
	case "up":
		return runner.Up(ctx)
	case "down":
		if *flags.DownSteps <= 0 {
			return errors.Errorf("steps must be positive, got %d", *flags.DownSteps)
		}

		return runner.Steps(ctx, -*flags.DownSteps)
	default:
		version, dirty, err := runner.Version(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)

		return nil
	}
}

func newRunner() (*migrations.Runner, func(), error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load config")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to create logger")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to connect to PostgreSQL")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	return migrations.NewRunner(sqlDB, logger), func() { _ = sqlDB.Close() }, nil
}

func printUsage() {
	fmt.Println("Usage: migrate <subcommand> [options]")
	fmt.Println()
	fmt.Println("Subcommands:")
	fmt.Println("  up                 Apply all pending migrations")
	fmt.Println("  down [-steps N]    Roll back N migrations (default 1)")
	fmt.Println("  version            Print the current schema version")
}
