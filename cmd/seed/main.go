package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sort"

	"artjury/internal/app/bootstrap"
	"artjury/internal/app/seed"
	"artjury/internal/platform/config"

	"github.com/urfave/cli/v2"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := newApp(logger).Run(os.Args); err != nil {
		logger.Error("seed failed", "event", "seed_failed", "error", err.Error())
		os.Exit(1)
	}
}

func newApp(logger *slog.Logger) *cli.App {
	return &cli.App{
		Name:  "seed",
		Usage: "load admins, judges and artworks into the configured store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "path to a YAML config file (defaults to $" + config.PathEnv + ")",
			},
			&cli.StringFlag{
				Name:  "file",
				Usage: "YAML fixture to load instead of the built-in demo data",
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "all",
				Usage: "seed admins, judges and artworks",
				Action: func(c *cli.Context) error {
					return run(c, logger, func(ctx context.Context, s seed.Seeder, f seed.Fixture) (map[string]seed.Report, error) {
						return s.SeedAll(ctx, f)
					})
				},
			},
			{
				Name:  "admins",
				Usage: "seed admin accounts",
				Action: func(c *cli.Context) error {
					return run(c, logger, func(ctx context.Context, s seed.Seeder, f seed.Fixture) (map[string]seed.Report, error) {
						report, err := s.SeedAdmins(ctx, f.Admins)
						return map[string]seed.Report{"admins": report}, err
					})
				},
			},
			{
				Name:  "judges",
				Usage: "seed judge accounts",
				Action: func(c *cli.Context) error {
					return run(c, logger, func(ctx context.Context, s seed.Seeder, f seed.Fixture) (map[string]seed.Report, error) {
						report, err := s.SeedJudges(ctx, f.Judges)
						return map[string]seed.Report{"judges": report}, err
					})
				},
			},
			{
				Name:  "artworks",
				Usage: "seed artworks",
				Action: func(c *cli.Context) error {
					return run(c, logger, func(ctx context.Context, s seed.Seeder, f seed.Fixture) (map[string]seed.Report, error) {
						report, err := s.SeedArtworks(ctx, f.Artworks)
						return map[string]seed.Report{"artworks": report}, err
					})
				},
			},
		},
	}
}

type seedFunc func(ctx context.Context, s seed.Seeder, f seed.Fixture) (map[string]seed.Report, error)

func run(c *cli.Context, logger *slog.Logger, fn seedFunc) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}
	if cfg.Store.Driver == config.StoreMemory {
		logger.Warn("seeding the memory store has no lasting effect",
			"event", "seed_memory_store",
			"module", "cmd/seed",
		)
	}

	fixture := seed.DefaultFixture()
	if path := c.String("file"); path != "" {
		if fixture, err = seed.LoadFixture(path); err != nil {
			return err
		}
	}

	modules, err := bootstrap.BuildModules(c.Context, cfg, logger)
	if err != nil {
		return err
	}
	defer modules.Close()

	reports, err := fn(c.Context, modules.Seeder(logger), fixture)
	if err != nil {
		return err
	}
	kinds := make([]string, 0, len(reports))
	for kind := range reports {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	for _, kind := range kinds {
		report := reports[kind]
		fmt.Fprintf(c.App.Writer, "%s: %d created, %d skipped\n", kind, report.Created, report.Skipped)
	}
	return nil
}
