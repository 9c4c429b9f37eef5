// Copyright 2025 LinkU Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/linku/unime/admission"
	"github.com/linku/unime/catalog"
	"github.com/linku/unime/catalog/badger"
	"github.com/linku/unime/config"
	"github.com/linku/unime/core"
	"github.com/linku/unime/match"
	"github.com/linku/unime/mentors"
	"github.com/linku/unime/report"
	"github.com/linku/unime/server"
)

func main() {
	app := &cli.App{
		Name:  "unime",
		Usage: "University program matching engine",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "Run the HTTP API server",
				Action: serveCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to TOML configuration file",
					},
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address (overrides config)",
					},
				},
			},
			{
				Name:   "match",
				Usage:  "Rank programs for a quiz answers file",
				Action: matchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "catalog",
						Usage:    "Path to program_profiles.json",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "answers",
						Aliases:  []string{"a"},
						Usage:    "Path to a quiz answers JSON file",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "top",
						Usage: "Number of matches to show (0 for all)",
						Value: 10,
					},
					&cli.StringFlag{
						Name:  "pdf",
						Usage: "Also write a PDF report to this path",
					},
				},
			},
			{
				Name:   "seed",
				Usage:  "Import a catalog snapshot into the program store",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "catalog",
						Usage:    "Path to program_profiles.json",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the program store directory",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func serveCommand(c *cli.Context) error {
	cfg := config.Default()
	if path := c.String("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	programs, err := loadCatalog(c.Context, cfg)
	if err != nil {
		return err
	}
	slog.Info("catalog loaded", "programs", len(programs))

	opts := []match.Option{}
	if cfg.Match.PoolSize > 0 {
		opts = append(opts, match.WithPoolSize(cfg.Match.PoolSize))
	}
	matcher, err := match.New(opts...)
	if err != nil {
		return fmt.Errorf("failed to create matcher: %w", err)
	}
	defer matcher.Release()

	serverOpts := []server.Option{}
	if cfg.Data.MentorsPath != "" {
		store, err := mentors.Load(cfg.Data.MentorsPath)
		if err != nil {
			slog.Warn("mentor directory unavailable", "error", err)
		} else {
			serverOpts = append(serverOpts, server.WithMentors(store))
		}
	}
	if cfg.Data.AdmissionsPath != "" {
		table, err := admission.LoadTable(cfg.Data.AdmissionsPath)
		if err != nil {
			slog.Warn("admissions table unavailable", "error", err)
		} else {
			serverOpts = append(serverOpts, server.WithAdmissions(table))
		}
	}

	srv, err := server.New(matcher, programs, serverOpts...)
	if err != nil {
		return err
	}

	addr := cfg.Server.Addr()
	if override := c.String("addr"); override != "" {
		addr = override
	}
	slog.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, srv.Routes())
}

func matchCommand(c *cli.Context) error {
	programs, err := catalog.LoadFile(c.String("catalog"))
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	answersFile, err := os.Open(c.String("answers"))
	if err != nil {
		return fmt.Errorf("failed to open answers file: %w", err)
	}
	defer answersFile.Close()

	answers, err := server.DecodeAnswers(answersFile)
	if err != nil {
		return fmt.Errorf("failed to parse answers: %w", err)
	}

	matcher, err := match.New()
	if err != nil {
		return fmt.Errorf("failed to create matcher: %w", err)
	}
	defer matcher.Release()

	matches, err := matcher.Rank(c.Context, programs, answers, c.Int("top"))
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	if err := report.WriteTable(os.Stdout, matches); err != nil {
		return err
	}

	if pdfPath := c.String("pdf"); pdfPath != "" {
		f, err := os.Create(pdfPath)
		if err != nil {
			return fmt.Errorf("failed to create PDF file: %w", err)
		}
		defer f.Close()

		weights := report.Weights{
			Academic: answers.WeightAcademic,
			Campus:   answers.WeightCampus,
			Social:   answers.WeightSocial,
		}
		if err := report.WritePDF(f, matches, weights); err != nil {
			return fmt.Errorf("failed to write PDF: %w", err)
		}
		fmt.Fprintf(os.Stderr, "PDF report written to %s\n", pdfPath)
	}

	return nil
}

func seedCommand(c *cli.Context) error {
	programs, err := catalog.LoadFile(c.String("catalog"))
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}

	backend, err := badger.OpenBackend(c.String("db"), false)
	if err != nil {
		return fmt.Errorf("failed to open store: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewProgramRepository(backend)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	refs := make([]*core.Program, len(programs))
	for i := range programs {
		refs[i] = &programs[i]
	}
	if err := repo.AddPrograms(c.Context, refs...); err != nil {
		return fmt.Errorf("failed to import programs: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Imported %d programs into %s\n", len(programs), c.String("db"))
	return nil
}

// loadCatalog prefers the JSON snapshot and falls back to the program
// store.
func loadCatalog(ctx context.Context, cfg *config.Config) ([]core.Program, error) {
	if cfg.Catalog.SnapshotPath != "" {
		programs, err := catalog.LoadFile(cfg.Catalog.SnapshotPath)
		if err == nil {
			return programs, nil
		}
		if !errors.Is(err, os.ErrNotExist) && cfg.Catalog.StorePath == "" {
			return nil, fmt.Errorf("failed to load catalog: %w", err)
		}
		slog.Warn("catalog snapshot unavailable, trying store", "error", err)
	}

	if cfg.Catalog.StorePath == "" && !cfg.Catalog.InMemory {
		return nil, fmt.Errorf("no catalog source configured")
	}

	backend, err := badger.OpenBackend(cfg.Catalog.StorePath, cfg.Catalog.InMemory)
	if err != nil {
		return nil, fmt.Errorf("failed to open program store: %w", err)
	}
	defer backend.Close()

	repo, err := badger.NewProgramRepository(backend)
	if err != nil {
		return nil, fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	return repo.ListPrograms(ctx)
}

func setupLogger(c *cli.Context) error {
	levelStr := strings.ToLower(c.String("log-level"))

	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
