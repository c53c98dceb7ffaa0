package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/coder/quartz"
	"github.com/google/uuid"

	"github.com/lox/cardrace/cmd/cardrace/shared"
	"github.com/lox/cardrace/internal/config"
	"github.com/lox/cardrace/internal/game"
	"github.com/lox/cardrace/internal/output"
	"github.com/lox/cardrace/internal/pack"
	"github.com/lox/cardrace/internal/tui"
)

type PlayCmd struct {
	Players     int    `help:"Number of players (asked interactively when omitted)"`
	Pack        string `help:"Path to the pack file (asked interactively when omitted)"`
	OutputDir   string `help:"Directory for player and deck output files"`
	Seed        *int64 `help:"RNG seed for reproducible games (random when omitted)"`
	DelayMs     *int   `help:"Milliseconds between a player's turns"`
	Config      string `help:"Path to HCL config file" default:"cardrace.hcl"`
	Interactive bool   `help:"Prompt for missing parameters" default:"true" negatable:""`
	Debug       bool   `short:"d" help:"Enable debug logging"`
}

func (c *PlayCmd) Run() error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}

	// Flags win over environment and file values.
	if c.Players > 0 {
		cfg.Players = c.Players
	}
	if c.Pack != "" {
		cfg.PackFile = c.Pack
	}
	if c.OutputDir != "" {
		cfg.OutputDir = c.OutputDir
	}
	if c.DelayMs != nil {
		cfg.TurnDelayMs = *c.DelayMs
	}
	if c.Debug {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := shared.SetupLogger(cfg.Debug)
	logger = logger.With("run", uuid.New().String()[:8])

	seed := cfg.Seed
	if c.Seed != nil {
		seed = *c.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("seeded rng", "seed", seed)

	if cfg.Players < 1 || cfg.PackFile == "" {
		if !c.Interactive {
			return fmt.Errorf("players and pack are required with --no-interactive")
		}
		players, packFile, err := tui.Configure(cfg.Players, cfg.PackFile)
		if err != nil {
			if errors.Is(err, tui.ErrAborted) {
				logger.Info("setup aborted")
				return nil
			}
			return err
		}
		cfg.Players = players
		cfg.PackFile = packFile
	}

	cards, err := pack.Load(cfg.PackFile, cfg.Players)
	if err != nil {
		return err
	}
	logger.Debug("pack loaded", "path", cfg.PackFile, "cards", len(cards))

	writer, err := output.NewGameWriter(cfg.OutputDir, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := writer.Close(); err != nil {
			logger.Error("closing output files", "error", err)
		}
	}()

	g, err := game.New(game.Config{
		Players:   cfg.Players,
		Pack:      cards,
		TurnDelay: cfg.TurnDelay(),
		Seed:      seed,
		Clock:     quartz.NewReal(),
		Sink:      game.MultiSink(writer, output.Announcer{W: os.Stdout}),
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	ctx := shared.SetupSignalHandler(logger)
	run, err := g.Run(ctx)
	if err != nil {
		return err
	}

	for _, d := range g.Decks() {
		if err := output.WriteDeck(cfg.OutputDir, d); err != nil {
			logger.Error("writing deck output", "error", err)
		}
	}

	logger.Info("results written",
		"dir", cfg.OutputDir,
		"winner", run.Winner,
		"turns", run.TotalTurns(),
		"turns_per_sec", fmt.Sprintf("%.0f", run.TurnsPerSecond()),
	)
	return nil
}
