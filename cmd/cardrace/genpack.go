package main

import (
	"fmt"
	"time"

	"github.com/lox/cardrace/cmd/cardrace/shared"
	"github.com/lox/cardrace/internal/pack"
	"github.com/lox/cardrace/internal/randutil"
)

type GenPackCmd struct {
	Players int    `arg:"" help:"Number of players the pack is for"`
	Out     string `short:"o" help:"Output file" default:"pack.txt"`
	Seed    *int64 `help:"RNG seed (random when omitted)"`
	Debug   bool   `short:"d" help:"Enable debug logging"`
}

func (c *GenPackCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	if c.Players < 1 {
		return fmt.Errorf("players must be at least 1, got %d", c.Players)
	}
	seed := time.Now().UnixNano()
	if c.Seed != nil {
		seed = *c.Seed
	}

	cards := pack.Generate(c.Players, randutil.New(seed))
	if err := pack.Write(c.Out, cards); err != nil {
		return err
	}

	logger.Info("pack written", "path", c.Out, "cards", len(cards), "seed", seed)
	return nil
}
