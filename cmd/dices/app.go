package main

import (
	"dices/internal/aliases"
	"dices/internal/commands"
	"dices/internal/config"
	"dices/internal/dice"
	"dices/internal/execution"
	"dices/internal/logger"
	"dices/internal/output"
	"dices/internal/random"
	"dices/internal/shell"
	"dices/internal/statemachine"
)

// app wires the registry, the roller and the session of one run.
type app struct {
	registry *commands.Registry
	session  *shell.Session
	seed     int64
}

func newApp(cfg *config.Config, printer *output.Printer) (*app, error) {
	registry, err := aliases.NewRegistry(cfg.AliasFile, cfg.AliasFileRequired)
	if err != nil {
		return nil, err
	}

	seed, source, err := random.ResolveSeed(cfg.Seed, nil)
	if err != nil {
		return nil, err
	}
	roller := dice.NewRoller(dice.NewSource(seed), cfg.RollerOptions()...)
	logger.Debug("Roller ready", "seed", seed, "seed_source", source, "sampler", cfg.Sampler, "strict", cfg.Strict)

	session := shell.NewSession(
		statemachine.NewCompiler(registry, cfg.CompilerConfig()),
		execution.NewDispatcher(roller, registry),
		printer,
		cfg.TestMode,
	)
	logger.Debug("Session created", "session", session.ID, "commands", registry.Len())

	return &app{registry: registry, session: session, seed: seed}, nil
}
