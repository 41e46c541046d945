package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"go.opentelemetry.io/otel"

	"ctchen222/terminal-tic-tac-toe/internal/bot"
	"ctchen222/terminal-tic-tac-toe/internal/config"
	"ctchen222/terminal-tic-tac-toe/internal/logger"
	"ctchen222/terminal-tic-tac-toe/internal/session"
	"ctchen222/terminal-tic-tac-toe/internal/telemetry"
	"ctchen222/terminal-tic-tac-toe/internal/tui"
)

const version = "v0.1.0"

func newRootCommand() *cli.Command {
	return &cli.Command{
		Name:    "tictactoe",
		Usage:   "Play tic-tac-toe in the terminal",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config file",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Action: run,
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if !isInteractive() {
		return errNotInteractive
	}

	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return err
	}
	if cmd.Bool("debug") {
		cfg.LogLevel = "debug"
	}

	shutdown, err := telemetry.InitOtel(ctx, telemetry.Settings{
		Endpoint:       cfg.Telemetry.Endpoint,
		ServiceName:    cfg.Telemetry.ServiceName,
		ServiceVersion: version,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			slog.Error("Error shutting down telemetry", "error", err)
		}
	}()

	closeLog, err := logger.Init(logger.Options{
		File:  cfg.LogFile,
		Level: cfg.SlogLevel(),
		Otel:  cfg.TelemetryEnabled(),
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer closeLog()

	recorder, err := telemetry.NewRecorder(otel.Meter("tictactoe"))
	if err != nil {
		return fmt.Errorf("failed to create metrics recorder: %w", err)
	}

	slog.Info("starting game", "bot.delay", cfg.BotDelay, "telemetry", cfg.TelemetryEnabled())

	ctrl := session.NewController(bot.NewRandomMoveCalculator(nil))
	if err := tui.Run(ctx, ctrl, tui.Options{
		ComputerDelay: cfg.BotDelay,
		Recorder:      recorder,
		Logger:        slog.Default(),
	}); err != nil {
		return fmt.Errorf("game exited: %w", err)
	}

	slog.Info("game closed")
	fmt.Fprintln(cmd.Root().Writer, "Game finished.")
	return nil
}
