package root

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"bloom/internal/assist"
	"bloom/internal/config"
	"bloom/internal/directory"
	"bloom/internal/engine"
	"bloom/internal/storage"
	"bloom/internal/ui"
)

// openService wires config, storage and collaborators, then runs
// session start (decay rule + interaction stamp) before the command's
// own event is processed.
func openService(ctx context.Context) (*engine.Service, *engine.SessionReport, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	setupLogging(cfg.Log.Level)

	db, err := storage.Open(ctx, cfg.Database.Path)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}

	svc := engine.NewService(
		storage.NewStateRepo(db),
		directory.NewMock(),
		assist.New(cfg.Assist.APIKey, cfg.Assist.Model),
	)
	report, err := svc.StartSession(ctx)
	if err != nil {
		cleanup()
		return nil, nil, nil, err
	}
	return svc, report, cleanup, nil
}

func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelWarn
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
}

// printDecay warns when the session-start rule downgraded the plant.
func printDecay(out io.Writer, report *engine.SessionReport) {
	if report == nil || !report.Decay.Downgraded() {
		return
	}
	line := fmt.Sprintf("%s Your plant missed you for %d days and is now %s.",
		ui.IconWarn, report.Decay.GapDays, ui.HealthStyle(report.Decay.After).Render(string(report.Decay.After)))
	fmt.Fprintln(out, ui.Warn.Render(line))
}
