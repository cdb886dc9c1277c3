package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/abhisek/flashdeck/internal/config"
	"github.com/abhisek/flashdeck/internal/deck"
	"github.com/abhisek/flashdeck/internal/schedule"
	"github.com/abhisek/flashdeck/internal/session"
	"github.com/abhisek/flashdeck/internal/source"
	"github.com/abhisek/flashdeck/internal/store"
	"github.com/spf13/cobra"
)

// logFileName sits next to the database. The TUI owns the terminal, so
// interactive commands log there instead of stderr.
const logFileName = "flashdeck.log"

// env is the state shared by every command: configuration, logger and the
// open store.
type env struct {
	cfg    *config.Config
	logger *slog.Logger
	store  *store.Store
	dir    string
	now    func() time.Time

	logFile *os.File
}

func setup(cmd *cobra.Command, interactive bool) (*env, error) {
	cfgPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}

	dbPath, err := resolveDBPath(cmd, cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve database path: %w", err)
	}

	e := &env{cfg: cfg, dir: resolveDecksDir(cmd, cfg.Source.Dir), now: time.Now}

	var w io.Writer = os.Stderr
	if interactive {
		f, err := os.OpenFile(filepath.Join(filepath.Dir(dbPath), logFileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		e.logFile = f
		w = f
	}
	e.logger = config.NewLogger(cfg.Log, w)

	st, err := store.Open(dbPath)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("open store: %w", err)
	}
	e.store = st
	e.logger.Debug("environment ready", "db", dbPath, "decks", e.dir)
	return e, nil
}

func (e *env) Close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.logger.Warn("close store", "error", err)
		}
	}
	if e.logFile != nil {
		e.logFile.Close()
	}
}

func (e *env) today() time.Time {
	return schedule.Day(e.now())
}

// loadTree reads every deck file and returns the reviewable tree.
func (e *env) loadTree(ctx context.Context) (*deck.Deck, error) {
	loader := source.NewLoader(e.store.ScheduleRepo(), e.now, e.logger)
	questions, err := loader.LoadDir(ctx, e.dir)
	if err != nil {
		return nil, fmt.Errorf("load decks from %s: %w", e.dir, err)
	}
	return session.FullTree(questions), nil
}
