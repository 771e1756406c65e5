package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blob-arcade/internal/config"
	"github.com/vovakirdan/blob-arcade/internal/core"
	"github.com/vovakirdan/blob-arcade/internal/games/blob"
	"github.com/vovakirdan/blob-arcade/internal/levels"
	"github.com/vovakirdan/blob-arcade/internal/storage"
)

// session holds everything a frontend needs to run the game.
type session struct {
	game    *blob.Game
	cfg     config.BlobConfig
	runtime core.RuntimeConfig
	store   *storage.Store
	watcher *levels.Watcher
	logger  *log.Logger
	logFile *os.File
}

// newLogger builds the shared logger. fallback receives logs when no
// --log-file is given.
func newLogger(fallback io.Writer) (*log.Logger, *os.File, error) {
	w := fallback
	var f *os.File
	if flagLogFile != "" {
		var err error
		f, err = os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blob",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, f, nil
}

// openSession loads tuning and levels, then opens the optional run log and
// watcher. Optional collaborators degrade to nil with a warning.
func openSession(logOutput io.Writer, width, height int) (*session, error) {
	logger, logFile, err := newLogger(logOutput)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadBlob(flagConfig)
	if err != nil {
		return nil, err
	}
	if preset := config.ParseDifficultyPreset(flagDifficulty); preset != "" {
		config.ApplyPreset(&cfg, preset)
	} else if flagDifficulty != "" {
		logger.Warn("unknown difficulty, keeping config speed", "difficulty", flagDifficulty)
	}

	src, err := levels.LoadOrDefault(flagLevels)
	if err != nil {
		return nil, err
	}
	for _, w := range src.Warnings {
		logger.Warn("level data", "warning", w)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	s := &session{
		game: blob.New(src, cfg),
		cfg:  cfg,
		runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     seed,
		},
		logger:  logger,
		logFile: logFile,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run log, runs will not be saved", "err", err)
	} else {
		s.store = store
	}

	if flagWatch {
		if flagLevels == "" {
			logger.Warn("--watch needs --levels, ignoring")
		} else if w, werr := levels.NewWatcher(flagLevels); werr != nil {
			logger.Warn("could not watch level file", "err", werr)
		} else {
			s.watcher = w
		}
	}

	logger.Info("session ready", "levels", src.Len(), "origin", src.Origin, "seed", seed)
	return s, nil
}

// startLevel converts the 1-based --level flag into a level index.
func startLevel() int {
	if flagLevel < 1 {
		return 0
	}
	return flagLevel - 1
}

// Close releases the run log, watcher and log file.
func (s *session) Close() {
	if s.watcher != nil {
		if err := s.watcher.Close(); err != nil {
			s.logger.Warn("closing watcher", "err", err)
		}
	}
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("closing run log", "err", err)
		}
	}
	if s.logFile != nil {
		_ = s.logFile.Close()
	}
}
