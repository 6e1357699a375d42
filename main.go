package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/carousel/internal/app"
	"github.com/llehouerou/carousel/internal/config"
	"github.com/llehouerou/carousel/internal/errmsg"
	"github.com/llehouerou/carousel/internal/icons"
	"github.com/llehouerou/carousel/internal/logging"
	"github.com/llehouerou/carousel/internal/notify"
	"github.com/llehouerou/carousel/internal/state"
	"github.com/llehouerou/carousel/internal/stderr"
)

func main() {
	if err := run(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpConfigLoad, err))
	}

	icons.Init(cfg.Icons)

	log, logFile, err := logging.New(logging.Config{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpLogOpen, err))
	}
	defer logFile.Close()

	// Keep stray library output from corrupting the alt screen
	capture, err := stderr.Start(log)
	if err != nil {
		log.Warn().Err(err).Msg("stderr capture unavailable")
	}
	if capture != nil {
		defer capture.Stop()
	}

	stateMgr, err := state.Open(cfg.StateFile)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpStateOpen, err))
	}
	defer func() {
		if err := stateMgr.Close(); err != nil {
			log.Error().Err(err).Msg("close state")
		}
	}()

	m, err := app.New(cfg, stateMgr, log)
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	if capture != nil {
		m = m.WithStderr(capture.Lines())
	}
	if cfg.Notifications {
		notifier, err := notify.New()
		if err != nil {
			log.Warn().Err(err).Msg("desktop notifications unavailable")
		} else {
			m = m.WithNotifier(notifier)
		}
	}

	log.Info().Int("items", len(cfg.GetItems())).Msg("starting")
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}
