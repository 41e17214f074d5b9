// markview - a terminal markdown viewer.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/jeranaias/markview-tui/internal/config"
	"github.com/jeranaias/markview-tui/internal/history"
	"github.com/jeranaias/markview-tui/internal/ui/app"
	"github.com/jeranaias/markview-tui/internal/watch"
)

// Version information (set at build time)
var (
	Version   = "0.4.0"
	GitCommit = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "markview: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to an alternate config file")
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = usage
	flag.Parse()

	if *showVersion {
		fmt.Printf("markview %s (%s)\n", Version, GitCommit)
		return nil
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("markview is an interactive viewer and needs a terminal")
	}

	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFrom(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	// History is best effort; the viewer works without it.
	var store *history.Store
	if dir, dirErr := config.Dir(); dirErr == nil {
		store, _ = history.Open(filepath.Join(dir, "history.db"), cfg.HistoryLimit)
	}
	if store != nil {
		defer store.Close()
	}

	var watcher *watch.DocumentWatcher
	if cfg.WatchFiles {
		watcher, err = watch.NewDocumentWatcher()
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	initial := flag.Arg(0)

	program := tea.NewProgram(
		app.New(cfg, store, watcher, initial),
		tea.WithAltScreen(),
	)
	_, err = program.Run()
	return err
}

func usage() {
	fmt.Fprintf(os.Stderr, `markview - a terminal markdown viewer

Usage:
  markview [flags] [file or URL]

Flags:
  -config path   use an alternate config file
  -version       print version and exit

With no argument, start with an empty viewer; type a path, URL, or command
into the omnibox. Press F1 inside the viewer for the command list.
`)
}
