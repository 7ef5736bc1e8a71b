// Copyright © 2026 Recall contributors
// SPDX-License-Identifier: MIT
//
// File: cmd/recall/main.go
// Summary: Command line entry point for the interactive history search.
// Usage: Run from a shell keybinding; the accepted command is printed to
// stdout so the shell can place it on the prompt line.

package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"recall/app"
	"recall/config"
	"recall/history"
	"recall/logger"
	"recall/search"
	"recall/theme"
	"recall/ui"
)

func main() {
	configPath := flag.String("config", config.DefaultPath(), "Path to the config file")
	dbPath := flag.String("db", "", "Override the history database path")
	query := flag.String("query", "", "Initial search query")
	invert := flag.Bool("invert", false, "Draw the list top-down with the input on top")
	importPath := flag.String("import", "", "Import plain-text history from a file and exit")
	flag.Parse()

	ok, err := run(*configPath, *dbPath, *query, *invert, *importPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "recall: %v\n", err)
		os.Exit(1)
	}
	if !ok {
		os.Exit(1)
	}
}

// run returns ok=false when the user aborted the search.
func run(configPath, dbPath, query string, invert bool, importPath string) (bool, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return false, err
	}

	closer, err := logger.Setup(cfg.LogFile)
	if err != nil {
		return false, err
	}
	if closer != nil {
		defer closer.Close()
	}

	if dbPath == "" {
		dbPath = cfg.DBPath
	}
	if dbPath == "" {
		dbPath, err = history.DefaultPath()
		if err != nil {
			return false, err
		}
	}
	store, err := history.Open(dbPath)
	if err != nil {
		return false, err
	}
	defer store.Close()

	if importPath != "" {
		return true, runImport(store, importPath)
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false, fmt.Errorf("stdin is not a terminal")
	}

	th, err := theme.Load(cfg.ThemePath)
	if err != nil {
		return false, err
	}
	engine, err := search.New(cfg.SearchEngine)
	if err != nil {
		return false, err
	}
	mode, err := ui.ParseSelectionMode(cfg.SelectionMode)
	if err != nil {
		return false, err
	}
	columns, err := cfg.ColumnSpecs()
	if err != nil {
		return false, err
	}

	items, err := store.List()
	if err != nil {
		return false, err
	}
	logrus.WithField("items", len(items)).Debug("history loaded")

	command, accepted, err := app.Run(app.Options{
		Items:        items,
		Columns:      columns,
		Theme:        th,
		Invert:       invert || cfg.Invert,
		Mode:         mode,
		Engine:       engine,
		InitialQuery: query,
	})
	if err != nil {
		return false, err
	}
	if !accepted {
		return false, nil
	}
	fmt.Println(command)
	return true, nil
}

// runImport loads one command per line from path into the store.
func runImport(store *history.Store, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	hostname = hostname + ":" + os.Getenv("USER")

	n, err := store.Import(f, hostname)
	if err != nil {
		return err
	}
	fmt.Printf("imported %d commands\n", n)
	return nil
}
