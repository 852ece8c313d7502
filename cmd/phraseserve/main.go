// Copyright 2025 The WordServe Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main builds the phrase index from a corpus file and serves it.

Every run reads a newline-delimited corpus, trims each line, drops blank lines and
inserts the rest into a character trie. The index answers prefix completions ranked
by how often each phrase occurs, whole-word lookups, and tree dumps.

# Usage

Start the msgpack IPC server on stdin/stdout:

	phraseserve -corpus ChuckNorrisJokes.txt

Open the interactive form:

	phraseserve -t

Query from a plain line prompt, with debug logging:

	phraseserve -c -d

Only dump the tree and exit:

	phraseserve -export TreeDump.json

# Configuration

Runtime configuration lives in a TOML file created with defaults on first run:

	[server]
	max_limit = 64
	default_limit = 10
	max_prefix = 200

	[corpus]
	path = "ChuckNorrisJokes.txt"
	max_phrases = 0

	[export]
	path = "TreeDump.json"

	[cli]
	default_limit = 10

Flags override the file.

# Command Line Flags

	-corpus string
	    Corpus file, plain text or .gz (default from config)
	-config string
	    Config file path (default: user config dir)
	-d  Enable debug logging
	-c  Run the line-oriented CLI
	-t  Run the terminal form
	-limit int
	    Number of phrases to show in CLI and TUI modes (default from config)
	-export string
	    Write the tree dump to this path and exit
	-version
	    Show current version
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/bastiangx/phraseserve/internal/cli"
	"github.com/bastiangx/phraseserve/internal/logger"
	"github.com/bastiangx/phraseserve/internal/tui"
	"github.com/bastiangx/phraseserve/internal/utils"
	"github.com/bastiangx/phraseserve/pkg/config"
	"github.com/bastiangx/phraseserve/pkg/corpus"
	"github.com/bastiangx/phraseserve/pkg/export"
	"github.com/bastiangx/phraseserve/pkg/server"
	"github.com/bastiangx/phraseserve/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.1.0-beta"
	AppName = "phraseserve"
	logFile = "phraseserve.log"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, corpus and index together and hands off to one of the shells.
func main() {
	showVersion := flag.Bool("version", false, "Show current version")
	corpusPath := flag.String("corpus", "", "Corpus file, one phrase per line (plain text or .gz)")
	configPath := flag.String("config", "", "Path to config.toml (default: user config dir)")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	tuiMode := flag.Bool("t", false, "Run the interactive terminal form")
	limit := flag.Int("limit", 0, "Number of phrases to show in CLI and TUI modes (default from config)")
	exportPath := flag.String("export", "", "Write the tree dump to this path and exit")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// bubbletea owns the terminal in TUI mode, logs go to a file
	if *tuiMode {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		logger.Setup(f, *debugMode)
	} else {
		sigHandler()
		logger.Setup(os.Stderr, *debugMode)
	}

	pathResolver, err := utils.NewPathResolver()
	if err != nil {
		log.Fatalf("Failed to initialize path resolver: %v", err)
	}

	cfgPath := *configPath
	if cfgPath == "" {
		cfgPath = pathResolver.GetConfigPath(config.FileName)
	}
	log.Debugf("Using config file: (%s)", cfgPath)
	appConfig, err := config.InitConfig(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *limit <= 0 {
		*limit = appConfig.CLI.DefaultLimit
	}

	source := appConfig.Corpus.Path
	if *corpusPath != "" {
		source = *corpusPath
	}
	source = pathResolver.ResolveCorpus(source)

	index := suggest.NewPhraseIndex()
	stats, err := corpus.NewLoader(appConfig.Corpus.MaxPhrases).LoadFile(source, index)
	if err != nil {
		log.Fatalf("Error loading corpus: %v", err)
	}
	log.Debug("Index built", "phrases", stats.Inserted, "skipped", stats.Skipped, "nodes", index.Stats()["nodes"])

	if *exportPath != "" {
		written, err := export.WriteFile(*exportPath, index.Dump())
		if err != nil {
			log.Fatalf("Export failed: %v", err)
		}
		log.Infof("Tree exported to %s", written)
		return
	}

	switch {
	case *tuiMode:
		if err := tui.Run(index, *limit, appConfig.Export.Path); err != nil {
			log.Fatalf("TUI error: %v", err)
		}
	case *cliMode:
		log.SetReportTimestamp(false)
		log.Debug("Input info:", "limit", *limit, "export", appConfig.Export.Path)
		inputHandler := cli.NewInputHandler(index, *limit, appConfig.Export.Path)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
		}
	default:
		log.Debug("spawning IPC")
		showStartupInfo(source, stats)
		if err := server.NewServer(index, appConfig).Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
	}
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ phraseserve ] prefix completion and word search over phrase corpora")
	l.Print("", "version", Version)
	l.Print("")
	l.Print("use -h or --help to see available options")
}

// showStartupInfo displays some basic info about the init process on stderr.
func showStartupInfo(source string, stats corpus.LoadStats) {
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)
	defer log.SetLevel(currentLevel)

	log.Infof("%s %s", AppName, Version)
	log.Infof("Process ID: [ %d ]", os.Getpid())
	log.Infof("corpus: ( %s )", source)
	log.Infof("phrases: %s", utils.FormatWithCommas(stats.Inserted))
	log.Info("status: ready")
}
