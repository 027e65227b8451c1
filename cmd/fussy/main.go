/*
Package main implements the fussy completion server and CLI [DBG] application.

fussy ranks a candidate pool against typed queries using subsequence fuzzy
matching, returning candidates best-first with match characters emphasized
for highlighting. It can operate as a MessagePack IPC server for
integration with text editors, or as a CLI application for testing and
debugging.

# Usage

Start the server with a word list:

	fussy -dict words.txt

Run in CLI mode for interactive testing:

	fussy -c -dict words.txt -limit 10

# Configuration

Runtime configuration is managed through a TOML file:

	[match]
	max_query_length = 128
	max_candidate_limit = 1000
	ignore_case = true
	max_word_length = 1000

	[highlight]
	enabled = true

	[server]
	max_limit = 64
	min_query = 1
	max_query = 60

The config file is automatically created with defaults if it doesn't exist.

# IPC Protocol

The server communicates via MessagePack over stdin/stdout. Send a
completion request:

	{"id": "req1", "q": "hlo", "l": 20}

Receive candidates ranked by score with emphasis applied:

	{"id": "req1", "c": [{"w": "hello", "s": 112, "d": "..."}], "n": 1, "t": 145}

The word list is one entry per line, either "word" or "word<TAB>frequency";
frequencies ride along as opaque payloads.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/jimeh/fussy/internal/cli"
	"github.com/jimeh/fussy/internal/logger"
	"github.com/jimeh/fussy/pkg/complete"
	"github.com/jimeh/fussy/pkg/config"
	"github.com/jimeh/fussy/pkg/pool"
	"github.com/jimeh/fussy/pkg/server"
)

const (
	Version = "0.1.0"
	AppName = "fussy"
	gh      = "https://github.com/jimeh/fussy"
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

// main calls other packages to initialize the server or CLI inputs.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Path to a word list file (word or word<TAB>frequency per line)")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run CLI -- useful for testing and debugging")
	limit := flag.Int("limit", 24, "Number of completions to show in CLI mode")

	flag.Parse()

	if *showVersion {
		banner := logger.NewWithConfig("", log.InfoLevel, false, false, log.TextFormatter)

		styles := log.DefaultStyles()
		styles.Values["version"] = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
		banner.SetStyles(styles)

		banner.Print("")
		banner.Print("[ fussy ] Fuzzy completion scoring and ranking")
		banner.Print("", "version", Version)
		banner.Print("")
		banner.Print("use -h or --help to see available options")
		banner.Print("Github Repo", "gh", gh)

		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
		os.Exit(1)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	candidates := pool.New()
	if *dictPath != "" {
		if err := candidates.LoadFile(*dictPath); err != nil {
			log.Fatalf("Failed to load word list from %s: %v", *dictPath, err)
			os.Exit(1)
		}
		log.Debugf("Loaded %d candidates", candidates.Size())
	} else {
		log.Warn("No word list specified, running with empty pool...")
	}

	opts := []complete.Option{complete.WithStyles(appConfig.Highlight.Styles())}
	if !appConfig.Highlight.Enabled {
		opts = append(opts, complete.WithoutHighlight())
	}
	adapter := complete.New(appConfig.Match.Options(), opts...)

	// CLI would be mainly used for testing and dbg purposes.
	// Any new features or changes should be tested in CLI mode first.
	if *cliMode {
		log.SetReportTimestamp(false)
		log.Debug("Input info:", "limit", *limit, "maxQuery", appConfig.Server.MaxQuery)

		inputHandler := cli.NewInputHandler(adapter, candidates, *limit, appConfig.Server.MaxQuery)
		if err := inputHandler.Start(); err != nil {
			log.Fatalf("CLI error: %v", err)
			os.Exit(1)
		}
		return
	}

	log.Debug("spawning IPC")
	srv := server.NewServer(adapter, candidates, appConfig)

	showStartupInfo(*dictPath, candidates.Size())

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}

// showStartupInfo displays some basic info about the init process.
func showStartupInfo(dictPath string, poolSize int) {
	pid := os.Getpid()
	currentLevel := log.GetLevel()
	log.SetLevel(log.InfoLevel)

	println("=========")
	println("  fussy  ")
	println("=========")
	log.Infof("Version: %s", Version)
	log.Infof("Process ID: [ %d ]", pid)
	log.Info("init: OK")
	log.Infof("word list: ( %s )", dictPath)
	log.Infof("pool size: [ %d ]", poolSize)
	log.Info("status: ready")
	println("=========")
	println("Press Ctrl+C to exit")

	log.SetLevel(currentLevel)
}
