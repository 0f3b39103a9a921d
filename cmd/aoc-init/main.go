package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gisleudo-cortez/aoc-init/internal/aoc"
	"github.com/gisleudo-cortez/aoc-init/internal/config"
	"github.com/gisleudo-cortez/aoc-init/internal/model"
	"github.com/gisleudo-cortez/aoc-init/internal/session"
	"github.com/gisleudo-cortez/aoc-init/internal/setup"
)

func main() {
	// Command line flags
	var (
		yearFlag         = flag.Int("year", 0, "Challenge year (2015 or later)")
		dayFlag          = flag.Int("day", 0, "Day of the challenge (1-25)")
		sessionFlag      = flag.String("session", "", "Session cookie value (overrides AOC_SESSION from .env)")
		langFlag         = flag.String("lang", "", "Languages to scaffold, comma-separated (python,rust,go or all)")
		instructionsFlag = flag.Bool("instructions", false, "Also save the problem statement as a text file")
		refreshFlag      = flag.Bool("refresh-instructions", false, "Only re-fetch the problem statement (skips input and scaffolding)")
		baseDirFlag      = flag.String("base-dir", "", "Base directory for challenge folders (default: current directory)")
		configFlag       = flag.String("config", "", "Path to settings file")
		forceFlag        = flag.Bool("force", false, "Re-download input.txt even if it exists")
		dryRunFlag       = flag.Bool("dry-run", false, "Show planned actions without fetching or writing")
		verboseFlag      = flag.Bool("verbose", false, "Show verbose output")
	)

	flag.Parse()

	if *yearFlag == 0 && *dayFlag == 0 {
		fmt.Println("aoc-init - Advent of Code day bootstrapper")
		fmt.Println()
		fmt.Println("Sets up the year/day directory, downloads the puzzle input,")
		fmt.Println("optionally saves the problem statement, and scaffolds")
		fmt.Println("per-language solution skeletons.")
		fmt.Println()
		fmt.Println("Usage:")
		fmt.Println("  aoc-init -year 2024 -day 7 [options]")
		fmt.Println()
		fmt.Println("For interactive mode, use: aoc-tui")
		fmt.Println()
		flag.PrintDefaults()
		os.Exit(1)
	}

	log := newLogger(*verboseFlag)

	// Load config
	settings := config.DefaultSettings()
	if *configFlag != "" {
		var err error
		settings, err = config.Load(*configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}

	// Apply flags
	if *baseDirFlag != "" {
		settings.BaseDir = *baseDirFlag
	}
	if *instructionsFlag {
		settings.FetchStatement = true
	}
	if *forceFlag {
		settings.ForceInput = true
	}

	// Validate the challenge identifier before anything touches the disk.
	ch, err := model.New(*yearFlag, *dayFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.debugf("challenge: %s, base dir: %s", ch, settings.BaseDir)

	// Resolve the session cookie; without one there is nothing to fetch
	// and no file is written.
	cookie, source, err := session.Resolve(*sessionFlag, session.EnvFilePath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	log.debugf("session cookie loaded from %s", source)
	if session.IsPlaceholder(cookie) {
		log.warnf("the provided session cookie looks like a placeholder")
	}

	client := aoc.NewClient(aoc.ClientConfig{
		BaseURL:   settings.BaseURL,
		Session:   cookie,
		UserAgent: settings.UserAgent,
		Timeout:   time.Duration(settings.TimeoutSeconds) * time.Second,
	})

	// Handle interrupts
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		fmt.Println("\nInterrupted, cancelling...")
		cancel()
	}()

	manager := setup.NewManager(settings, client, setup.Options{
		FetchStatement: settings.FetchStatement,
		RefreshOnly:    *refreshFlag,
		ForceInput:     settings.ForceInput,
		DryRun:         *dryRunFlag,
		Languages:      splitLangs(*langFlag),
	}, func(event setup.ProgressEvent) {
		if event.Level == setup.LevelVerbose {
			log.debugf("%s", event.Message)
			return
		}
		fmt.Println(levelPrefix(event.Level) + event.Message)
	})

	if err := manager.Run(ctx, ch); err != nil {
		if ctx.Err() != nil {
			fmt.Println("\nSetup cancelled.")
			os.Exit(130)
		}
		log.errf("%v", err)
		os.Exit(1)
	}
}

// splitLangs turns the -lang flag into tags; empty yields nil so the
// configured defaults apply.
func splitLangs(value string) []string {
	var langs []string
	for _, tag := range strings.Split(value, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			langs = append(langs, tag)
		}
	}
	return langs
}

// levelPrefix marks status lines the same way the TUI does.
func levelPrefix(level setup.ProgressLevel) string {
	switch level {
	case setup.LevelError:
		return "x "
	case setup.LevelWarning:
		return "! "
	case setup.LevelSuccess:
		return "+ "
	case setup.LevelInfo:
		return "> "
	default:
		return "  "
	}
}
