package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"nuclight.org/pollview/internal/config"
	"nuclight.org/pollview/internal/i18n"
	"nuclight.org/pollview/internal/logger"
	"nuclight.org/pollview/internal/pollview"
	"nuclight.org/pollview/internal/richtext"
)

func main() {
	jsonOut := flag.Bool("json", false, "print states as JSON")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "usage: pollview [-json] [-v] snapshot.toml...")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Args(), *jsonOut, *verbose); err != nil {
		fmt.Fprintf(os.Stderr, "pollview: %v\n", err)
		os.Exit(1)
	}
}

func run(paths []string, jsonOut, verbose bool) error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, flush, err := newLogger(cfg, verbose)
	if err != nil {
		return fmt.Errorf("init sentry: %w", err)
	}
	defer flush()

	log.Debug("config loaded",
		"locale", cfg.Locale.String(),
		"workers", cfg.Workers,
		"sentry", cfg.SentryDSN != "",
	)

	formatter, err := i18n.NewFormatter(cfg.Locale)
	if err != nil {
		return fmt.Errorf("create formatter: %w", err)
	}
	annotator := richtext.NewEditedAnnotator(formatter.EditedMarker())

	classifier := pollview.NewClassifier(formatter, annotator, pollview.Settings{
		MarkerStyle: cfg.EditedStyle,
		Workers:     cfg.Workers,
	}, log)

	inputs := make([]pollview.Input, 0, len(paths))
	for _, path := range paths {
		snap, err := loadSnapshot(path)
		if err != nil {
			return err
		}
		in, err := snap.input()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		inputs = append(inputs, in)
	}

	states, err := classifier.ClassifyAll(context.Background(), inputs)
	if err != nil {
		log.Error("failed to classify polls", "error", err, "polls", len(inputs))
		return err
	}

	for i, s := range states {
		if len(states) > 1 {
			fmt.Printf("# %s (%s)\n", paths[i], s.Kind())
		}
		if jsonOut {
			out, err := renderJSON(s)
			if err != nil {
				return fmt.Errorf("encode %s: %w", paths[i], err)
			}
			fmt.Println(string(out))
			continue
		}
		out, err := renderText(s)
		if err != nil {
			return fmt.Errorf("render %s: %w", paths[i], err)
		}
		fmt.Print(out)
	}
	return nil
}

func newLogger(cfg *config.Config, verbose bool) (logger.Logger, func(), error) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	if cfg.SentryDSN == "" {
		return logger.NewLogger(level), func() {}, nil
	}
	flush, err := logger.InitSentry(cfg.SentryDSN)
	if err != nil {
		return nil, nil, err
	}
	return logger.NewLoggerWithSentry(level), flush, nil
}
