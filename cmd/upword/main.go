// SPDX-License-Identifier: MIT

// Command upword searches for universal partial words and stores every word
// it finds.
//
// Usage:
//
//	upword [-config upword.yaml] [-alphabet 01] [-n 8] [-randomize] [-seed 0]
//	       [-capacity 9000] [-max-results 0] [-out upwords.txt] [-sqlite runs.db]
//	       [-monitor :9090] [-log-level info] [-log-format text] [-check]
//
// Flags override values from the config file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/upword/config"
	"github.com/katalvlaran/upword/monitor"
	"github.com/katalvlaran/upword/search"
	"github.com/katalvlaran/upword/sink"
	"github.com/katalvlaran/upword/word"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process plumbing; it returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, check, err := parseArgs(args, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	if err = execute(ctx, cfg, check, stdout, stderr); err != nil {
		fmt.Fprintf(stderr, "\nError: %v\n", err)
		return 1
	}

	return 0
}

// parseArgs layers flags over the optional config file and validates.
func parseArgs(args []string, stderr io.Writer) (config.Config, bool, error) {
	fs := flag.NewFlagSet("upword", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "YAML config file")
		alphabet   = fs.String("alphabet", "", "alphabet symbols, one byte each (default \"01\")")
		n          = fs.Int("n", 0, "window length (default 8)")
		randomize  = fs.Bool("randomize", false, "shuffle symbol order at every step")
		seed       = fs.Int64("seed", 0, "RNG seed for -randomize (0 = fixed default)")
		capacity   = fs.Int("capacity", 0, "coverage cache eviction threshold (default 9000)")
		maxResults = fs.Int("max-results", 0, "stop after this many results (0 = all)")
		out        = fs.String("out", "", "text file, one word per line (default upwords.txt)")
		sqlitePath = fs.String("sqlite", "", "SQLite database to record the run in")
		monAddr    = fs.String("monitor", "", "serve /progress, /results and /metrics on this address")
		logLevel   = fs.String("log-level", "", "debug|info|warn|error")
		logFormat  = fs.String("log-format", "", "text|json")
		check      = fs.Bool("check", false, "log whether each result covers every window")
	)
	if err := fs.Parse(args); err != nil {
		return config.Config{}, false, err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return config.Config{}, false, err
		}
	}

	// Only flags given explicitly override the file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "alphabet":
			cfg.Alphabet = *alphabet
		case "n":
			cfg.WindowLength = *n
		case "randomize":
			cfg.Randomize = *randomize
		case "seed":
			cfg.Seed = *seed
		case "capacity":
			cfg.CacheCapacity = *capacity
		case "max-results":
			cfg.MaxResults = *maxResults
		case "out":
			cfg.Output.Text = *out
		case "sqlite":
			cfg.Output.SQLite = *sqlitePath
		case "monitor":
			cfg.Monitor.Addr = *monAddr
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "log-format":
			cfg.Logging.Format = *logFormat
		}
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, false, err
	}

	return cfg, *check, nil
}

// execute runs one search described by cfg.
func execute(ctx context.Context, cfg config.Config, check bool, stdout, stderr io.Writer) error {
	params, err := cfg.Params()
	if err != nil {
		return err
	}
	log := monitor.NewLogger(stderr, cfg.Logging.Level, cfg.Logging.Format)
	meta := sink.NewRun(params, cfg.Randomize, cfg.Seed)

	// 1. Sinks.
	out, err := openSinks(ctx, cfg, meta)
	if err != nil {
		return err
	}

	// 2. Reporting.
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reporter := monitor.NewReporter(log, reg, meta.ID.String(), params)

	var ln net.Listener
	if cfg.Monitor.Addr != "" {
		if ln, err = net.Listen("tcp", cfg.Monitor.Addr); err != nil {
			out.Close()
			return fmt.Errorf("monitor listen %s: %w", cfg.Monitor.Addr, err)
		}
		log.Info("monitor listening", slog.String("addr", ln.Addr().String()))
	}

	fmt.Fprintf(stdout, "Searching for universal partial words of length %d\n", params.TargetLength())
	started := time.Now()

	// 3. Search and monitor side by side; the monitor stops with the search.
	g, gctx := errgroup.WithContext(ctx)
	monCtx, stopMonitor := context.WithCancel(gctx)
	defer stopMonitor()

	var found int
	g.Go(func() error {
		defer stopMonitor()

		opts := append(cfg.SearchOptions(), reporter.Options()...)
		opts = append(opts, search.WithContext(gctx))
		engine, err := search.New(params, opts...)
		if err != nil {
			return err
		}

		reporter.Start()
		var searchErr error
		for w, err := range engine.Words() {
			if err != nil {
				searchErr = err
				break
			}
			if err = out.Put(gctx, w); err != nil {
				searchErr = fmt.Errorf("store %q: %w", w, err)
				break
			}
			found++
			if check {
				log.Info("check", slog.String("word", string(w)),
					slog.Bool("universal", word.Universal(w, params.Alphabet(), params.WindowLength())))
			}
		}
		reporter.Finish(engine.Stats(), searchErr)

		return searchErr
	})
	if ln != nil {
		g.Go(func() error {
			return monitor.Serve(monCtx, ln, monitor.Handler(reporter, reg))
		})
	}

	err = g.Wait()
	if cerr := out.Close(); cerr != nil && err == nil {
		err = fmt.Errorf("close sinks: %w", cerr)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "\nFound %d universal partial words in %s\n", found, time.Since(started).Round(time.Millisecond))
	fmt.Fprintf(stdout, "  Run ID: %s\n", meta.ID)
	if cfg.Output.Text != "" {
		fmt.Fprintf(stdout, "  Text output: %s\n", cfg.Output.Text)
	}
	if cfg.Output.SQLite != "" {
		fmt.Fprintf(stdout, "  SQLite output: %s\n", cfg.Output.SQLite)
	}

	return nil
}

// openSinks opens every configured sink. With none configured, results are
// only logged.
func openSinks(ctx context.Context, cfg config.Config, run sink.Run) (sink.Multi, error) {
	var out sink.Multi
	if cfg.Output.Text != "" {
		t, err := sink.NewTextFile(cfg.Output.Text)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if cfg.Output.SQLite != "" {
		s, err := sink.OpenSQLite(ctx, cfg.Output.SQLite, run)
		if err != nil {
			out.Close()
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}
