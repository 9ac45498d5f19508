package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/labi-le/clipwire/internal/metadata"
	"github.com/labi-le/clipwire/internal/protocol"
	"github.com/labi-le/clipwire/internal/session"
	"github.com/labi-le/clipwire/pkg/clipboard"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	flag "github.com/spf13/pflag"
)

type action struct {
	query           bool
	keepLineEndings bool
	verbose         bool
	showVersion     bool
	showHelp        bool
}

func parseFlags() action {
	var act action

	flag.BoolVar(&act.query, "query", false, "Print one query response and exit (version probe)")
	flag.BoolVar(&act.keepLineEndings, "keep-line-endings", false, "Do not convert line endings (Windows only)")
	flag.BoolVar(&act.verbose, "verbose", false, "Verbose logs")
	flag.BoolVarP(&act.showVersion, "version", "v", false, "Show version")
	flag.BoolVarP(&act.showHelp, "help", "h", false, "Show help")

	flag.Parse()
	return act
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	act := parseFlags()

	if act.showHelp {
		flag.Usage()
		return
	}

	if act.query {
		// Cheap probe path: no backend, no session. Callers use this to
		// check binary presence and version before opening a real session.
		if err := writeQuery(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	logger := initLogger(act.verbose)

	logger.Info().
		Str("v", metadata.Version).
		Str("commit_hash", metadata.CommitHash).
		Str("build_time", metadata.BuildTime).
		Send()

	if act.showVersion {
		// ^
		return
	}

	backend, err := clipboard.New(clipboard.Options{
		ConvertLineEndings: !act.keepLineEndings,
		Logger:             logger,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("no usable clipboard backend")
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Warn().Err(err).Msg("close backend")
		}
	}()

	sess := session.New(protocol.NewHandler(backend, logger), logger)
	if err := sess.Run(ctx, os.Stdin, os.Stdout); err != nil {
		logger.Fatal().Err(err).Msg("session failed")
	}
}

func writeQuery(out *os.File) error {
	payload, err := json.Marshal(protocol.VersionResponse(metadata.Version))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n", payload)
	return err
}

// initLogger writes diagnostics to stderr only; stdout belongs to the
// protocol.
func initLogger(verbose bool) zerolog.Logger {
	var out io.Writer = os.Stderr
	if isatty.IsTerminal(os.Stderr.Fd()) {
		out = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	}

	if verbose {
		return zerolog.New(out).
			Level(zerolog.TraceLevel).
			With().
			Timestamp().
			Caller().
			Logger()
	}

	return zerolog.New(out).
		Level(zerolog.InfoLevel).
		With().
		Timestamp().
		Logger()
}
