package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/joho/godotenv/autoload"

	"github.com/crimson-sun/skylog/internal/config"
	"github.com/crimson-sun/skylog/internal/engine"
	"github.com/crimson-sun/skylog/internal/engine/classifier"
	"github.com/crimson-sun/skylog/internal/engine/taxonomy"
	"github.com/crimson-sun/skylog/internal/logging"
	"github.com/crimson-sun/skylog/internal/model"
	"github.com/crimson-sun/skylog/internal/output"
	"github.com/crimson-sun/skylog/internal/output/file"
	"github.com/crimson-sun/skylog/internal/output/multi"
	"github.com/crimson-sun/skylog/internal/output/stdout"
	"github.com/crimson-sun/skylog/internal/output/table"
	"github.com/crimson-sun/skylog/internal/pipeline"
)

func main() {
	showVersion := flag.Bool("version", false, "print version and exit")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: skylog [flags] [log file or directory ...]\n\n")
		fmt.Fprintf(os.Stderr, "With no arguments the directory in SKYLOG_LOG_DIR (or SKYLOG_DOC_ROOT/Logs) is analysed.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if *showVersion {
		fmt.Println("skylog", config.Version)
		return
	}

	cfg := config.Load()
	logging.Init(os.Stderr, cfg.Output.Format == "json", logging.ParseLevel(cfg.LogLevel))

	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		if cfg.Source.LogDir == "" {
			flag.Usage()
			os.Exit(2)
		}
		paths = []string{cfg.Source.LogDir}
	}

	out, err := newOutput(cfg.Output)
	if err != nil {
		slog.Error("failed to create output", "error", err)
		os.Exit(1)
	}

	eng := engine.New(classifier.New())
	p := pipeline.New(eng, out,
		pipeline.WithCharset(cfg.Source.Charset),
		pipeline.WithMaxLineSize(cfg.Source.MaxLineSize),
		pipeline.WithPattern(cfg.Source.Pattern),
		pipeline.WithWorkers(cfg.Source.Workers),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	code := run(ctx, p, paths)
	if err := p.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
		code = 1
	}
	os.Exit(code)
}

// run analyses every path and returns the process exit code.
func run(ctx context.Context, p *pipeline.Pipeline, paths []string) int {
	code := 0
	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			slog.Error("read failed", "path", path, "error", err)
			code = 1
			continue
		}

		var r model.Report
		if info.IsDir() {
			res, err := p.AnalyzeDir(ctx, path)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					slog.Warn("interrupted")
					return 130
				}
				slog.Error("read failed", "path", path, "error", err)
				code = 1
				continue
			}
			if len(res.Failed()) > 0 {
				code = 1
			}
			r = res.Merged
		} else {
			r, err = p.AnalyzeFile(ctx, path)
			if err != nil {
				if errors.Is(err, context.Canceled) {
					slog.Warn("interrupted")
					return 130
				}
				slog.Error("read failed", "path", path, "error", err)
				code = 1
				continue
			}
		}
		logOutcome(path, r)
	}
	return code
}

// logOutcome tells an empty log apart from one where nothing was recognised.
func logOutcome(path string, r model.Report) {
	switch {
	case r.Lines == 0:
		slog.Warn("empty log", "path", path)
	case r.Lines == r.Unknown:
		slog.Warn("no recognized events", "path", path, "lines", r.Lines)
	default:
		slog.Info("log analysed", "path", path, "lines", r.Lines, "unknown", r.Unknown, "exposures", len(r.Exposures))
	}
}

func newOutput(cfg config.OutputConfig) (output.Output, error) {
	switch cfg.Format {
	case "json":
		return stdout.New(cfg.Pretty), nil
	case "file":
		var opts []file.Option
		if cfg.MaxSize > 0 {
			opts = append(opts, file.WithMaxSize(cfg.MaxSize))
		}
		f, err := file.New(cfg.Path, opts...)
		if err != nil {
			return nil, err
		}
		// Archive to disk and still show the summary on the terminal.
		return multi.New(f, table.New(os.Stdout, taxonomy.Default())), nil
	default:
		return table.New(os.Stdout, taxonomy.Default()), nil
	}
}
