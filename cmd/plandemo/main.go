// Command plandemo replays scripted editing sessions and renders each
// resulting floor plan to a PNG file.
//
// Usage:
//
//	plandemo [-config plan.yaml] [-out dir] [script.yaml ...]
//
// Without script arguments the built-in demo session is rendered.
// Scripts run concurrently, each with its own scene and history.
package main

import (
	"context"
	_ "embed"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/gogpu/plan"
	"github.com/gogpu/plan/internal/config"
	"github.com/gogpu/plan/internal/logging"
)

//go:embed testdata/demo.yaml
var demoScript []byte

func main() {
	var (
		cfgPath = flag.String("config", "plan.yaml", "configuration file")
		outDir  = flag.String("out", ".", "output directory")
	)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *cfgPath, *outDir, flag.Args()); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfgPath, outDir string, paths []string) error {
	cfg, err := config.LoadEditor(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	level, _ := config.ParseLevel(cfg.Log.Level)
	logger := logging.Setup(level, cfg.Log.NoColor)
	plan.SetLogger(logger)
	defer plan.SetLogger(nil)

	logger.Info("plandemo starting", "version", plan.Version, "scripts", max(len(paths), 1))

	scripts, err := loadScripts(paths)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, sc := range scripts {
		g.Go(func() error {
			return Run(gctx, sc, cfg, filepath.Join(outDir, sc.Output), logger)
		})
	}
	return g.Wait()
}

func loadScripts(paths []string) ([]Script, error) {
	if len(paths) == 0 {
		sc, err := ParseScript(demoScript)
		if err != nil {
			return nil, fmt.Errorf("built-in demo: %w", err)
		}
		return []Script{sc}, nil
	}
	scripts := make([]Script, 0, len(paths))
	for _, p := range paths {
		sc, err := LoadScript(p)
		if err != nil {
			return nil, err
		}
		scripts = append(scripts, sc)
	}
	return scripts, nil
}
