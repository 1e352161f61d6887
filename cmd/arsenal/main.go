// Package main provides the arsenal binary: it loads game content and a
// player build file, evaluates the build, and prints the report.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/voidrig/arsenal/internal/config"
	"github.com/voidrig/arsenal/internal/gamedata"
	"github.com/voidrig/arsenal/internal/observability"
	"github.com/voidrig/arsenal/internal/report"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	contentDir := flag.String("content", "", "content directory; overrides the configured path")
	buildPath := flag.String("build", "", "path to the build YAML file to evaluate")
	flag.Parse()

	if *buildPath == "" {
		log.Fatal("usage: arsenal -build <build.yaml> [-config <config.yaml>] [-content <dir>]")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *contentDir != "" {
		cfg.Content.Root = *contentDir
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	loadStart := time.Now()
	content, err := gamedata.LoadContent(cfg.Content.Root)
	if err != nil {
		logger.Fatal("loading content", zap.Error(err))
	}
	logger.Info("content loaded",
		zap.Int("mods", len(content.Mods)),
		zap.Int("warframes", len(content.Warframes)),
		zap.Int("weapons", len(content.Weapons)),
		zap.Duration("elapsed", time.Since(loadStart)),
	)

	build, err := gamedata.LoadBuild(*buildPath)
	if err != nil {
		logger.Fatal("loading build", zap.Error(err))
	}

	out, err := report.Render(build, content, cfg.Capacity.Base)
	if err != nil {
		logger.Fatal("evaluating build", zap.String("build", build.Name), zap.Error(err))
	}

	fmt.Fprint(os.Stdout, out)
	logger.Info("done", zap.Duration("elapsed", time.Since(start)))
}
