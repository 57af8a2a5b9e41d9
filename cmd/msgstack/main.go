package main

import (
	"fmt"
	"os"

	"msgstack/internal/config"
	"msgstack/internal/logger"
)

var log = logger.Named("cli")

func main() {
	logger.Configure()

	root, rest, err := parseRootArgs(os.Args[1:])
	if err != nil {
		log.Fatalf("parse args: %v", err)
	}
	cmd := "view"
	if len(rest) > 0 {
		cmd, rest = rest[0], rest[1:]
	}
	switch cmd {
	case "view":
		viewMain(root, rest)
	case "render":
		if err := runRender(root, rest, os.Stdout); err != nil {
			log.Fatalf("render failed: %v", err)
		}
	case "append":
		if err := runAppend(root, rest, os.Stdout); err != nil {
			log.Fatalf("append failed: %v", err)
		}
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q (want view, render or append)\n", cmd)
		os.Exit(2)
	}
}

func loadConfig(root rootArgs) (config.Config, error) {
	cfg, err := config.Load(root.cfgPath)
	if err != nil {
		return cfg, fmt.Errorf("load config: %w", err)
	}
	cfg = config.ApplyKVOverrides(cfg, root.overrides)
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		log.Warnf("%v", err)
	}
	return cfg, nil
}
