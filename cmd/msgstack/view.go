package main

import (
	"flag"
	"io"

	"msgstack/internal/logger"
	"msgstack/internal/transcript"
	"msgstack/internal/tui"
)

func viewMain(root rootArgs, args []string) {
	fs := flag.NewFlagSet("view", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	stackLog := fs.String("stack-log", "", "Write layout decisions of the stack to this file")
	if err := fs.Parse(args); err != nil {
		log.Fatalf("parse args: %v", err)
	}

	cfg, err := loadConfig(root)
	if err != nil {
		log.Fatalf("%v", err)
	}
	// 终端被 TUI 占用，日志只写文件。
	if logFile, _, err := logger.SetupFile(cfg.LogFile); err != nil {
		log.Warnf("failed to initialize log file: %v", err)
	} else {
		defer logFile.Close()
	}

	opts := tui.Options{Config: cfg, ConfigPath: cfg.Source}
	if *stackLog != "" {
		entry, closer, _, err := logger.SetupComponentFile("stack", *stackLog)
		if err != nil {
			log.Warnf("failed to initialize stack log (%s): %v", *stackLog, err)
		} else {
			defer closer.Close()
			opts.Log = entry
		}
	}

	entries, err := transcript.NewStore(cfg.Transcript).Load()
	if err != nil {
		log.Fatalf("load transcript: %v", err)
	}
	opts.Entries = entries
	log.WithField("entries", len(entries)).Info("starting viewer")

	if _, err := tui.Run(opts); err != nil {
		log.Fatalf("tui: %v", err)
	}
}
