package main

import (
	"flag"
	"io"
)

type rootArgs struct {
	cfgPath   string
	overrides []string
}

func parseRootArgs(args []string) (rootArgs, []string, error) {
	fs := flag.NewFlagSet("msgstack", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var root rootArgs
	var overrides stringSlice
	fs.StringVar(&root.cfgPath, "config", "", "Path to config file (default ~/.msgstack/config.toml)")
	fs.Var(&overrides, "c", "Override config value key=value (repeatable)")
	if err := fs.Parse(args); err != nil {
		return rootArgs{}, nil, err
	}
	root.overrides = append([]string{}, overrides...)
	return root, fs.Args(), nil
}
