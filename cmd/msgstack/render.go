package main

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"msgstack/internal/transcript"
	"msgstack/internal/tui"
)

// runRender 绘制一帧并输出，便于脚本或测试查看淘汰结果。
func runRender(root rootArgs, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("render", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var width, height int
	var plain bool
	var query string
	fs.IntVar(&width, "width", 80, "Frame width in columns")
	fs.IntVar(&height, "height", 24, "Frame height in rows")
	fs.BoolVar(&plain, "plain", false, "Strip styling from the output")
	fs.StringVar(&query, "filter", "", "Only render messages matching this fuzzy query")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if width <= 0 || height < 0 {
		return fmt.Errorf("invalid frame size %dx%d", width, height)
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	entries, err := transcript.NewStore(cfg.Transcript).Load()
	if err != nil {
		return fmt.Errorf("load transcript: %w", err)
	}
	entries = transcript.Filter(entries, query)

	c := tui.BuildStack(cfg, entries, nil)
	frame := tui.Paint(c, width, height)
	lines := frame.Lines
	if plain {
		lines = frame.Plain
	}
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	_, err = fmt.Fprintln(out, strings.Join(lines, "\n"))
	return err
}
