package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"msgstack/internal/transcript"
)

func runAppend(root rootArgs, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("append", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var e transcript.Entry
	fs.StringVar(&e.Role, "role", "user", "Message role (user, assistant, system)")
	fs.StringVar(&e.Sender, "sender", "", "Display name shown above the message")
	fs.StringVar(&e.Attachment, "attach", "", "Attachment file name")
	if err := fs.Parse(args); err != nil {
		return err
	}
	e.Text = strings.Join(fs.Args(), " ")
	if strings.TrimSpace(e.Text) == "" && strings.TrimSpace(e.Attachment) == "" {
		return errors.New("nothing to append: pass message text or -attach")
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}
	saved, err := transcript.NewStore(cfg.Transcript).Append(e)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, saved.ID)
	return err
}
