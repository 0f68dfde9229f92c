// Package logs builds the structured logger shared by the command line
// tools.
package logs

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"time"

	slogmulti "github.com/samber/slog-multi"
	slogjournal "github.com/systemd/slog-journal"
)

// Options selects the logger outputs.
type Options struct {
	Writer  io.Writer // Terminal output; nil disables it.
	Verbose bool      // Log at debug level instead of info.
	Journal bool      // Also log to the systemd journal.
}

// New creates a logger fanning out to every output requested.
func New(opts Options) *slog.Logger {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)
	if opts.Verbose {
		level.Set(slog.LevelDebug)
	}

	var handlers []slog.Handler

	var terminalHandler slog.Handler
	if opts.Writer != nil {
		terminalHandler = slog.NewTextHandler(
			opts.Writer,
			&slog.HandlerOptions{
				Level: level,
			},
		)
		handlers = append(handlers, terminalHandler)
	}

	if opts.Journal {
		journalHandler, err := slogjournal.NewHandler(&slogjournal.Options{
			Level: level,
			ReplaceGroup: func(key string) string {
				return toJournalKey(key)
			},
			ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
				a.Key = toJournalKey(a.Key)
				return a
			},
		})
		if err != nil {
			if terminalHandler != nil {
				record := slog.NewRecord(time.Now(), slog.LevelWarn, "new systemd journal handler", 0)
				record.Add("error", err)
				_ = terminalHandler.Handle(context.Background(), record)
			}
		} else {
			handlers = append(handlers, journalHandler)
		}
	}

	return slog.New(slogmulti.Fanout(handlers...))
}

// toJournalKey converts an attribute key to the journal field syntax.
func toJournalKey(str string) string {
	str = strings.ToUpper(str)
	str = strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' ||
			r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, str)
	return str
}
