// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user-visible text for the user's locale.
package translate

import (
	"io"
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// printer is built on first use, so package level error values may call From.
var printer = sync.OnceValue(func() *message.Printer {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("bfdb: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
})

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer().Sprintf(key, args...)
}

// Fprintf translates an en-US Fprintf() format, and writes it to w.
func Fprintf(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	return printer().Fprintf(w, key, args...)
}
