// Package menu maps single-key selections to named actions.
package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInvalidSelection is returned by Dispatch for keys that have no entry.
var ErrInvalidSelection = errors.New("invalid selection")

// Result tells the caller what to do after a handler has run.
type Result int

const (
	// Stay keeps the caller on its current menu.
	Stay Result = iota
	// Back returns control to the previous menu.
	Back
	// Quit ends the program.
	Quit
)

// Handler runs the action behind a menu entry.
type Handler func(ctx context.Context) (Result, error)

// Entry is one selectable line of a menu.
type Entry struct {
	Key     string
	Label   string
	Handler Handler
}

// Menu keeps entries in declaration order; keys double as the numbers shown to the user.
type Menu struct {
	Title   string
	Entries []Entry
}

// New builds a menu and panics on duplicate keys, which are a programming error.
func New(title string, entries ...Entry) *Menu {
	seen := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		key := normalizeKey(e.Key)
		if _, ok := seen[key]; ok {
			panic(fmt.Sprintf("menu %q: duplicate key %q", title, e.Key))
		}
		seen[key] = struct{}{}
	}
	return &Menu{Title: title, Entries: entries}
}

// Render writes every entry as "(key) label" using format for the key and label parts.
func (m *Menu) Render(w io.Writer, format func(key, label string) string) error {
	if format == nil {
		format = plainLine
	}
	for _, e := range m.Entries {
		if _, err := fmt.Fprintln(w, format(e.Key, e.Label)); err != nil {
			return err
		}
	}
	return nil
}

// Lookup finds the entry for input. Matching ignores case and surrounding whitespace.
func (m *Menu) Lookup(input string) (Entry, bool) {
	key := normalizeKey(input)
	if key == "" {
		return Entry{}, false
	}
	for _, e := range m.Entries {
		if normalizeKey(e.Key) == key {
			return e, true
		}
	}
	return Entry{}, false
}

// Dispatch runs the handler registered for input.
func (m *Menu) Dispatch(ctx context.Context, input string) (Result, error) {
	entry, ok := m.Lookup(input)
	if !ok {
		return Stay, fmt.Errorf("%w: %q", ErrInvalidSelection, strings.TrimSpace(input))
	}
	if entry.Handler == nil {
		return Stay, nil
	}
	return entry.Handler(ctx)
}

func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

func plainLine(key, label string) string {
	return fmt.Sprintf(" (%s) %s", key, label)
}
