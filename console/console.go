// Package console carries plain text diagnostics out of the allocator.
// Messages are reporting only, never control flow.
package console

import (
	"io"
	"log/slog"
	"strings"
)

// Sink accepts a plain text message.
type Sink interface {
	Puts(msg string)
}

// Writer forwards messages to an io.Writer.
type Writer struct {
	Out io.Writer
}

// Puts ...
func (w Writer) Puts(msg string) {
	_, _ = io.WriteString(w.Out, msg)
}

// Logger forwards messages to a structured logger, one record per
// message with the trailing newline stripped.
type Logger struct {
	L *slog.Logger
}

// Puts ...
func (l Logger) Puts(msg string) {
	l.L.Info(strings.TrimSuffix(msg, "\n"))
}

// Discard drops every message.
type Discard struct{}

// Puts ...
func (Discard) Puts(string) {}

// Buffer records every message, for inspection in tests.
type Buffer struct {
	Messages []string
}

// Puts ...
func (b *Buffer) Puts(msg string) {
	b.Messages = append(b.Messages, msg)
}
