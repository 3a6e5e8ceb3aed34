// Package ui is everything MonASCII prints to the user or asks from them.
//
// Commands talk to the UI interface only. TerminalUI renders to a terminal;
// RecordingUI keeps every call so command tests can assert on them.
package ui

import "io"

type UI interface {
	Info(format string, args ...any)
	// Success is for things that went through, like a broadcast mint.
	Success(format string, args ...any)
	Warn(format string, args ...any)
	// Error reports a failure. It does not stop the command.
	Error(format string, args ...any)
	// Critical is what the user must read before signing, or must keep
	// after broadcasting: the art, the tx id.
	Critical(format string, args ...any)

	// Section prints a "===== title =====" separator.
	Section(title string)

	// KeyValue prints label/value rows with the values aligned.
	KeyValue(rows [][2]string)

	// Table prints a bordered table. Column widths follow the display width
	// of the cells, so wide kaomoji glyphs line up.
	Table(headers []string, rows [][]string)

	// Art prints one piece of art framed in a box.
	Art(art string)

	// Spinner shows msg with an animation until the returned func is called.
	Spinner(msg string) func()

	// Confirm asks a yes/no question. An empty answer picks the default.
	Confirm(prompt string, defaultYes bool) bool

	// Password reads a secret without echoing it.
	Password(prompt string) (string, error)

	// Indent returns a UI one level deeper, sharing output and input.
	Indent() UI

	// Writer prefixes the current indentation to every line written.
	Writer() io.Writer
}
