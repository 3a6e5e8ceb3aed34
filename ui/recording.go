package ui

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Entry is one recorded UI call.
type Entry struct {
	Method string
	Value  string
}

// recording is shared by a RecordingUI and every child made by Indent.
type recording struct {
	entries []Entry
	inputs  []string
	next    int
	buf     bytes.Buffer
}

// RecordingUI keeps every call for assertions and answers Confirm and
// Password from scripted inputs, in order. Running out of inputs panics.
type RecordingUI struct {
	rec   *recording
	level int
}

func NewRecordingUI(inputs ...string) *RecordingUI {
	return &RecordingUI{rec: &recording{inputs: inputs}}
}

func (r *RecordingUI) record(method, value string) {
	r.rec.entries = append(r.rec.entries, Entry{Method: method, Value: value})
}

func (r *RecordingUI) input(method string) string {
	if r.rec.next >= len(r.rec.inputs) {
		panic(fmt.Sprintf("RecordingUI: no scripted input left for %s", method))
	}
	in := r.rec.inputs[r.rec.next]
	r.rec.next++
	return in
}

func (r *RecordingUI) Info(format string, args ...any) {
	r.record("Info", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Success(format string, args ...any) {
	r.record("Success", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Warn(format string, args ...any) {
	r.record("Warn", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Error(format string, args ...any) {
	r.record("Error", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Critical(format string, args ...any) {
	r.record("Critical", fmt.Sprintf(format, args...))
}

func (r *RecordingUI) Section(title string) {
	r.record("Section", title)
}

func (r *RecordingUI) KeyValue(rows [][2]string) {
	for _, row := range rows {
		r.record("KeyValue", row[0]+": "+row[1])
	}
}

// Table records one entry per row, cells joined by " | ".
func (r *RecordingUI) Table(headers []string, rows [][]string) {
	for _, row := range rows {
		r.record("Table", strings.Join(row, " | "))
	}
}

func (r *RecordingUI) Art(art string) {
	r.record("Art", art)
}

func (r *RecordingUI) Spinner(msg string) func() {
	r.record("Spinner", msg)
	return func() {}
}

// Confirm takes "y"/"yes" as true, "" as the default, anything else as false.
func (r *RecordingUI) Confirm(prompt string, defaultYes bool) bool {
	r.record("Confirm", prompt)
	answer := strings.ToLower(strings.TrimSpace(r.input("Confirm")))
	if answer == "" {
		return defaultYes
	}
	return answer == "y" || answer == "yes"
}

func (r *RecordingUI) Password(prompt string) (string, error) {
	r.record("Password", prompt)
	return r.input("Password"), nil
}

func (r *RecordingUI) Indent() UI {
	return &RecordingUI{rec: r.rec, level: r.level + 1}
}

func (r *RecordingUI) Writer() io.Writer {
	return &r.rec.buf
}

func (r *RecordingUI) Entries() []Entry {
	return r.rec.entries
}

// Messages returns the values recorded for method.
func (r *RecordingUI) Messages(method string) []string {
	var out []string
	for _, e := range r.rec.entries {
		if e.Method == method {
			out = append(out, e.Value)
		}
	}
	return out
}

// HasMessage reports whether any recorded value contains substr, ignoring case.
func (r *RecordingUI) HasMessage(substr string) bool {
	substr = strings.ToLower(substr)
	for _, e := range r.rec.entries {
		if strings.Contains(strings.ToLower(e.Value), substr) {
			return true
		}
	}
	return false
}

// Output is everything written through Writer.
func (r *RecordingUI) Output() string {
	return r.rec.buf.String()
}
