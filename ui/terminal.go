package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/logrusorgru/aurora"
	runewidth "github.com/mattn/go-runewidth"
	indent "github.com/openconfig/goyang/pkg/indent"
	"golang.org/x/term"
)

const (
	indentUnit   = "  "
	sectionWidth = 50
)

type TerminalUI struct {
	level int
	out   io.Writer
	in    *bufio.Reader
	inFd  int
	tty   bool
	au    aurora.Aurora
}

// NewTerminalUI writes to stdout and reads from stdin. Colours and the
// spinner are only used when stdout is a terminal.
func NewTerminalUI() *TerminalUI {
	return NewTerminalUIWithIO(os.Stdout, os.Stdin)
}

func NewTerminalUIWithIO(out io.Writer, in io.Reader) *TerminalUI {
	u := &TerminalUI{
		out:  out,
		in:   bufio.NewReader(in),
		inFd: -1,
	}
	if f, ok := out.(*os.File); ok {
		u.tty = term.IsTerminal(int(f.Fd()))
	}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		u.inFd = int(f.Fd())
	}
	u.au = aurora.NewAurora(u.tty)
	return u
}

func (u *TerminalUI) prefix() string {
	return strings.Repeat(indentUnit, u.level)
}

func (u *TerminalUI) line(s string) {
	fmt.Fprintf(u.out, "%s%s\n", u.prefix(), s)
}

func (u *TerminalUI) Info(format string, args ...any) {
	u.line(fmt.Sprintf(format, args...))
}

func (u *TerminalUI) Success(format string, args ...any) {
	u.line(u.au.Green(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Warn(format string, args ...any) {
	u.line(u.au.Yellow(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Error(format string, args ...any) {
	u.line(u.au.Red(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Critical(format string, args ...any) {
	u.line(u.au.Bold(fmt.Sprintf(format, args...)).String())
}

func (u *TerminalUI) Section(title string) {
	fmt.Fprintf(u.out, "\n%s%s\n\n", u.prefix(), sectionLine(title))
}

func sectionLine(title string) string {
	titled := " " + title + " "
	bars := sectionWidth - runewidth.StringWidth(titled)
	if bars < 6 {
		bars = 6
	}
	return strings.Repeat("=", bars/2) + titled + strings.Repeat("=", bars-bars/2)
}

// width is the number of terminal cells s takes, ignoring colour codes.
func width(s string) int {
	return runewidth.StringWidth(ansi.Strip(s))
}

func padRight(s string, w int) string {
	if n := width(s); n < w {
		return s + strings.Repeat(" ", w-n)
	}
	return s
}

func (u *TerminalUI) KeyValue(rows [][2]string) {
	labelWidth := 0
	for _, r := range rows {
		if w := width(r[0]); w > labelWidth {
			labelWidth = w
		}
	}
	for _, r := range rows {
		u.line(padRight(r[0], labelWidth) + "  " + r[1])
	}
}

func (u *TerminalUI) Table(headers []string, rows [][]string) {
	for _, l := range renderTable(headers, rows, u.border) {
		u.line(l)
	}
}

func (u *TerminalUI) border(s string) string {
	if !u.tty {
		return s
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(s)
}

// renderTable returns the table's lines, borders passed through style.
func renderTable(headers []string, rows [][]string, style func(string) string) []string {
	cols := len(headers)
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	if cols == 0 {
		return nil
	}
	widths := make([]int, cols)
	measure := func(r []string) {
		for i, c := range r {
			if w := width(c); w > widths[i] {
				widths[i] = w
			}
		}
	}
	measure(headers)
	for _, r := range rows {
		measure(r)
	}

	rule := func(left, mid, right string) string {
		parts := make([]string, cols)
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return style(left + strings.Join(parts, mid) + right)
	}
	row := func(cells []string) string {
		parts := make([]string, cols)
		for i := range parts {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts[i] = " " + padRight(cell, widths[i]) + " "
		}
		return style("│") + strings.Join(parts, style("│")) + style("│")
	}

	lines := []string{rule("┌", "┬", "┐")}
	if len(headers) > 0 {
		lines = append(lines, row(headers), rule("├", "┼", "┤"))
	}
	for _, r := range rows {
		lines = append(lines, row(r))
	}
	return append(lines, rule("└", "┴", "┘"))
}

func (u *TerminalUI) Art(art string) {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 2)
	if u.tty {
		box = box.BorderForeground(lipgloss.Color("99"))
	}
	fmt.Fprintln(u.Writer(), box.Render(art))
}

func (u *TerminalUI) Spinner(msg string) func() {
	if !u.tty {
		u.line(msg)
		return func() {}
	}
	s := spinner.New(spinner.CharSets[14], 80*time.Millisecond, spinner.WithWriter(u.out))
	s.Prefix = u.prefix()
	s.Suffix = " " + msg
	s.Start()
	return func() {
		s.Stop()
		fmt.Fprintln(u.out)
	}
}

func (u *TerminalUI) Confirm(prompt string, defaultYes bool) bool {
	options := "[Y/n]"
	if !defaultYes {
		options = "[y/N]"
	}
	for {
		fmt.Fprintf(u.out, "%s%s %s ", u.prefix(), prompt, options)
		text, err := u.in.ReadString('\n')
		answer := strings.ToLower(strings.TrimSpace(text))
		switch {
		case answer == "" && err != nil:
			// nothing more to read, never block on a closed stdin
			fmt.Fprintln(u.out)
			return false
		case answer == "":
			return defaultYes
		case answer == "y" || answer == "yes":
			return true
		case answer == "n" || answer == "no":
			return false
		}
		u.Error("please enter y or n")
	}
}

func (u *TerminalUI) Password(prompt string) (string, error) {
	fmt.Fprintf(u.out, "%s%s: ", u.prefix(), prompt)
	if u.inFd >= 0 {
		secret, err := term.ReadPassword(u.inFd)
		fmt.Fprintln(u.out)
		if err != nil {
			return "", fmt.Errorf("couldn't read password: %w", err)
		}
		return string(secret), nil
	}
	text, err := u.in.ReadString('\n')
	if err != nil && text == "" {
		return "", fmt.Errorf("couldn't read password: %w", err)
	}
	return strings.TrimRight(text, "\r\n"), nil
}

func (u *TerminalUI) Indent() UI {
	child := *u
	child.level++
	return &child
}

func (u *TerminalUI) Writer() io.Writer {
	if u.level == 0 {
		return u.out
	}
	return indent.NewWriter(u.out, u.prefix())
}
