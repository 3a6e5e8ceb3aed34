package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferUI(input string) (*TerminalUI, *bytes.Buffer) {
	out := &bytes.Buffer{}
	return NewTerminalUIWithIO(out, strings.NewReader(input)), out
}

func TestTableAlignsWideGlyphs(t *testing.T) {
	u, out := newBufferUI("")
	u.Table([]string{"#", "art"}, [][]string{
		{"1", "(ｏ・_・)ノ"},
		{"2", "(^_^)"},
	})

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	for _, l := range lines {
		assert.Equal(t, width(lines[0]), width(l), l)
	}
	assert.True(t, strings.HasPrefix(lines[0], "┌"))
	assert.True(t, strings.HasPrefix(lines[5], "└"))
}

func TestKeyValueAndIndent(t *testing.T) {
	u, out := newBufferUI("")
	u.Indent().KeyValue([][2]string{
		{"Network", "monad-testnet"},
		{"Tx", "0x1"},
	})
	assert.Equal(t, "  Network  monad-testnet\n  Tx       0x1\n", out.String())
}

func TestWriterIndentsEveryLine(t *testing.T) {
	u, out := newBufferUI("")
	u.Indent().Indent().Writer().Write([]byte("a\nb\n"))
	assert.Equal(t, "    a\n    b\n", out.String())
}

func TestArtIsFramed(t *testing.T) {
	u, out := newBufferUI("")
	u.Art("(^_^)")
	assert.Contains(t, out.String(), "(^_^)")
	assert.Contains(t, out.String(), "╭")
}

func TestSectionLine(t *testing.T) {
	l := sectionLine("Mint")
	assert.Equal(t, sectionWidth, len(l))
	assert.Contains(t, l, " Mint ")
}

func TestConfirm(t *testing.T) {
	u, _ := newBufferUI("maybe\ny\n\n")
	assert.True(t, u.Confirm("go?", false))
	assert.True(t, u.Confirm("go?", true))
	// stdin is exhausted
	assert.False(t, u.Confirm("go?", true))
}

func TestPasswordFromPipe(t *testing.T) {
	u, _ := newBufferUI("hunter2\n")
	secret, err := u.Password("Keystore password")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", secret)

	_, err = u.Password("again")
	assert.Error(t, err)
}

func TestSpinnerWithoutTerminal(t *testing.T) {
	u, out := newBufferUI("")
	stop := u.Spinner("broadcasting")
	stop()
	assert.Equal(t, "broadcasting\n", out.String())
}

func TestRecordingUI(t *testing.T) {
	r := NewRecordingUI("y", "secret")
	r.Info("hello %s", "there")
	r.Indent().Table(nil, [][]string{{"1", "(^_^)"}})
	assert.True(t, r.Confirm("sure?", false))
	pw, err := r.Password("pw")
	require.NoError(t, err)
	assert.Equal(t, "secret", pw)

	assert.Equal(t, []string{"hello there"}, r.Messages("Info"))
	assert.Equal(t, []string{"1 | (^_^)"}, r.Messages("Table"))
	assert.True(t, r.HasMessage("HELLO"))
	assert.Panics(t, func() { r.Confirm("again?", true) })
}
