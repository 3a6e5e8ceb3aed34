package payload_test

import (
	"bytes"
	"math/rand"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tranvictor/monascii/payload"
)

// randomText builds a valid UTF-8 string of at most maxBytes bytes mixing
// ASCII, Latin, CJK and astral-plane runes.
func randomText(rng *rand.Rand, maxBytes int) string {
	ranges := [][2]rune{
		{0x20, 0x7e},
		{0xa0, 0x24f},
		{0x3040, 0x30ff},
		{0x4e00, 0x9fff},
		{0x1f300, 0x1f64f},
	}
	var b strings.Builder
	target := rng.Intn(maxBytes + 1)
	for {
		r := ranges[rng.Intn(len(ranges))]
		c := r[0] + rune(rng.Intn(int(r[1]-r[0])+1))
		if b.Len()+utf8.RuneLen(c) > target {
			return b.String()
		}
		b.WriteRune(c)
	}
}

func TestEncodeLayout(t *testing.T) {
	data, err := payload.Encode("(^_^)")
	require.NoError(t, err)

	assert.Equal(t, payload.Tag, data[:len(payload.Tag)])
	assert.Equal(t, byte(5), data[len(payload.Tag)])
	assert.Equal(t, []byte("(^_^)"), data[len(payload.Tag)+1:])
	assert.Len(t, data, len(payload.Tag)+1+5)

	h, err := payload.EncodeHex("(^_^)")
	require.NoError(t, err)
	assert.Equal(t, "0x4d4f4e534352303105285e5f5e29", h)
}

func TestRoundTripExample(t *testing.T) {
	data, err := payload.Encode("(^_^)")
	require.NoError(t, err)
	art, err := payload.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "(^_^)", art)
}

func TestRoundTrip(t *testing.T) {
	fixed := []string{
		"",
		"(ʘ‿ʘ)",
		"¯\\_(ツ)_/¯",
		"(ノಠ益ಠ)ノ彡┻━┻",
		" /\\_/\\\n( o.o )\n > ^ <",
		strings.Repeat("a", payload.MaxContentLength),
		strings.Repeat("é", payload.MaxContentLength/2),
		strings.Repeat("ツ", payload.MaxContentLength/3),
	}
	for _, art := range fixed {
		data, err := payload.Encode(art)
		require.NoError(t, err, "encode %q", art)
		got, err := payload.Decode(data)
		require.NoError(t, err, "decode %q", art)
		assert.Equal(t, art, got)
	}

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 2000; i++ {
		art := randomText(rng, payload.MaxContentLength)
		data, err := payload.Encode(art)
		require.NoError(t, err)
		got, err := payload.Decode(data)
		require.NoError(t, err)
		require.Equal(t, art, got)

		h, err := payload.EncodeHex(art)
		require.NoError(t, err)
		got, err = payload.DecodeHex(h)
		require.NoError(t, err)
		require.Equal(t, art, got)
	}
}

func TestEncodeRejectsOversizedArt(t *testing.T) {
	for _, art := range []string{
		strings.Repeat("a", 256),
		strings.Repeat("a", 1000),
		strings.Repeat("ツ", 86), // 258 bytes, only 86 runes
	} {
		_, err := payload.Encode(art)
		assert.ErrorIs(t, err, payload.ErrPayloadTooLarge, "len %d", len(art))
	}
}

func TestEncodeRejectsInvalidUTF8(t *testing.T) {
	_, err := payload.Encode(string([]byte{0xff, 0xfe}))
	assert.ErrorIs(t, err, payload.ErrInvalidText)
}

func TestDecodeRejectsForeignData(t *testing.T) {
	cases := map[string][]byte{
		"nil":            nil,
		"empty":          {},
		"partial tag":    payload.Tag[:3],
		"erc20 transfer": {0xa9, 0x05, 0x9c, 0xbb, 0, 0, 0, 0, 0, 0, 0, 0},
		"lowercase tag":  append([]byte("monscr01"), 1, 'x'),
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := payload.Decode(data)
			assert.ErrorIs(t, err, payload.ErrMagicMismatch)
			assert.Equal(t, payload.Unrecognized, payload.Classify(data).Kind)
		})
	}

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		data := make([]byte, rng.Intn(64))
		rng.Read(data)
		if bytes.HasPrefix(data, payload.Tag) {
			continue
		}
		_, err := payload.Decode(data)
		require.ErrorIs(t, err, payload.ErrMagicMismatch)
	}
}

func TestDecodeLengthIntegrity(t *testing.T) {
	data, err := payload.Encode("(^_^)")
	require.NoError(t, err)

	lengthAt := len(payload.Tag)
	for declared := 0; declared <= 255; declared++ {
		if declared == 5 {
			continue
		}
		tampered := append([]byte{}, data...)
		tampered[lengthAt] = byte(declared)
		_, err := payload.Decode(tampered)
		require.ErrorIs(t, err, payload.ErrLengthMismatch, "declared %d", declared)
	}
}

func TestDecodeRejectsTruncatedAndTrailingBytes(t *testing.T) {
	data, err := payload.Encode("(•‿•)")
	require.NoError(t, err)

	_, err = payload.Decode(data[:len(payload.Tag)])
	assert.ErrorIs(t, err, payload.ErrLengthMismatch, "tag only")

	_, err = payload.Decode(data[:len(data)-1])
	assert.ErrorIs(t, err, payload.ErrLengthMismatch, "truncated")

	_, err = payload.Decode(append(append([]byte{}, data...), 0))
	assert.ErrorIs(t, err, payload.ErrLengthMismatch, "zero padded")

	second, err := payload.Encode("(>‿<)")
	require.NoError(t, err)
	_, err = payload.Decode(append(append([]byte{}, data...), second...))
	assert.ErrorIs(t, err, payload.ErrLengthMismatch, "concatenated")
}

func TestDecodeRejectsInvalidContent(t *testing.T) {
	data := append(append([]byte{}, payload.Tag...), 2, 0xc3, 0x28)
	_, err := payload.Decode(data)
	assert.ErrorIs(t, err, payload.ErrInvalidText)
}

func TestClassify(t *testing.T) {
	good, err := payload.Encode("(ᵔᴥᵔ)")
	require.NoError(t, err)

	res := payload.Classify(good)
	assert.Equal(t, payload.Recognized, res.Kind)
	assert.Equal(t, "(ᵔᴥᵔ)", res.Text)
	assert.NoError(t, res.Reason)

	res = payload.Classify(good[:len(good)-2])
	assert.Equal(t, payload.Malformed, res.Kind)
	assert.ErrorIs(t, res.Reason, payload.ErrLengthMismatch)
	assert.Empty(t, res.Text)

	res = payload.Classify([]byte("hello"))
	assert.Equal(t, payload.Unrecognized, res.Kind)
	assert.Equal(t, "unrecognized", res.Kind.String())
}

func TestDecodeHexRejectsBadHex(t *testing.T) {
	_, err := payload.DecodeHex("4d4f")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, payload.ErrMagicMismatch)

	_, err = payload.DecodeHex("0x")
	assert.ErrorIs(t, err, payload.ErrMagicMismatch)
}
