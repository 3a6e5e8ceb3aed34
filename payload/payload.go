// Package payload packs a short text into the self-describing byte layout
// that MonASCII writes into transaction data:
//
//	| magic tag (8 bytes) | length (1 byte) | UTF-8 content (length bytes) |
//
// The layout is the only wire contract of the project. Anyone scanning chain
// data must reproduce it exactly: no padding, no trailing bytes.
package payload

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// MaxContentLength is the largest content a single length byte can describe.
const MaxContentLength = 255

// Tag is the magic prefix, "MONSCR01" (0x4d4f4e5343523031).
var Tag = []byte{0x4d, 0x4f, 0x4e, 0x53, 0x43, 0x52, 0x30, 0x31}

// headerLength is the tag plus the length byte.
var headerLength = len(Tag) + 1

// Encode returns the payload carrying art. Oversized art is rejected rather
// than truncated.
func Encode(art string) ([]byte, error) {
	if len(art) > MaxContentLength {
		return nil, fmt.Errorf("%w: %d bytes, max %d", ErrPayloadTooLarge, len(art), MaxContentLength)
	}
	if !utf8.ValidString(art) {
		return nil, ErrInvalidText
	}
	result := make([]byte, 0, headerLength+len(art))
	result = append(result, Tag...)
	result = append(result, byte(len(art)))
	result = append(result, art...)
	return result, nil
}

// Decode is the exact inverse of Encode. It fails with ErrMagicMismatch when
// data does not start with Tag, with ErrLengthMismatch when the declared
// length disagrees with the bytes that follow it, and with ErrInvalidText
// when the content is not UTF-8.
func Decode(data []byte) (string, error) {
	if len(data) < len(Tag) || !bytes.Equal(data[:len(Tag)], Tag) {
		return "", ErrMagicMismatch
	}
	if len(data) < headerLength {
		return "", fmt.Errorf("%w: missing length byte", ErrLengthMismatch)
	}
	declared := int(data[len(Tag)])
	content := data[headerLength:]
	if len(content) != declared {
		return "", fmt.Errorf(
			"%w: declared %d bytes, found %d",
			ErrLengthMismatch, declared, len(content),
		)
	}
	if !utf8.Valid(content) {
		return "", ErrInvalidText
	}
	return string(content), nil
}

// EncodeHex returns the payload for art as 0x-prefixed hex, the form wallets
// and JSON-RPC nodes expect for transaction data.
func EncodeHex(art string) (string, error) {
	data, err := Encode(art)
	if err != nil {
		return "", err
	}
	return hexutil.Encode(data), nil
}

// DecodeHex decodes 0x-prefixed transaction data.
func DecodeHex(data string) (string, error) {
	raw, err := hexutil.Decode(data)
	if err != nil {
		return "", fmt.Errorf("couldn't decode hex tx data: %w", err)
	}
	return Decode(raw)
}
