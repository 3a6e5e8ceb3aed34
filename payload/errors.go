package payload

import "errors"

var (
	// ErrPayloadTooLarge means the art does not fit in one length byte.
	ErrPayloadTooLarge = errors.New("art is larger than 255 bytes")
	// ErrMagicMismatch means the bytes were not produced by this scheme.
	ErrMagicMismatch = errors.New("payload doesn't start with the MonASCII tag")
	// ErrLengthMismatch means the payload is ours but truncated or padded.
	ErrLengthMismatch = errors.New("payload length byte doesn't match its content")
	// ErrInvalidText means the content is not valid UTF-8.
	ErrInvalidText = errors.New("payload content is not valid UTF-8")
)
