package payload

import "errors"

// Kind tells a scanner what it is looking at.
type Kind uint8

const (
	Unrecognized Kind = iota // not one of ours
	Recognized               // a well formed MonASCII payload
	Malformed                // tagged as ours but corrupt
)

func (k Kind) String() string {
	switch k {
	case Recognized:
		return "recognized"
	case Malformed:
		return "malformed"
	default:
		return "unrecognized"
	}
}

// Result is the outcome of Classify. Text is set only for Recognized and
// Reason only for Malformed.
type Result struct {
	Kind   Kind
	Text   string
	Reason error
}

// Classify inspects arbitrary transaction data without treating foreign data
// as a failure, so callers walking many transactions can branch on Kind.
func Classify(data []byte) Result {
	text, err := Decode(data)
	switch {
	case err == nil:
		return Result{Kind: Recognized, Text: text}
	case errors.Is(err, ErrMagicMismatch):
		return Result{Kind: Unrecognized}
	default:
		return Result{Kind: Malformed, Reason: err}
	}
}
