package mintcache

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
)

// blob is the whole persisted mapping. Entries are kept as the raw bytes they
// were read with, so rewriting the mapping after changing one address leaves
// every other address's entry byte-for-byte as it was.
type blob struct {
	entries map[string]json.RawMessage
}

func newBlob() *blob {
	return &blob{entries: map[string]json.RawMessage{}}
}

func parseBlob(raw []byte) (*blob, error) {
	b := newBlob()
	// an empty slot is "nothing minted yet", same as no slot
	if len(bytes.TrimSpace(raw)) == 0 {
		return b, nil
	}
	if err := json.Unmarshal(raw, &b.entries); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrCorruptStore, err)
	}
	if b.entries == nil {
		b.entries = map[string]json.RawMessage{}
	}
	return b, nil
}

func (b *blob) records(address string) ([]MintRecord, error) {
	raw, found := b.entries[address]
	result := []MintRecord{}
	if !found {
		return result, nil
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("%w: entry of %s: %s", ErrCorruptStore, address, err)
	}
	if result == nil {
		result = []MintRecord{}
	}
	return result, nil
}

func (b *blob) put(address string, records []MintRecord) error {
	if records == nil {
		records = []MintRecord{}
	}
	raw, err := marshalNoEscape(records)
	if err != nil {
		return err
	}
	b.entries[address] = raw
	return nil
}

// bytes serializes the mapping with keys in sorted order. Entry values are
// written out exactly as stored.
func (b *blob) bytes() ([]byte, error) {
	keys := make([]string, 0, len(b.entries))
	for k := range b.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		encodedKey, err := marshalNoEscape(k)
		if err != nil {
			return nil, err
		}
		buf.Write(encodedKey)
		buf.WriteByte(':')
		buf.Write(b.entries[k])
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// marshalNoEscape keeps characters like '<' and '&', which show up in
// kaomoji, readable in the stored file.
func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
