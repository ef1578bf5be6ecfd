package mapcodec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/on-the-ground/persist_ive_go/ordering"
	"github.com/on-the-ground/persist_ive_go/sortedmap"
)

// EncodeObject encodes a string-keyed map as a single JSON object whose
// members appear in canonical key order. The map must have been built
// with byte-order string comparison (ordering.Natural[string]); any other
// string order would emit members in an order a JSON reader cannot
// reconstruct.
func EncodeObject[V any](
	m sortedmap.Map[string, V],
	encodeValue func(V) ([]byte, error),
) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		kb, err := json.Marshal(k)
		if err != nil {
			return nil, fmt.Errorf("mapcodec: encode key %q: %w", k, err)
		}
		vb, err := encodeValue(v)
		if err != nil {
			return nil, fmt.Errorf("mapcodec: encode value for key %q: %w", k, err)
		}
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecodeObject parses a JSON object into a string-keyed map, enforcing
// canonical member order the way DecodePairs does. Token-level decoding
// preserves the member order the wire actually carried, which
// map[string]V unmarshaling would destroy.
func DecodeObject[V any](
	data []byte,
	decodeValue func([]byte) (V, error),
) (sortedmap.Map[string, V], error) {
	cmp := ordering.Natural[string]()
	m := sortedmap.New[string, V](cmp)

	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return m, fmt.Errorf("mapcodec: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return m, fmt.Errorf("mapcodec: expected object, got %v", tok)
	}

	var prev string
	for i := 0; dec.More(); i++ {
		tok, err := dec.Token()
		if err != nil {
			return m, fmt.Errorf("mapcodec: member %d: %w", i, err)
		}
		k, ok := tok.(string)
		if !ok {
			return m, fmt.Errorf("mapcodec: member %d: non-string key %v", i, tok)
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return m, fmt.Errorf("mapcodec: member %q: %w", k, err)
		}
		v, err := decodeValue(raw)
		if err != nil {
			return m, fmt.Errorf("mapcodec: member %q: %w", k, err)
		}

		if i > 0 {
			switch c := strings.Compare(prev, k); {
			case c == 0:
				return sortedmap.New[string, V](cmp), fmt.Errorf("%w: member %q", ErrDuplicateKey, k)
			case c > 0:
				return sortedmap.New[string, V](cmp), fmt.Errorf("%w: member %q", ErrNotCanonical, k)
			}
		}
		prev = k
		m = m.Add(k, v)
	}

	if _, err := dec.Token(); err != nil {
		return m, fmt.Errorf("mapcodec: %w", err)
	}
	return m, nil
}
