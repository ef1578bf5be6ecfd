// Package mapcodec serializes sortedmap values to a canonical JSON form.
//
// Because a sortedmap already keeps its entries in canonical key order,
// equal maps encode to byte-identical JSON: the encoding is fit for
// content addressing, golden files, and wire-level comparison. The
// decoder enforces the same discipline: input whose keys are out of
// order or duplicated is rejected rather than silently normalized, so a
// decode/encode round trip is always the identity on canonical bytes.
package mapcodec

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/on-the-ground/persist_ive_go/ordering"
	"github.com/on-the-ground/persist_ive_go/sortedmap"
)

var (
	// ErrNotCanonical is returned when decoded keys are not in strictly
	// ascending order.
	ErrNotCanonical = errors.New("mapcodec: keys not in canonical order")

	// ErrDuplicateKey is returned when the input binds one key twice.
	ErrDuplicateKey = errors.New("mapcodec: duplicate key")

	// ErrMalformedPair is returned when a pair is not a two-element array.
	ErrMalformedPair = errors.New("mapcodec: pair is not a [key, value] array")
)

// EncodePairs encodes m as a JSON array of [key, value] arrays in
// canonical key order.
func EncodePairs[K, V any](
	m sortedmap.Map[K, V],
	encodeKey func(K) ([]byte, error),
	encodeValue func(V) ([]byte, error),
) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	first := true
	for k, v := range m.All() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		kb, err := encodeKey(k)
		if err != nil {
			return nil, fmt.Errorf("mapcodec: encode key %v: %w", k, err)
		}
		vb, err := encodeValue(v)
		if err != nil {
			return nil, fmt.Errorf("mapcodec: encode value for key %v: %w", k, err)
		}
		buf.WriteByte('[')
		buf.Write(kb)
		buf.WriteByte(',')
		buf.Write(vb)
		buf.WriteByte(']')
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// DecodePairs parses the canonical pair-array form produced by
// EncodePairs. Keys must arrive in strictly ascending order under cmp;
// out-of-order input fails with ErrNotCanonical and duplicated keys with
// ErrDuplicateKey. On success the returned map satisfies the sortedness
// invariant by construction.
func DecodePairs[K, V any](
	cmp ordering.Func[K],
	data []byte,
	decodeKey func([]byte) (K, error),
	decodeValue func([]byte) (V, error),
) (sortedmap.Map[K, V], error) {
	m := sortedmap.New[K, V](cmp)

	var pairs []json.RawMessage
	if err := json.Unmarshal(data, &pairs); err != nil {
		return m, fmt.Errorf("mapcodec: %w", err)
	}

	var prev K
	for i, raw := range pairs {
		var pair []json.RawMessage
		if err := json.Unmarshal(raw, &pair); err != nil {
			return m, fmt.Errorf("mapcodec: pair %d: %w", i, err)
		}
		if len(pair) != 2 {
			return m, fmt.Errorf("%w: pair %d has %d elements", ErrMalformedPair, i, len(pair))
		}

		k, err := decodeKey(pair[0])
		if err != nil {
			return m, fmt.Errorf("mapcodec: pair %d key: %w", i, err)
		}
		v, err := decodeValue(pair[1])
		if err != nil {
			return m, fmt.Errorf("mapcodec: pair %d value: %w", i, err)
		}

		if i > 0 {
			switch c := cmp(prev, k); {
			case c == 0:
				return sortedmap.New[K, V](cmp), fmt.Errorf("%w: pair %d", ErrDuplicateKey, i)
			case c > 0:
				return sortedmap.New[K, V](cmp), fmt.Errorf("%w: pair %d", ErrNotCanonical, i)
			}
		}
		prev = k
		m = m.Add(k, v)
	}
	return m, nil
}

// JSONEncoder wraps json.Marshal as an encode callback.
func JSONEncoder[T any]() func(T) ([]byte, error) {
	return func(v T) ([]byte, error) {
		return json.Marshal(v)
	}
}

// JSONDecoder wraps json.Unmarshal as a decode callback.
func JSONDecoder[T any]() func([]byte) (T, error) {
	return func(data []byte) (T, error) {
		var v T
		err := json.Unmarshal(data, &v)
		return v, err
	}
}
