package sortedmap

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Digest64 hashes the map's content. Entries are fed to the hash in
// canonical key order with length-prefixed framing, so two maps with
// equal bindings digest identically no matter what sequence of Adds and
// Removes produced them, and no framing ambiguity lets distinct maps
// collide on concatenation boundaries.
//
// keyBytes and valueBytes must themselves be deterministic encodings;
// equivalent keys with distinct representations should encode equally if
// the digest is meant to respect key equivalence.
func Digest64[K, V any](m Map[K, V], keyBytes func(K) []byte, valueBytes func(V) []byte) uint64 {
	h := xxhash.New()
	var prefix [8]byte
	frame := func(b []byte) {
		binary.BigEndian.PutUint64(prefix[:], uint64(len(b)))
		_, _ = h.Write(prefix[:])
		_, _ = h.Write(b)
	}
	for _, e := range m.entries {
		frame(keyBytes(e.Key))
		frame(valueBytes(e.Value))
	}
	return h.Sum64()
}
