// Package hrw implements rendezvous (highest random weight) hashing: every
// key maps to the target with the highest blake2b score for the pair, so
// removing a target only moves the keys it owned.
package hrw

import (
	"encoding/binary"

	"golang.org/x/crypto/blake2b"
)

// Best returns the index of the target with the highest score for key, or
// -1 if targets is empty. Ties go to the lower index.
func Best(key []byte, targets []string, seed string) int {
	best, bestScore := -1, uint64(0)
	for i, id := range targets {
		if s := score(key, id, seed); best < 0 || s > bestScore {
			best, bestScore = i, s
		}
	}
	return best
}

func score(key []byte, targetID string, seed string) uint64 {
	// 8-byte digest => uint64 score
	h, _ := blake2b.New(8, nil)

	if seed != "" {
		h.Write([]byte(seed))
		h.Write([]byte{0})
	}
	h.Write(key)
	h.Write([]byte{0})
	h.Write([]byte(targetID))

	return binary.BigEndian.Uint64(h.Sum(nil))
}
