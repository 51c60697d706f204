package contract

import (
	"golang.org/x/crypto/sha3"

	"github.com/wippyai/ethabi"
)

// keccak256 hashes data with the legacy (pre-NIST) Keccak-256 used for
// selectors and event topics.
func keccak256(data []byte) ethabi.Hash {
	h := sha3.NewLegacyKeccak256()
	h.Write(data)
	var out ethabi.Hash
	copy(out[:], h.Sum(nil))
	return out
}

// keccakSelector is the default ethabi.SelectorFunc: the first four bytes
// of the keccak256 digest of the canonical signature.
func keccakSelector(signature []byte) [4]byte {
	digest := keccak256(signature)
	var sel [4]byte
	copy(sel[:], digest[:4])
	return sel
}
