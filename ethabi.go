package ethabi

// WordSize is the byte length of the atomic encoding unit. Every encoded
// offset, length and scalar occupies exactly one word, and all encoded
// output is a whole number of words.
const WordSize = 32

// Word is a single 32-byte big-endian encoding unit.
type Word [WordSize]byte

// Hash is a 32-byte digest, as found in event-log topics.
type Hash [32]byte

// SelectorFunc derives the 4-byte call selector from a canonical function
// signature. The codec prepends whatever prefix it is given without
// interpreting it; the default implementation is a keccak256 truncation.
type SelectorFunc func(signature []byte) [4]byte
