// Package abi implements the Ethereum contract ABI codec.
//
// This package handles bidirectional conversion between typed runtime values
// and the ABI's canonical binary layout of 32-byte big-endian words.
//
// # Binary Layout Overview
//
// Encoded output is split into a head and a tail region:
//
//	┌──────────────────────────────────────────────────────────┐
//	│ head: one slot per value (inline data or tail offset)    │
//	│ tail: variable-length payloads, in declared order        │
//	└──────────────────────────────────────────────────────────┘
//
// Static types occupy their full encoding in the head; dynamic types occupy
// one offset word pointing into the tail. Offsets are relative to the start
// of the immediately enclosing head/tail region, so composite values nest by
// applying the same scheme recursively:
//
//	Type            Head slot          Tail
//	────────────────────────────────────────────────────────────
//	bool            value word         —
//	uintN/intN      value word         —
//	address         value word         —
//	bytesN          N bytes, padded    —
//	bytes/string    offset word        length word + padded data
//	T[]             offset word        count word + head/tail of elements
//	T[N] (static)   N slots inline     —
//	T[N] (dynamic)  offset word        head/tail of elements
//	tuple (static)  member slots       —
//	tuple (dynamic) offset word        head/tail of members
//
// # Key Types
//
//	Type       - Shape description (closed Kind set, recursive)
//	Value      - Tagged runtime value matching exactly one Type
//	ParseType  - Canonical type-string reader ("uint256[3]", "(bool,string)")
//	ParseValue - Strict/lenient human-readable value parser
//
// # Encoding Flow
//
//  1. ParseType / build Types programmatically
//  2. ParseValue(typ, token, lenient) → Value
//  3. Encode([]Value) → []byte
//
// # Decoding Flow
//
//  1. Decode([]Type, data) → []Value
//
// Decoding validates every offset, length and count against the buffer and
// never panics on malformed input; failures are *errors.Error values with
// the parameter path that failed.
package abi
