package abi

import (
	"strconv"
	"strings"

	"github.com/wippyai/ethabi/errors"
)

// MaxTypeDepth caps the nesting depth ParseType accepts. Types built
// programmatically are trusted and unlimited; the cap only guards the
// reader against pathological strings like "bool[][][]…".
const MaxTypeDepth = 16

// ParseType parses a canonical type name into a Type.
//
// Accepted forms: "bool", "string", "address", "bytes", "bytesN" (1..32),
// "int"/"intN" and "uint"/"uintN" (N a multiple of 8 in 8..256, bare form
// meaning 256), array suffixes "[]" and "[N]" applying outside-in
// ("bool[2][]" is a dynamic array of bool[2]), and tuples "(T1,T2,…)".
func ParseType(s string) (Type, error) {
	return readType(s, 0)
}

func readType(s string, depth int) (Type, error) {
	if depth > MaxTypeDepth {
		return Type{}, errors.InvalidType(errors.PhaseRead, s, "nesting too deep")
	}
	if s == "" {
		return Type{}, errors.InvalidType(errors.PhaseRead, s, "empty type name")
	}

	// Array suffix binds last: strip it and read the element type.
	if strings.HasSuffix(s, "]") {
		open := strings.LastIndexByte(s, '[')
		if open <= 0 {
			return Type{}, errors.InvalidType(errors.PhaseRead, s, "malformed array suffix")
		}
		count := s[open+1 : len(s)-1]
		elem, err := readType(s[:open], depth+1)
		if err != nil {
			return Type{}, err
		}
		if count == "" {
			return ArrayOf(elem), nil
		}
		n, err2 := strconv.Atoi(count)
		if err2 != nil || n < 0 {
			return Type{}, errors.InvalidType(errors.PhaseRead, s, "malformed array length")
		}
		return FixedArrayOf(elem, n), nil
	}

	if strings.HasPrefix(s, "(") {
		if !strings.HasSuffix(s, ")") {
			return Type{}, errors.InvalidType(errors.PhaseRead, s, "unterminated tuple")
		}
		inner := s[1 : len(s)-1]
		if inner == "" {
			return TupleOf(), nil
		}
		parts, ok := splitTopLevel(inner)
		if !ok {
			return Type{}, errors.InvalidType(errors.PhaseRead, s, "unbalanced tuple")
		}
		components := make([]Type, len(parts))
		for i, part := range parts {
			c, err := readType(part, depth+1)
			if err != nil {
				return Type{}, err
			}
			components[i] = c
		}
		return TupleOf(components...), nil
	}

	switch {
	case s == "bool":
		return Bool(), nil
	case s == "string":
		return StringT(), nil
	case s == "address":
		return AddressT(), nil
	case s == "bytes":
		return BytesT(), nil
	case s == "int":
		return Int(256), nil
	case s == "uint":
		return Uint(256), nil
	case strings.HasPrefix(s, "bytes"):
		n, err := strconv.Atoi(s[len("bytes"):])
		if err != nil || n < 1 || n > 32 {
			return Type{}, errors.InvalidType(errors.PhaseRead, s, "fixed bytes length must be 1..32")
		}
		return FixedBytesT(n), nil
	case strings.HasPrefix(s, "uint"):
		bits, err := readBits(s[len("uint"):])
		if err != nil {
			return Type{}, errors.InvalidType(errors.PhaseRead, s, "integer width must be a multiple of 8 in 8..256")
		}
		return Uint(bits), nil
	case strings.HasPrefix(s, "int"):
		bits, err := readBits(s[len("int"):])
		if err != nil {
			return Type{}, errors.InvalidType(errors.PhaseRead, s, "integer width must be a multiple of 8 in 8..256")
		}
		return Int(bits), nil
	default:
		return Type{}, errors.InvalidType(errors.PhaseRead, s, "unknown type name")
	}
}

func readBits(s string) (int, error) {
	bits, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	if bits < 8 || bits > 256 || bits%8 != 0 {
		return 0, strconv.ErrRange
	}
	return bits, nil
}

// splitTopLevel splits s on commas outside any bracket or paren nesting.
// Reports false when the nesting is unbalanced.
func splitTopLevel(s string) ([]string, bool) {
	var parts []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[':
			depth++
		case ')', ']':
			depth--
			if depth < 0 {
				return nil, false
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, false
	}
	parts = append(parts, s[start:])
	return parts, true
}
