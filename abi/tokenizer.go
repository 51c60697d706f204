package abi

import (
	"encoding/hex"
	"strings"

	"github.com/holiman/uint256"
	"github.com/wippyai/ethabi/errors"
)

// ParseValue converts a human-readable token into a Value of the given type.
//
// Strict mode accepts: "true"/"false" for bool; decimal integers (sign only
// for int); addresses as exactly 40 hex characters with optional "0x";
// bytesN as exactly 2N hex characters; bytes as even-length hex; strings
// verbatim; and composites as bracketed, comma-separated element tokens,
// e.g. "[1,2,3]" or "[true,[0x11,0x22]]".
//
// Lenient mode accepts a strict superset of the same input space, mapping
// every strictly valid token to the identical Value. It additionally allows
// "1"/"0" for bool and "0x"-prefixed hex for integers (raw two's complement
// bits for int).
func ParseValue(t Type, token string, lenient bool) (Value, error) {
	return parseValue(t, token, lenient, nil)
}

func parseValue(t Type, token string, lenient bool, path []string) (Value, error) {
	switch t.Kind {
	case KindBool:
		return parseBool(token, lenient, path)
	case KindUint:
		return parseUint(t.Size, token, lenient, path)
	case KindInt:
		return parseInt(t.Size, token, lenient, path)
	case KindAddress:
		return parseAddress(token, path)
	case KindFixedBytes:
		b, err := parseHexToken(token, path)
		if err != nil {
			return Value{}, err
		}
		if len(b) != t.Size {
			return Value{}, errors.New(errors.PhaseParse, errors.KindInvalidData).
				Path(path...).
				AbiType(t.String()).
				Detail("got %d bytes, want %d", len(b), t.Size).
				Value(token).
				Build()
		}
		return FixedBytesValue(b), nil
	case KindBytes:
		b, err := parseHexToken(token, path)
		if err != nil {
			return Value{}, err
		}
		return BytesValue(b), nil
	case KindString:
		return StringValue(token), nil
	case KindArray, KindFixedArray, KindTuple:
		return parseComposite(t, token, lenient, path)
	default:
		return Value{}, errors.Unsupported(errors.PhaseParse, "unknown type kind")
	}
}

func parseBool(token string, lenient bool, path []string) (Value, error) {
	switch token {
	case "true":
		return BoolValue(true), nil
	case "false":
		return BoolValue(false), nil
	case "1":
		if lenient {
			return BoolValue(true), nil
		}
	case "0":
		if lenient {
			return BoolValue(false), nil
		}
	}
	return Value{}, errors.New(errors.PhaseParse, errors.KindInvalidData).
		Path(path...).
		AbiType("bool").
		Detail("invalid boolean %q", token).
		Value(token).
		Build()
}

func parseUint(bits int, token string, lenient bool, path []string) (Value, error) {
	x := new(uint256.Int)
	if lenient && strings.HasPrefix(token, "0x") {
		if err := x.SetFromHex(token); err != nil {
			return Value{}, errors.InvalidHex(errors.PhaseParse, path, token)
		}
	} else if err := x.SetFromDecimal(token); err != nil {
		return Value{}, errors.New(errors.PhaseParse, errors.KindInvalidData).
			Path(path...).
			AbiType(Uint(bits).String()).
			Detail("invalid unsigned decimal %q", token).
			Value(token).
			Build()
	}
	if x.BitLen() > bits {
		return Value{}, errors.Overflow(errors.PhaseParse, path, token, Uint(bits).String())
	}
	return UintValue(bits, x), nil
}

func parseInt(bits int, token string, lenient bool, path []string) (Value, error) {
	if lenient && strings.HasPrefix(token, "0x") {
		// Hex is taken as the raw two's complement bit pattern of the
		// declared width, sign-extended to the full word: int8 0xff is -1.
		x := new(uint256.Int)
		if err := x.SetFromHex(token); err != nil {
			return Value{}, errors.InvalidHex(errors.PhaseParse, path, token)
		}
		if x.BitLen() > bits {
			return Value{}, errors.Overflow(errors.PhaseParse, path, token, Int(bits).String())
		}
		if bits < 256 {
			x.ExtendSign(x, uint256.NewInt(uint64(bits/8-1)))
		}
		return IntValue(bits, x), nil
	}

	neg := strings.HasPrefix(token, "-")
	digits := strings.TrimPrefix(token, "-")
	mag := new(uint256.Int)
	if err := mag.SetFromDecimal(digits); err != nil {
		return Value{}, errors.New(errors.PhaseParse, errors.KindInvalidData).
			Path(path...).
			AbiType(Int(bits).String()).
			Detail("invalid signed decimal %q", token).
			Value(token).
			Build()
	}

	// Range is [-2^(bits-1), 2^(bits-1)).
	limit := new(uint256.Int).Lsh(uint256.NewInt(1), uint(bits-1))
	if (!neg && mag.Cmp(limit) >= 0) || (neg && mag.Cmp(limit) > 0) {
		return Value{}, errors.Overflow(errors.PhaseParse, path, token, Int(bits).String())
	}
	x := new(uint256.Int).Set(mag)
	if neg {
		x.Neg(mag)
	}
	return IntValue(bits, x), nil
}

func parseAddress(token string, path []string) (Value, error) {
	h := strings.TrimPrefix(token, "0x")
	if len(h) != 40 {
		return Value{}, errors.New(errors.PhaseParse, errors.KindInvalidData).
			Path(path...).
			AbiType("address").
			Detail("address must be 40 hex characters, got %d", len(h)).
			Value(token).
			Build()
	}
	b, err := hex.DecodeString(h)
	if err != nil {
		return Value{}, errors.InvalidHex(errors.PhaseParse, path, token)
	}
	var addr [20]byte
	copy(addr[:], b)
	return AddressValue(addr), nil
}

func parseHexToken(token string, path []string) ([]byte, error) {
	h := strings.TrimPrefix(token, "0x")
	b, err := hex.DecodeString(h)
	if err != nil {
		return nil, errors.InvalidHex(errors.PhaseParse, path, token)
	}
	return b, nil
}

func parseComposite(t Type, token string, lenient bool, path []string) (Value, error) {
	if !strings.HasPrefix(token, "[") || !strings.HasSuffix(token, "]") {
		return Value{}, errors.New(errors.PhaseParse, errors.KindInvalidData).
			Path(path...).
			AbiType(t.String()).
			Detail("composite token must be bracketed: %q", token).
			Value(token).
			Build()
	}

	var tokens []string
	if inner := token[1 : len(token)-1]; inner != "" {
		parts, ok := splitTopLevel(inner)
		if !ok {
			return Value{}, errors.New(errors.PhaseParse, errors.KindInvalidData).
				Path(path...).
				AbiType(t.String()).
				Detail("unbalanced brackets in %q", token).
				Value(token).
				Build()
		}
		tokens = parts
	}

	switch t.Kind {
	case KindFixedArray:
		if len(tokens) != t.Size {
			return Value{}, errors.ArityMismatch(errors.PhaseParse, path, len(tokens), t.Size, t.String())
		}
	case KindTuple:
		if len(tokens) != len(t.Components) {
			return Value{}, errors.ArityMismatch(errors.PhaseParse, path, len(tokens), len(t.Components), t.String())
		}
	}

	elems := make([]Value, 0, len(tokens))
	for i, sub := range tokens {
		var et Type
		if t.Kind == KindTuple {
			et = t.Components[i]
		} else {
			et = *t.Elem
		}
		elem, err := parseValue(et, strings.TrimSpace(sub), lenient, childPath(path, i))
		if err != nil {
			return Value{}, err
		}
		elems = append(elems, elem)
	}

	switch t.Kind {
	case KindArray:
		return ArrayValue(*t.Elem, elems...), nil
	case KindFixedArray:
		return FixedArrayValue(*t.Elem, elems...), nil
	default:
		v := TupleValue(elems...)
		// Preserve declared component types for empty members.
		v.Type = t
		return v, nil
	}
}
