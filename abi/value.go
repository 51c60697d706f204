package abi

import (
	"bytes"
	"encoding/hex"
	"strings"

	"github.com/holiman/uint256"
)

// Value is a runtime value of exactly one Type. The Type field carries the
// declared shape; which payload field is meaningful follows from Type.Kind:
//
//	Bool                    → B
//	Uint, Int               → Num (raw 256-bit word, two's complement for Int)
//	FixedBytes, Bytes       → Data
//	Address                 → Data (20 bytes)
//	String                  → Str
//	FixedArray, Array, Tuple → Elems
type Value struct {
	Num   *uint256.Int
	Str   string
	Data  []byte
	Elems []Value
	Type  Type
	B     bool
}

// BoolValue returns a bool value.
func BoolValue(b bool) Value { return Value{Type: Bool(), B: b} }

// UintValue returns an unsigned integer value of the given bit width.
func UintValue(bits int, x *uint256.Int) Value {
	return Value{Type: Uint(bits), Num: x}
}

// IntValue returns a signed integer value of the given bit width. The
// payload is the full 256-bit two's complement representation.
func IntValue(bits int, x *uint256.Int) Value {
	return Value{Type: Int(bits), Num: x}
}

// Uint64Value returns an unsigned integer value from a uint64.
func Uint64Value(bits int, v uint64) Value {
	return UintValue(bits, uint256.NewInt(v))
}

// Int64Value returns a signed integer value from an int64.
func Int64Value(bits int, v int64) Value {
	x := uint256.NewInt(0)
	if v < 0 {
		x.Neg(uint256.NewInt(uint64(-v)))
	} else {
		x.SetUint64(uint64(v))
	}
	return IntValue(bits, x)
}

// FixedBytesValue returns a bytesN value; N is taken from the payload length.
func FixedBytesValue(b []byte) Value {
	return Value{Type: FixedBytesT(len(b)), Data: b}
}

// BytesValue returns a dynamic bytes value.
func BytesValue(b []byte) Value { return Value{Type: BytesT(), Data: b} }

// StringValue returns a string value.
func StringValue(s string) Value { return Value{Type: StringT(), Str: s} }

// AddressValue returns a 20-byte address value.
func AddressValue(addr [20]byte) Value {
	return Value{Type: AddressT(), Data: addr[:]}
}

// ArrayValue returns a dynamic array value of the given element type.
func ArrayValue(elem Type, elems ...Value) Value {
	return Value{Type: ArrayOf(elem), Elems: elems}
}

// FixedArrayValue returns a fixed array value; the length is taken from the
// element count.
func FixedArrayValue(elem Type, elems ...Value) Value {
	return Value{Type: FixedArrayOf(elem, len(elems)), Elems: elems}
}

// TupleValue returns a tuple value; member types are taken from the elements.
func TupleValue(elems ...Value) Value {
	components := make([]Type, len(elems))
	for i, e := range elems {
		components[i] = e.Type
	}
	return Value{Type: TupleOf(components...), Elems: elems}
}

// TypeCheck reports whether the value's runtime shape matches t.
func (v Value) TypeCheck(t Type) bool {
	if v.Type.Kind != t.Kind {
		return false
	}
	switch t.Kind {
	case KindUint:
		return v.Num != nil && v.Num.BitLen() <= t.Size
	case KindInt:
		return v.Num != nil && fitsSigned(v.Num, t.Size)
	case KindFixedBytes:
		return len(v.Data) == t.Size
	case KindAddress:
		return len(v.Data) == 20
	case KindArray:
		for _, e := range v.Elems {
			if !e.TypeCheck(*t.Elem) {
				return false
			}
		}
		return true
	case KindFixedArray:
		if len(v.Elems) != t.Size {
			return false
		}
		for _, e := range v.Elems {
			if !e.TypeCheck(*t.Elem) {
				return false
			}
		}
		return true
	case KindTuple:
		if len(v.Elems) != len(t.Components) {
			return false
		}
		for i, e := range v.Elems {
			if !e.TypeCheck(t.Components[i]) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// TypesCheck reports whether every value matches the type at its index.
func TypesCheck(values []Value, types []Type) bool {
	if len(values) != len(types) {
		return false
	}
	for i, v := range values {
		if !v.TypeCheck(types[i]) {
			return false
		}
	}
	return true
}

// fitsSigned reports whether x, read as 256-bit two's complement, lies in
// [-2^(bits-1), 2^(bits-1)).
func fitsSigned(x *uint256.Int, bits int) bool {
	if bits >= 256 {
		return true
	}
	if x.Sign() >= 0 {
		return x.BitLen() <= bits-1
	}
	mag := new(uint256.Int).Neg(x)
	if mag.BitLen() <= bits-1 {
		return true
	}
	limit := new(uint256.Int).Lsh(uint256.NewInt(1), uint(bits-1))
	return mag.Eq(limit)
}

// Equal reports whether two values have the same type and payload.
func (v Value) Equal(other Value) bool {
	if !v.Type.Equal(other.Type) {
		return false
	}
	switch v.Type.Kind {
	case KindBool:
		return v.B == other.B
	case KindUint, KindInt:
		return v.Num.Eq(other.Num)
	case KindFixedBytes, KindBytes, KindAddress:
		return bytes.Equal(v.Data, other.Data)
	case KindString:
		return v.Str == other.Str
	default:
		if len(v.Elems) != len(other.Elems) {
			return false
		}
		for i := range v.Elems {
			if !v.Elems[i].Equal(other.Elems[i]) {
				return false
			}
		}
		return true
	}
}

// String renders the value the way the command line prints it: booleans as
// true/false, strings verbatim, byte payloads and integers as bare hex, and
// sequences bracketed and comma-separated.
func (v Value) String() string {
	switch v.Type.Kind {
	case KindBool:
		if v.B {
			return "true"
		}
		return "false"
	case KindUint, KindInt:
		w := v.Num.Bytes32()
		return hex.EncodeToString(w[:])
	case KindFixedBytes, KindBytes, KindAddress:
		return hex.EncodeToString(v.Data)
	case KindString:
		return v.Str
	default:
		parts := make([]string, len(v.Elems))
		for i, e := range v.Elems {
			parts[i] = e.String()
		}
		return "[" + strings.Join(parts, ",") + "]"
	}
}
