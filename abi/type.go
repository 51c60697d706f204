package abi

import (
	"strconv"
	"strings"
)

// Type describes the shape of a Value. A Type is a finite tree: recursion
// bottoms out at scalar leaves, and the zero Type is bool.
type Type struct {
	Elem       *Type  // element type for Array and FixedArray
	Components []Type // member types for Tuple
	Size       int    // bit width for Int/Uint, byte length for FixedBytes, element count for FixedArray
	Kind       Kind
}

// Bool returns the bool type.
func Bool() Type { return Type{Kind: KindBool} }

// Uint returns the unsigned integer type of the given bit width.
func Uint(bits int) Type { return Type{Kind: KindUint, Size: bits} }

// Int returns the signed integer type of the given bit width.
func Int(bits int) Type { return Type{Kind: KindInt, Size: bits} }

// FixedBytesT returns the bytesN type of the given byte length.
func FixedBytesT(n int) Type { return Type{Kind: KindFixedBytes, Size: n} }

// BytesT returns the dynamic bytes type.
func BytesT() Type { return Type{Kind: KindBytes} }

// StringT returns the string type.
func StringT() Type { return Type{Kind: KindString} }

// AddressT returns the 20-byte address type.
func AddressT() Type { return Type{Kind: KindAddress} }

// ArrayOf returns the dynamic array type with the given element type.
func ArrayOf(elem Type) Type { return Type{Kind: KindArray, Elem: &elem} }

// FixedArrayOf returns the fixed array type of n elements.
func FixedArrayOf(elem Type, n int) Type {
	return Type{Kind: KindFixedArray, Elem: &elem, Size: n}
}

// TupleOf returns the tuple type with the given member types.
func TupleOf(components ...Type) Type {
	return Type{Kind: KindTuple, Components: components}
}

// IsDynamic reports whether the encoded length of the type depends on the
// value's content. Dynamic types occupy one offset word in their enclosing
// head region; static types encode in place.
func (t Type) IsDynamic() bool {
	switch t.Kind {
	case KindBytes, KindString, KindArray:
		return true
	case KindFixedArray:
		return t.Elem.IsDynamic()
	case KindTuple:
		for _, c := range t.Components {
			if c.IsDynamic() {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// StaticSize returns the encoded byte length a value of this type occupies
// in its enclosing head region: the full in-place encoding for static types,
// one offset word for dynamic ones. Always a multiple of 32.
func (t Type) StaticSize() int {
	if t.IsDynamic() {
		return wordSize
	}
	switch t.Kind {
	case KindFixedBytes:
		return ((t.Size + wordSize - 1) / wordSize) * wordSize
	case KindFixedArray:
		return t.Size * t.Elem.StaticSize()
	case KindTuple:
		size := 0
		for _, c := range t.Components {
			size += c.StaticSize()
		}
		return size
	default:
		return wordSize
	}
}

// AdmitsEmpty reports whether the zero-length buffer is a valid encoding of
// the type. Only zero-sized fixed shapes qualify.
func (t Type) AdmitsEmpty() bool {
	switch t.Kind {
	case KindFixedBytes:
		return t.Size == 0
	case KindFixedArray:
		return t.Size == 0 || t.Elem.AdmitsEmpty()
	case KindTuple:
		for _, c := range t.Components {
			if !c.AdmitsEmpty() {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// String returns the canonical type name used in function signatures,
// e.g. "uint256", "bytes32", "bool[]", "address[5]", "(bool,string)[2]".
func (t Type) String() string {
	switch t.Kind {
	case KindBool:
		return "bool"
	case KindUint:
		return "uint" + strconv.Itoa(t.Size)
	case KindInt:
		return "int" + strconv.Itoa(t.Size)
	case KindFixedBytes:
		return "bytes" + strconv.Itoa(t.Size)
	case KindBytes:
		return "bytes"
	case KindString:
		return "string"
	case KindAddress:
		return "address"
	case KindArray:
		return t.Elem.String() + "[]"
	case KindFixedArray:
		return t.Elem.String() + "[" + strconv.Itoa(t.Size) + "]"
	case KindTuple:
		names := make([]string, len(t.Components))
		for i, c := range t.Components {
			names[i] = c.String()
		}
		return "(" + strings.Join(names, ",") + ")"
	default:
		return "unknown"
	}
}

// Equal reports whether two types describe the same shape.
func (t Type) Equal(other Type) bool {
	if t.Kind != other.Kind || t.Size != other.Size {
		return false
	}
	if (t.Elem == nil) != (other.Elem == nil) {
		return false
	}
	if t.Elem != nil && !t.Elem.Equal(*other.Elem) {
		return false
	}
	if len(t.Components) != len(other.Components) {
		return false
	}
	for i := range t.Components {
		if !t.Components[i].Equal(other.Components[i]) {
			return false
		}
	}
	return true
}
