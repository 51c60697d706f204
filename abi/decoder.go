package abi

import (
	"strconv"
	"unicode/utf8"

	"github.com/holiman/uint256"
	"github.com/wippyai/ethabi/errors"
)

// Decode deserializes data against the ordered type sequence, reversing
// Encode. Every offset, length and count read from the buffer is
// bounds-checked; malformed input yields an *errors.Error (PhaseDecode)
// naming the parameter path that failed, never a panic.
func Decode(types []Type, data []byte) ([]Value, error) {
	if len(data) == 0 && !admitEmpty(types) {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Detail("cannot decode empty bytes; if this is a call result, " +
				"verify that the contract and method exist (JSON-RPC returns 0x " +
				"for calls to missing contracts or methods)").
			Build()
	}

	values := make([]Value, 0, len(types))
	offset := 0
	for i, t := range types {
		v, next, err := decodeParam(t, data, offset, []string{"param[" + strconv.Itoa(i) + "]"})
		if err != nil {
			return nil, err
		}
		values = append(values, v)
		offset = next
	}
	return values, nil
}

func admitEmpty(types []Type) bool {
	for _, t := range types {
		if !t.AdmitsEmpty() {
			return false
		}
	}
	return true
}

// decodeParam decodes one value whose head slot begins at offset within the
// current region (data). It returns the cursor position following the head
// slot. Tail payloads are addressed relative to the region start, matching
// the encoder's region-relative offsets.
func decodeParam(t Type, data []byte, offset int, path []string) (Value, int, error) {
	switch t.Kind {
	case KindAddress:
		w, err := peekWord(data, offset, path)
		if err != nil {
			return Value{}, 0, err
		}
		var addr [20]byte
		copy(addr[:], w[12:])
		return AddressValue(addr), offset + wordSize, nil

	case KindUint:
		w, err := peekWord(data, offset, path)
		if err != nil {
			return Value{}, 0, err
		}
		return UintValue(t.Size, new(uint256.Int).SetBytes(w[:])), offset + wordSize, nil

	case KindInt:
		w, err := peekWord(data, offset, path)
		if err != nil {
			return Value{}, 0, err
		}
		return IntValue(t.Size, new(uint256.Int).SetBytes(w[:])), offset + wordSize, nil

	case KindBool:
		w, err := peekWord(data, offset, path)
		if err != nil {
			return Value{}, 0, err
		}
		for _, b := range w[:wordSize-1] {
			if b != 0 {
				return Value{}, 0, errors.New(errors.PhaseDecode, errors.KindInvalidData).
					Path(path...).
					Detail("boolean word has non-zero padding").
					Build()
			}
		}
		return BoolValue(w[wordSize-1] == 1), offset + wordSize, nil

	case KindFixedBytes:
		b, err := takeBytes(data, offset, t.Size, path)
		if err != nil {
			return Value{}, 0, err
		}
		return FixedBytesValue(b), offset + wordSize, nil

	case KindBytes, KindString:
		tailOffset, err := peekOffset(data, offset, path)
		if err != nil {
			return Value{}, 0, err
		}
		length, err := peekOffset(data, tailOffset, path)
		if err != nil {
			return Value{}, 0, err
		}
		content, err := takeBytes(data, tailOffset+wordSize, length, path)
		if err != nil {
			return Value{}, 0, err
		}
		if t.Kind == KindBytes {
			return BytesValue(content), offset + wordSize, nil
		}
		if !utf8.Valid(content) {
			return Value{}, 0, errors.InvalidUTF8(errors.PhaseDecode, path, content)
		}
		return StringValue(string(content)), offset + wordSize, nil

	case KindArray:
		countOffset, err := peekOffset(data, offset, path)
		if err != nil {
			return Value{}, 0, err
		}
		count, err := peekOffset(data, countOffset, path)
		if err != nil {
			return Value{}, 0, err
		}
		tail := data[countOffset+wordSize:]
		// Every element head slot is at least one word, so a count word
		// larger than the remaining words is malformed. Checked before
		// allocating element storage.
		if count > len(tail)/wordSize {
			return Value{}, 0, errors.New(errors.PhaseDecode, errors.KindInvalidData).
				Path(path...).
				Detail("array count %d exceeds remaining buffer", count).
				Build()
		}
		elems := make([]Value, 0, count)
		cursor := 0
		for i := 0; i < count; i++ {
			elem, next, err := decodeParam(*t.Elem, tail, cursor, childPath(path, i))
			if err != nil {
				return Value{}, 0, err
			}
			elems = append(elems, elem)
			cursor = next
		}
		return ArrayValue(*t.Elem, elems...), offset + wordSize, nil

	case KindFixedArray:
		region, cursor, err := compositeRegion(t, data, offset, path)
		if err != nil {
			return Value{}, 0, err
		}
		elems := make([]Value, 0, t.Size)
		for i := 0; i < t.Size; i++ {
			elem, next, err := decodeParam(*t.Elem, region, cursor, childPath(path, i))
			if err != nil {
				return Value{}, 0, err
			}
			elems = append(elems, elem)
			cursor = next
		}
		v := FixedArrayValue(*t.Elem, elems...)
		if t.IsDynamic() {
			return v, offset + wordSize, nil
		}
		return v, cursor, nil

	case KindTuple:
		region, cursor, err := compositeRegion(t, data, offset, path)
		if err != nil {
			return Value{}, 0, err
		}
		elems := make([]Value, 0, len(t.Components))
		for i, c := range t.Components {
			elem, next, err := decodeParam(c, region, cursor, childPath(path, i))
			if err != nil {
				return Value{}, 0, err
			}
			elems = append(elems, elem)
			cursor = next
		}
		v := TupleValue(elems...)
		if t.IsDynamic() {
			return v, offset + wordSize, nil
		}
		return v, cursor, nil

	default:
		return Value{}, 0, errors.Unsupported(errors.PhaseDecode, "unknown type kind")
	}
}

// compositeRegion resolves the head/tail region a fixed array or tuple
// decodes from: the current region in place when static, the tail region
// behind one offset word when dynamic.
func compositeRegion(t Type, data []byte, offset int, path []string) ([]byte, int, error) {
	if !t.IsDynamic() {
		return data, offset, nil
	}
	tailOffset, err := peekOffset(data, offset, path)
	if err != nil {
		return nil, 0, err
	}
	if tailOffset > len(data) {
		return nil, 0, errors.OutOfBounds(errors.PhaseDecode, path, tailOffset, len(data))
	}
	return data[tailOffset:], 0, nil
}

func childPath(path []string, i int) []string {
	child := make([]string, len(path), len(path)+1)
	copy(child, path)
	return append(child, "["+strconv.Itoa(i)+"]")
}

// peekWord reads one word starting at offset.
func peekWord(data []byte, offset int, path []string) ([wordSize]byte, error) {
	var w [wordSize]byte
	if offset < 0 || offset+wordSize > len(data) {
		return w, errors.OutOfBounds(errors.PhaseDecode, path, offset+wordSize, len(data))
	}
	copy(w[:], data[offset:offset+wordSize])
	return w, nil
}

// peekOffset reads one word and interprets it as an offset, length or count.
func peekOffset(data []byte, offset int, path []string) (int, error) {
	w, err := peekWord(data, offset, path)
	if err != nil {
		return 0, err
	}
	n, ok := wordToInt(w)
	if !ok {
		return 0, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Path(path...).
			Detail("offset or length word does not fit in 32 bits").
			Build()
	}
	return n, nil
}

// takeBytes copies n bytes starting at offset.
func takeBytes(data []byte, offset, n int, path []string) ([]byte, error) {
	if n < 0 || offset < 0 || offset+n > len(data) {
		return nil, errors.OutOfBounds(errors.PhaseDecode, path, offset+n, len(data))
	}
	out := make([]byte, n)
	copy(out, data[offset:offset+n])
	return out, nil
}
