package abi

// Encode serializes the values into the canonical head/tail layout. The
// output is a whole number of 32-byte words.
//
// Encode assumes the values already satisfy their declared Types (see
// TypesCheck); it performs no validation of its own. A FixedBytes or
// FixedArray payload whose length disagrees with its declared size is a
// contract violation on the caller's side.
func Encode(values []Value) []byte {
	return encodeSeq(values)
}

// encodeSeq lays out one head/tail region. Offsets written into the head
// are relative to the start of this region.
func encodeSeq(values []Value) []byte {
	headLen := 0
	for _, v := range values {
		headLen += v.Type.StaticSize()
	}

	head := make([]byte, 0, headLen)
	var tail []byte
	for _, v := range values {
		if v.Type.IsDynamic() {
			head = append(head, padUint(headLen+len(tail))...)
			tail = append(tail, encodeTail(v)...)
		} else {
			head = append(head, encodeStatic(v)...)
		}
	}
	return append(head, tail...)
}

// encodeStatic returns the in-place encoding of a static value.
func encodeStatic(v Value) []byte {
	switch v.Type.Kind {
	case KindBool:
		w := make([]byte, wordSize)
		if v.B {
			w[wordSize-1] = 1
		}
		return w
	case KindUint, KindInt:
		w := v.Num.Bytes32()
		return w[:]
	case KindAddress:
		w := make([]byte, wordSize)
		copy(w[wordSize-len(v.Data):], v.Data)
		return w
	case KindFixedBytes:
		if len(v.Data) == 0 {
			return nil
		}
		return padRight(v.Data)
	default: // static FixedArray or Tuple
		return encodeSeq(v.Elems)
	}
}

// encodeTail returns the tail payload of a dynamic value.
func encodeTail(v Value) []byte {
	switch v.Type.Kind {
	case KindBytes:
		return append(padUint(len(v.Data)), padRight(v.Data)...)
	case KindString:
		return append(padUint(len(v.Str)), padRight([]byte(v.Str))...)
	case KindArray:
		return append(padUint(len(v.Elems)), encodeSeq(v.Elems)...)
	default: // dynamic FixedArray or Tuple
		return encodeSeq(v.Elems)
	}
}
