package abi

// Kind identifies one variant of the closed ABI type set.
type Kind uint8

const (
	KindBool Kind = iota
	KindUint
	KindInt
	KindFixedBytes
	KindBytes
	KindString
	KindAddress
	KindFixedArray
	KindArray
	KindTuple
)

var kindNames = [...]string{
	KindBool:       "bool",
	KindUint:       "uint",
	KindInt:        "int",
	KindFixedBytes: "fixed bytes",
	KindBytes:      "bytes",
	KindString:     "string",
	KindAddress:    "address",
	KindFixedArray: "fixed array",
	KindArray:      "array",
	KindTuple:      "tuple",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// IsScalar reports whether the kind carries no element or component types.
func (k Kind) IsScalar() bool {
	return k <= KindAddress
}
