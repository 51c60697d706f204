package abi

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wippyai/ethabi/errors"
)

func TestDecodeAddress(t *testing.T) {
	data := mustHex(t, "0000000000000000000000001111111111111111111111111111111111111111")
	got, err := Decode([]Type{AddressT()}, data)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.True(t, got[0].Equal(addrValue(0x11)))
}

func TestDecodeTwoAddresses(t *testing.T) {
	data := mustHex(t, `
		0000000000000000000000001111111111111111111111111111111111111111
		0000000000000000000000002222222222222222222222222222222222222222
	`)
	got, err := Decode([]Type{AddressT(), AddressT()}, data)
	require.NoError(t, err)
	require.True(t, got[0].Equal(addrValue(0x11)))
	require.True(t, got[1].Equal(addrValue(0x22)))
}

func TestDecodeFixedArrayOfAddresses(t *testing.T) {
	data := mustHex(t, `
		0000000000000000000000001111111111111111111111111111111111111111
		0000000000000000000000002222222222222222222222222222222222222222
	`)
	got, err := Decode([]Type{FixedArrayOf(AddressT(), 2)}, data)
	require.NoError(t, err)
	require.True(t, got[0].Equal(FixedArrayValue(AddressT(), addrValue(0x11), addrValue(0x22))))
}

func TestDecodeUint(t *testing.T) {
	data := mustHex(t, "1111111111111111111111111111111111111111111111111111111111111111")
	got, err := Decode([]Type{Uint(256)}, data)
	require.NoError(t, err)
	require.True(t, got[0].Equal(UintValue(256, uint256FromBytes(t, "1111111111111111111111111111111111111111111111111111111111111111"))))
}

func TestDecodeInt(t *testing.T) {
	data := mustHex(t, "fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffe")
	got, err := Decode([]Type{Int(256)}, data)
	require.NoError(t, err)
	require.True(t, got[0].Equal(Int64Value(256, -2)))
}

func TestDecodeString(t *testing.T) {
	data := mustHex(t, `
		0000000000000000000000000000000000000000000000000000000000000020
		0000000000000000000000000000000000000000000000000000000000000009
		6761766f66796f726b0000000000000000000000000000000000000000000000
	`)
	got, err := Decode([]Type{StringT()}, data)
	require.NoError(t, err)
	require.Equal(t, "gavofyork", got[0].Str)
}

func TestDecodeDynamicArrayOfAddresses(t *testing.T) {
	data := mustHex(t, `
		0000000000000000000000000000000000000000000000000000000000000020
		0000000000000000000000000000000000000000000000000000000000000002
		0000000000000000000000001111111111111111111111111111111111111111
		0000000000000000000000002222222222222222222222222222222222222222
	`)
	got, err := Decode([]Type{ArrayOf(AddressT())}, data)
	require.NoError(t, err)
	require.True(t, got[0].Equal(ArrayValue(AddressT(), addrValue(0x11), addrValue(0x22))))
}

func TestDecodeDynamicArrayOfDynamicArrays(t *testing.T) {
	data := mustHex(t, `
		0000000000000000000000000000000000000000000000000000000000000020
		0000000000000000000000000000000000000000000000000000000000000002
		0000000000000000000000000000000000000000000000000000000000000040
		0000000000000000000000000000000000000000000000000000000000000080
		0000000000000000000000000000000000000000000000000000000000000001
		0000000000000000000000001111111111111111111111111111111111111111
		0000000000000000000000000000000000000000000000000000000000000001
		0000000000000000000000002222222222222222222222222222222222222222
	`)
	got, err := Decode([]Type{ArrayOf(ArrayOf(AddressT()))}, data)
	require.NoError(t, err)
	want := ArrayValue(ArrayOf(AddressT()),
		ArrayValue(AddressT(), addrValue(0x11)),
		ArrayValue(AddressT(), addrValue(0x22)))
	require.True(t, got[0].Equal(want))
}

func TestDecodeStaticTuple(t *testing.T) {
	data := mustHex(t, `
		0000000000000000000000001111111111111111111111111111111111111111
		0000000000000000000000002222222222222222222222222222222222222222
		1111111111111111111111111111111111111111111111111111111111111111
	`)
	typ := TupleOf(AddressT(), AddressT(), Uint(256))
	got, err := Decode([]Type{typ}, data)
	require.NoError(t, err)
	want := TupleValue(addrValue(0x11), addrValue(0x22),
		UintValue(256, uint256FromBytes(t, "1111111111111111111111111111111111111111111111111111111111111111")))
	require.True(t, got[0].Equal(want))
}

func TestDecodeDynamicTuple(t *testing.T) {
	data := mustHex(t, `
		0000000000000000000000000000000000000000000000000000000000000020
		0000000000000000000000000000000000000000000000000000000000000040
		0000000000000000000000000000000000000000000000000000000000000080
		0000000000000000000000000000000000000000000000000000000000000009
		6761766f66796f726b0000000000000000000000000000000000000000000000
		0000000000000000000000000000000000000000000000000000000000000009
		6761766f66796f726b0000000000000000000000000000000000000000000000
	`)
	got, err := Decode([]Type{TupleOf(StringT(), StringT())}, data)
	require.NoError(t, err)
	require.True(t, got[0].Equal(TupleValue(StringValue("gavofyork"), StringValue("gavofyork"))))
}

// The word that carries a boolean must be all-zero except its last byte;
// the value is true only when that byte is exactly one.
func TestDecodeBool(t *testing.T) {
	cases := []struct {
		name string
		word string
		want bool
		fail bool
	}{
		{"true", "0000000000000000000000000000000000000000000000000000000000000001", true, false},
		{"false", "0000000000000000000000000000000000000000000000000000000000000000", false, false},
		{"two is false", "0000000000000000000000000000000000000000000000000000000000000002", false, false},
		{"dirty padding", "0100000000000000000000000000000000000000000000000000000000000001", false, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Decode([]Type{Bool()}, mustHex(t, tc.word))
			if tc.fail {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.want, got[0].B)
		})
	}
}

func TestDecodeInvalidUTF8(t *testing.T) {
	data := mustHex(t, `
		0000000000000000000000000000000000000000000000000000000000000020
		0000000000000000000000000000000000000000000000000000000000000004
		ffffffff00000000000000000000000000000000000000000000000000000000
	`)
	_, err := Decode([]Type{StringT()}, data)
	require.Error(t, err)
	var abiErr *errors.Error
	require.ErrorAs(t, err, &abiErr)
	require.Equal(t, errors.KindInvalidUTF8, abiErr.Kind)
}

func TestDecodeEmptyInput(t *testing.T) {
	_, err := Decode([]Type{Uint(256)}, nil)
	require.Error(t, err)
	require.Contains(t, err.Error(), "JSON-RPC")

	// No parameters decode from no bytes.
	got, err := Decode(nil, nil)
	require.NoError(t, err)
	require.Empty(t, got)

	// Zero-sized fixed shapes admit the empty buffer.
	got, err = Decode([]Type{FixedArrayOf(Bool(), 0), TupleOf()}, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
}

func TestDecodeCorruptedDynamicArray(t *testing.T) {
	data := mustHex(t, `
		0000000000000000000000000000000000000000000000000000000000000020
		00000000000000000000000000000000000000000000000000000000ffffffff
	`)
	_, err := Decode([]Type{ArrayOf(Uint(32))}, data)
	require.Error(t, err)
}

func TestDecodeOffsetDoesNotFit(t *testing.T) {
	data := mustHex(t, `
		0000000100000000000000000000000000000000000000000000000000000020
		0000000000000000000000000000000000000000000000000000000000000000
	`)
	_, err := Decode([]Type{BytesT()}, data)
	require.Error(t, err)
	require.Contains(t, err.Error(), "32 bits")
}

func TestDecodeTruncated(t *testing.T) {
	cases := []struct {
		name  string
		types []Type
		data  string
	}{
		{"short word", []Type{Uint(256)}, "11"},
		{"offset beyond buffer", []Type{BytesT()},
			"0000000000000000000000000000000000000000000000000000000000000040"},
		{"length beyond buffer", []Type{BytesT()}, `
			0000000000000000000000000000000000000000000000000000000000000020
			00000000000000000000000000000000000000000000000000000000000000ff
		`},
		{"missing second param", []Type{Uint(256), Uint(256)},
			"0000000000000000000000000000000000000000000000000000000000000001"},
		{"tuple tail missing", []Type{TupleOf(StringT())},
			"0000000000000000000000000000000000000000000000000000000000000020"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.types, mustHex(t, tc.data))
			require.Error(t, err)
			var abiErr *errors.Error
			require.ErrorAs(t, err, &abiErr)
			require.Equal(t, errors.PhaseDecode, abiErr.Phase)
		})
	}
}

func TestDecodeErrorNamesPath(t *testing.T) {
	data := mustHex(t, `
		0000000000000000000000000000000000000000000000000000000000000001
		0100000000000000000000000000000000000000000000000000000000000001
	`)
	_, err := Decode([]Type{Bool(), Bool()}, data)
	require.Error(t, err)
	require.Contains(t, err.Error(), "param[1]")
}

func TestDecodeRoundTrip(t *testing.T) {
	cases := [][]Value{
		{BoolValue(true), StringValue("gavofyork"), BoolValue(false)},
		{ArrayValue(ArrayOf(Uint(256)),
			ArrayValue(Uint(256), Uint64Value(256, 1), Uint64Value(256, 2)),
			ArrayValue(Uint(256)))},
		{TupleValue(
			StringValue("welcome to zion"),
			BoolValue(true),
			TupleValue(StringValue("zion"), Uint64Value(256, 7)),
		)},
		{FixedArrayValue(ArrayOf(BytesT()),
			ArrayValue(BytesT(), BytesValue([]byte{1, 2, 3})),
			ArrayValue(BytesT(), BytesValue(nil), BytesValue([]byte{0xff})))},
		{Int64Value(64, -42), FixedBytesValue([]byte{0xde, 0xad}), addrValue(0x99)},
		{StringValue("")},
	}
	for _, values := range cases {
		types := make([]Type, len(values))
		for i, v := range values {
			types[i] = v.Type
		}
		got, err := Decode(types, Encode(values))
		require.NoError(t, err)
		require.Len(t, got, len(values))
		for i := range values {
			require.True(t, got[i].Equal(values[i]), "value %d mismatch", i)
		}
	}
}

func FuzzDecode(f *testing.F) {
	f.Add("uint256", []byte{})
	f.Add("bool[]", mustHexF("00000000000000000000000000000000000000000000000000000000000000200000000000000000000000000000000000000000000000000000000000000001"))
	f.Add("(string,bytes32[2])", mustHexF("0000000000000000000000000000000000000000000000000000000000000020"))
	f.Fuzz(func(t *testing.T, typeName string, data []byte) {
		typ, err := ParseType(typeName)
		if err != nil {
			t.Skip()
		}
		// Malformed input must surface as an error, never a panic.
		_, _ = Decode([]Type{typ}, data)
	})
}

func mustHexF(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}
