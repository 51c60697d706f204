package contract

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wippyai/ethabi/abi"
)

func bazFunction() *Function {
	return &Function{
		Name: "baz",
		Inputs: []Param{
			{Name: "a", Type: abi.Uint(32)},
			{Name: "b", Type: abi.Bool()},
		},
		Outputs: []Param{{Name: "", Type: abi.Bool()}},
	}
}

func TestFunctionSignature(t *testing.T) {
	f := bazFunction()
	require.Equal(t, "baz(uint32,bool)", f.Signature())
	require.Equal(t, "baz(uint32,bool):(bool)", f.VerboseSignature())
}

func TestFunctionSignatureWithTuple(t *testing.T) {
	f := &Function{
		Name: "submit",
		Inputs: []Param{
			{Name: "order", Type: abi.TupleOf(abi.AddressT(), abi.Uint(256))},
			{Name: "proofs", Type: abi.ArrayOf(abi.FixedBytesT(32))},
		},
	}
	require.Equal(t, "submit((address,uint256),bytes32[])", f.Signature())
}

func TestFunctionSelector(t *testing.T) {
	f := bazFunction()
	sel := f.Selector()
	require.Equal(t, "cdcd77c0", hex.EncodeToString(sel[:]))

	// transfer(address,uint256) is the canonical ERC-20 selector.
	transfer := &Function{
		Name: "transfer",
		Inputs: []Param{
			{Name: "to", Type: abi.AddressT()},
			{Name: "value", Type: abi.Uint(256)},
		},
	}
	sel = transfer.Selector()
	require.Equal(t, "a9059cbb", hex.EncodeToString(sel[:]))
}

func TestFunctionSelectorWith(t *testing.T) {
	f := bazFunction()
	var captured string
	sel := f.SelectorWith(func(signature []byte) [4]byte {
		captured = string(signature)
		return [4]byte{1, 2, 3, 4}
	})
	require.Equal(t, "baz(uint32,bool)", captured)
	require.Equal(t, [4]byte{1, 2, 3, 4}, sel)
}

func TestFunctionEncodeInput(t *testing.T) {
	f := bazFunction()
	got, err := f.EncodeInput([]abi.Value{abi.Uint64Value(32, 69), abi.BoolValue(true)})
	require.NoError(t, err)
	require.Equal(t,
		"cdcd77c0"+
			"0000000000000000000000000000000000000000000000000000000000000045"+
			"0000000000000000000000000000000000000000000000000000000000000001",
		hex.EncodeToString(got))
}

func TestFunctionEncodeInputRejectsBadValues(t *testing.T) {
	f := bazFunction()

	_, err := f.EncodeInput([]abi.Value{abi.Uint64Value(32, 69)})
	require.Error(t, err)

	_, err = f.EncodeInput([]abi.Value{abi.BoolValue(true), abi.Uint64Value(32, 69)})
	require.Error(t, err)

	// Right kind, value wider than the declared uint32.
	_, err = f.EncodeInput([]abi.Value{abi.Uint64Value(32, 1<<33), abi.BoolValue(true)})
	require.Error(t, err)
}

func TestFunctionDecodeInput(t *testing.T) {
	f := bazFunction()
	calldata, err := f.EncodeInput([]abi.Value{abi.Uint64Value(32, 69), abi.BoolValue(true)})
	require.NoError(t, err)

	values, err := f.DecodeInput(calldata)
	require.NoError(t, err)
	require.Len(t, values, 2)
	require.True(t, values[0].Equal(abi.Uint64Value(32, 69)))
	require.True(t, values[1].Equal(abi.BoolValue(true)))

	_, err = f.DecodeInput(calldata[:3])
	require.Error(t, err)

	calldata[0] ^= 0xff
	_, err = f.DecodeInput(calldata)
	require.ErrorContains(t, err, "selector")
}

func TestFunctionDecodeOutput(t *testing.T) {
	f := bazFunction()
	data, err := hex.DecodeString("0000000000000000000000000000000000000000000000000000000000000001")
	require.NoError(t, err)
	values, err := f.DecodeOutput(data)
	require.NoError(t, err)
	require.Len(t, values, 1)
	require.True(t, values[0].B)
}
