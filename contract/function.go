package contract

import (
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/ethabi"
	"github.com/wippyai/ethabi/abi"
	"github.com/wippyai/ethabi/errors"
)

// Function describes one callable entry of a contract interface.
type Function struct {
	Name            string
	Inputs          []Param
	Outputs         []Param
	StateMutability string
}

// Signature returns the canonical signature the selector is derived from,
// e.g. "baz(uint32,bool)". Parameter names do not participate.
func (f *Function) Signature() string {
	return f.Name + "(" + typeNames(f.Inputs) + ")"
}

// VerboseSignature extends the canonical form with the output shape,
// e.g. "baz(uint32,bool):(bool)". Useful for display only; selectors are
// always derived from Signature.
func (f *Function) VerboseSignature() string {
	return f.Signature() + ":(" + typeNames(f.Outputs) + ")"
}

// Selector returns the 4-byte call selector: the first four bytes of the
// keccak256 digest of the canonical signature.
func (f *Function) Selector() [4]byte {
	return f.SelectorWith(keccakSelector)
}

// SelectorWith derives the selector using a caller-provided hash.
func (f *Function) SelectorWith(fn ethabi.SelectorFunc) [4]byte {
	return fn([]byte(f.Signature()))
}

// InputTypes returns the declared input types in order.
func (f *Function) InputTypes() []abi.Type {
	return paramTypes(f.Inputs)
}

// OutputTypes returns the declared output types in order.
func (f *Function) OutputTypes() []abi.Type {
	return paramTypes(f.Outputs)
}

// EncodeInput builds the complete calldata: the selector followed by the
// encoded arguments. Values are checked against the declared input types
// before any bytes are produced.
func (f *Function) EncodeInput(values []abi.Value) ([]byte, error) {
	types := f.InputTypes()
	if len(values) != len(types) {
		return nil, errors.ArityMismatch(errors.PhaseEncode, []string{f.Name}, len(values), len(types), f.Signature())
	}
	if !abi.TypesCheck(values, types) {
		return nil, errors.TypeMismatch(errors.PhaseEncode, []string{f.Name}, valueTypeNames(values), f.Signature())
	}

	sel := f.Selector()
	encoded := abi.Encode(values)
	Logger().Debug("encoded call",
		zap.String("function", f.Signature()),
		zap.Int("calldata_bytes", len(sel)+len(encoded)))

	return append(sel[:], encoded...), nil
}

// DecodeInput reverses EncodeInput: it checks and strips the selector, then
// decodes the argument words against the declared input types.
func (f *Function) DecodeInput(data []byte) ([]abi.Value, error) {
	if len(data) < 4 {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Path(f.Name).
			Detail("calldata shorter than the 4-byte selector").
			Build()
	}
	sel := f.Selector()
	if [4]byte(data[:4]) != sel {
		return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
			Path(f.Name).
			Detail("selector %x does not match %s (%x)", data[:4], f.Signature(), sel).
			Build()
	}
	return abi.Decode(f.InputTypes(), data[4:])
}

// DecodeOutput decodes a call result against the declared output types.
func (f *Function) DecodeOutput(data []byte) ([]abi.Value, error) {
	return abi.Decode(f.OutputTypes(), data)
}

func valueTypeNames(values []abi.Value) string {
	names := make([]string, len(values))
	for i, v := range values {
		names[i] = v.Type.String()
	}
	return "(" + strings.Join(names, ",") + ")"
}
