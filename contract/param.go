package contract

import (
	"strings"

	"github.com/wippyai/ethabi/abi"
	"github.com/wippyai/ethabi/errors"
)

// Param is one named input or output of a function or event.
type Param struct {
	Name    string
	Type    abi.Type
	Indexed bool // meaningful for event inputs only
}

// paramJSON mirrors one parameter object of the JSON ABI format. Tuples
// carry their member shapes in "components" and name their own type
// "tuple", optionally with array suffixes ("tuple[]", "tuple[2]").
type paramJSON struct {
	Name       string      `json:"name"`
	Type       string      `json:"type"`
	Components []paramJSON `json:"components,omitempty"`
	Indexed    bool        `json:"indexed,omitempty"`
}

func resolveParam(p paramJSON) (Param, error) {
	t, err := resolveType(p)
	if err != nil {
		return Param{}, err
	}
	return Param{Name: p.Name, Type: t, Indexed: p.Indexed}, nil
}

func resolveParams(ps []paramJSON) ([]Param, error) {
	out := make([]Param, 0, len(ps))
	for _, p := range ps {
		rp, err := resolveParam(p)
		if err != nil {
			return nil, err
		}
		out = append(out, rp)
	}
	return out, nil
}

// resolveType maps a JSON parameter to its abi.Type. Non-tuple names go
// straight through the canonical type reader; "tuple" bases are built from
// the components and then wrapped in whatever array suffixes the name
// carries.
func resolveType(p paramJSON) (abi.Type, error) {
	if !strings.HasPrefix(p.Type, "tuple") {
		return abi.ParseType(p.Type)
	}

	components := make([]abi.Type, 0, len(p.Components))
	for _, c := range p.Components {
		ct, err := resolveType(c)
		if err != nil {
			return abi.Type{}, err
		}
		components = append(components, ct)
	}
	t := abi.TupleOf(components...)

	suffix := p.Type[len("tuple"):]
	for suffix != "" {
		if !strings.HasPrefix(suffix, "[") {
			return abi.Type{}, errors.InvalidType(errors.PhaseSchema, p.Type, "malformed tuple type name")
		}
		end := strings.IndexByte(suffix, ']')
		if end < 0 {
			return abi.Type{}, errors.InvalidType(errors.PhaseSchema, p.Type, "malformed tuple type name")
		}
		// Reuse the canonical reader for the suffix arithmetic by wrapping
		// a placeholder element; only the shape of the suffix matters here.
		wrapped, err := abi.ParseType("bool" + suffix[:end+1])
		if err != nil {
			return abi.Type{}, errors.InvalidType(errors.PhaseSchema, p.Type, "malformed tuple array suffix")
		}
		if wrapped.Kind == abi.KindArray {
			t = abi.ArrayOf(t)
		} else {
			t = abi.FixedArrayOf(t, wrapped.Size)
		}
		suffix = suffix[end+1:]
	}
	return t, nil
}

func paramTypes(params []Param) []abi.Type {
	types := make([]abi.Type, len(params))
	for i, p := range params {
		types[i] = p.Type
	}
	return types
}

func typeNames(params []Param) string {
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Type.String()
	}
	return strings.Join(names, ",")
}
