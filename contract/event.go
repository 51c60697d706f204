package contract

import (
	"go.uber.org/zap"

	"github.com/wippyai/ethabi"
	"github.com/wippyai/ethabi/abi"
	"github.com/wippyai/ethabi/errors"
)

// Event describes one log entry a contract can emit.
type Event struct {
	Name      string
	Inputs    []Param
	Anonymous bool
}

// LogField is one decoded event parameter, in declaration order.
type LogField struct {
	Name    string
	Value   abi.Value
	Indexed bool
}

// Signature returns the canonical signature the topic is derived from,
// e.g. "Transfer(address,address,uint256)".
func (e *Event) Signature() string {
	return e.Name + "(" + typeNames(e.Inputs) + ")"
}

// Topic returns the keccak256 digest of the canonical signature. For
// non-anonymous events it occupies the first topic slot of every log.
func (e *Event) Topic() ethabi.Hash {
	return keccak256([]byte(e.Signature()))
}

// DecodeLog decodes a raw log against the event declaration.
//
// Indexed scalar parameters are recovered from their topic words. Indexed
// parameters of any other shape are stored by the chain as a keccak256
// digest of their encoding, so the original value is unrecoverable: they
// decode as bytes32 carrying that digest. Non-indexed parameters decode
// from the data section. Fields are returned in declaration order.
func (e *Event) DecodeLog(topics []ethabi.Hash, data []byte) ([]LogField, error) {
	if !e.Anonymous {
		if len(topics) == 0 {
			return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
				Path(e.Name).
				Detail("log has no topics; expected the event topic first").
				Build()
		}
		if topics[0] != e.Topic() {
			return nil, errors.New(errors.PhaseDecode, errors.KindInvalidData).
				Path(e.Name).
				Detail("topic %x does not match %s", topics[0], e.Signature()).
				Build()
		}
		topics = topics[1:]
	}

	indexed := 0
	for _, p := range e.Inputs {
		if p.Indexed {
			indexed++
		}
	}
	if len(topics) != indexed {
		return nil, errors.ArityMismatch(errors.PhaseDecode, []string{e.Name}, len(topics), indexed, e.Signature())
	}

	dataValues, err := abi.Decode(paramTypes(nonIndexed(e.Inputs)), data)
	if err != nil {
		return nil, err
	}

	fields := make([]LogField, 0, len(e.Inputs))
	topicAt, dataAt := 0, 0
	for _, p := range e.Inputs {
		if !p.Indexed {
			fields = append(fields, LogField{Name: p.Name, Value: dataValues[dataAt]})
			dataAt++
			continue
		}
		topic := topics[topicAt]
		topicAt++
		v, err := decodeTopic(p.Type, topic)
		if err != nil {
			return nil, err
		}
		fields = append(fields, LogField{Name: p.Name, Value: v, Indexed: true})
	}

	Logger().Debug("decoded log",
		zap.String("event", e.Signature()),
		zap.Int("fields", len(fields)))
	return fields, nil
}

// decodeTopic recovers an indexed parameter from its topic word.
func decodeTopic(t abi.Type, topic ethabi.Hash) (abi.Value, error) {
	if t.IsDynamic() || !t.Kind.IsScalar() {
		// The topic is a digest of the encoding, not the encoding itself.
		return abi.FixedBytesValue(topic[:]), nil
	}
	values, err := abi.Decode([]abi.Type{t}, topic[:])
	if err != nil {
		return abi.Value{}, err
	}
	return values[0], nil
}

func nonIndexed(params []Param) []Param {
	out := make([]Param, 0, len(params))
	for _, p := range params {
		if !p.Indexed {
			out = append(out, p)
		}
	}
	return out
}
