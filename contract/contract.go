// Package contract models a contract interface loaded from the JSON ABI
// format: its functions and events, their canonical signatures and
// selectors, and the calldata and log codecs built on top of the word
// codec in package abi.
package contract

import (
	"encoding/json"
	"io"

	"go.uber.org/zap"

	"github.com/wippyai/ethabi/errors"
)

// Contract is a parsed contract interface.
type Contract struct {
	functions []*Function
	events    []*Event
}

type entryJSON struct {
	Type            string      `json:"type"`
	Name            string      `json:"name"`
	Inputs          []paramJSON `json:"inputs"`
	Outputs         []paramJSON `json:"outputs"`
	Anonymous       bool        `json:"anonymous"`
	StateMutability string      `json:"stateMutability"`
}

// Load reads a JSON ABI document from r.
func Load(r io.Reader) (*Contract, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(errors.PhaseSchema, errors.KindInvalidData, err, "reading ABI document")
	}
	return Parse(data)
}

// Parse parses a JSON ABI document: an array of entry objects. Function
// and event entries populate the contract; constructor, fallback, receive
// and error entries carry no name or selector of their own and are
// skipped.
func Parse(data []byte) (*Contract, error) {
	var entries []entryJSON
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, errors.Wrap(errors.PhaseSchema, errors.KindInvalidData, err, "malformed ABI document")
	}

	c := &Contract{}
	for _, entry := range entries {
		switch entry.Type {
		case "function", "":
			inputs, err := resolveParams(entry.Inputs)
			if err != nil {
				return nil, err
			}
			outputs, err := resolveParams(entry.Outputs)
			if err != nil {
				return nil, err
			}
			c.functions = append(c.functions, &Function{
				Name:            entry.Name,
				Inputs:          inputs,
				Outputs:         outputs,
				StateMutability: entry.StateMutability,
			})
		case "event":
			inputs, err := resolveParams(entry.Inputs)
			if err != nil {
				return nil, err
			}
			c.events = append(c.events, &Event{
				Name:      entry.Name,
				Inputs:    inputs,
				Anonymous: entry.Anonymous,
			})
		default:
			Logger().Debug("skipping ABI entry", zap.String("type", entry.Type))
		}
	}

	Logger().Debug("parsed contract",
		zap.Int("functions", len(c.functions)),
		zap.Int("events", len(c.events)))
	return c, nil
}

// Functions returns the contract's functions in declaration order.
func (c *Contract) Functions() []*Function { return c.functions }

// Events returns the contract's events in declaration order.
func (c *Contract) Events() []*Event { return c.events }

// FunctionByName returns the function with the given name. When the name
// is overloaded the lookup is ambiguous and the caller must use
// FunctionBySignature instead.
func (c *Contract) FunctionByName(name string) (*Function, error) {
	var found *Function
	count := 0
	for _, f := range c.functions {
		if f.Name == name {
			found = f
			count++
		}
	}
	switch count {
	case 0:
		return nil, errors.NotFound(errors.PhaseSchema, "function", name)
	case 1:
		return found, nil
	default:
		return nil, errors.Ambiguous(errors.PhaseSchema, "function", name, count)
	}
}

// FunctionBySignature returns the function with the given canonical
// signature, disambiguating overloads.
func (c *Contract) FunctionBySignature(signature string) (*Function, error) {
	for _, f := range c.functions {
		if f.Signature() == signature {
			return f, nil
		}
	}
	return nil, errors.NotFound(errors.PhaseSchema, "function", signature)
}

// EventByName returns the event with the given name. Overloaded names
// must be looked up by signature.
func (c *Contract) EventByName(name string) (*Event, error) {
	var found *Event
	count := 0
	for _, e := range c.events {
		if e.Name == name {
			found = e
			count++
		}
	}
	switch count {
	case 0:
		return nil, errors.NotFound(errors.PhaseSchema, "event", name)
	case 1:
		return found, nil
	default:
		return nil, errors.Ambiguous(errors.PhaseSchema, "event", name, count)
	}
}

// EventBySignature returns the event with the given canonical signature.
func (c *Contract) EventBySignature(signature string) (*Event, error) {
	for _, e := range c.events {
		if e.Signature() == signature {
			return e, nil
		}
	}
	return nil, errors.NotFound(errors.PhaseSchema, "event", signature)
}
