// Package ethabi provides encoding and decoding for the Ethereum contract
// ABI: the binary interchange format used to serialize function arguments,
// function return values, and event-log records into 32-byte words.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct responsibilities:
//
//	ethabi/              Root package with shared Word and SelectorFunc types
//	├── abi/             Core codec: type model, value model, encoder, decoder,
//	│                    type-string reader and strict/lenient value tokenizer
//	├── contract/        JSON ABI loading, function/event signatures, call
//	│                    encoding and event-log decoding
//	├── errors/          Structured error types for debugging
//	└── cmd/ethabi/      Command line encoder/decoder
//
// # Quick Start
//
// Encode a function call:
//
//	c, err := contract.Parse(abiJSON)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fn, err := c.FunctionByName("transfer")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	to, _ := abi.ParseValue(abi.AddressT(), "0x1111111111111111111111111111111111111111", false)
//	amount, _ := abi.ParseValue(abi.Uint(256), "1000", false)
//
//	calldata, err := fn.EncodeInput([]abi.Value{to, amount})
//
// Decode raw values against types:
//
//	typ, _ := abi.ParseType("bool[]")
//	values, err := abi.Decode([]abi.Type{typ}, data)
//
// All codec operations are pure functions over immutable inputs: there is no
// shared state, and concurrent callers need no coordination.
package ethabi
