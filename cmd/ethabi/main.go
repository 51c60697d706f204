package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/wippyai/ethabi"
	"github.com/wippyai/ethabi/abi"
	"github.com/wippyai/ethabi/contract"
)

var outStyle = func() lipgloss.Style {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#90EE90"))
	}
	return lipgloss.NewStyle()
}()

func main() {
	var (
		interactive = flag.Bool("i", false, "Interactive mode with TUI (requires an ABI file argument)")
		verbose     = flag.Bool("verbose", false, "Enable debug logging")
	)
	flag.Usage = usage
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		defer logger.Sync()
		contract.SetLogger(logger)
	}

	args := flag.Args()

	if *interactive {
		if len(args) != 1 {
			usage()
			os.Exit(1)
		}
		if err := runInteractive(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if len(args) < 2 {
		usage()
		os.Exit(1)
	}

	var err error
	switch args[0] + " " + args[1] {
	case "encode params":
		err = encodeParams(args[2:])
	case "encode function":
		err = encodeFunction(args[2:])
	case "decode params":
		err = decodeParams(args[2:])
	case "decode function":
		err = decodeFunction(args[2:])
	case "decode output":
		err = decodeOutput(args[2:])
	case "decode log":
		err = decodeLog(args[2:])
	default:
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `Usage:
  ethabi encode params [-lenient] TYPE VALUE [TYPE VALUE ...]
  ethabi encode function [-lenient] ABI_FILE NAME [VALUE ...]
  ethabi decode params -t TYPE [-t TYPE ...] HEX_DATA
  ethabi decode function ABI_FILE NAME HEX_CALLDATA
  ethabi decode output ABI_FILE NAME HEX_DATA
  ethabi decode log [-l TOPIC ...] ABI_FILE NAME HEX_DATA
  ethabi -i ABI_FILE

NAME is a function or event name, or its full signature when overloaded.
Values follow the human-readable token syntax: true/false, decimal
integers, hex byte strings, and bracketed composites like [1,2,3].`)
}

// stringList collects a repeatable flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

func encodeParams(args []string) error {
	fs := flag.NewFlagSet("encode params", flag.ExitOnError)
	lenient := fs.Bool("lenient", false, "Accept relaxed value tokens (0x integers, 1/0 booleans)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 || len(rest)%2 != 0 {
		return fmt.Errorf("expected TYPE VALUE pairs, got %d arguments", len(rest))
	}

	values := make([]abi.Value, 0, len(rest)/2)
	for i := 0; i < len(rest); i += 2 {
		t, err := abi.ParseType(rest[i])
		if err != nil {
			return err
		}
		v, err := abi.ParseValue(t, rest[i+1], *lenient)
		if err != nil {
			return err
		}
		values = append(values, v)
	}

	fmt.Println(outStyle.Render(hex.EncodeToString(abi.Encode(values))))
	return nil
}

func encodeFunction(args []string) error {
	fs := flag.NewFlagSet("encode function", flag.ExitOnError)
	lenient := fs.Bool("lenient", false, "Accept relaxed value tokens")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) < 2 {
		return fmt.Errorf("expected ABI_FILE NAME [VALUE ...]")
	}

	fn, err := lookupFunction(rest[0], rest[1])
	if err != nil {
		return err
	}
	tokens := rest[2:]
	types := fn.InputTypes()
	if len(tokens) != len(types) {
		return fmt.Errorf("%s takes %d arguments, got %d", fn.Signature(), len(types), len(tokens))
	}

	values := make([]abi.Value, len(tokens))
	for i, token := range tokens {
		v, err := abi.ParseValue(types[i], token, *lenient)
		if err != nil {
			return err
		}
		values[i] = v
	}

	calldata, err := fn.EncodeInput(values)
	if err != nil {
		return err
	}
	fmt.Println(outStyle.Render(hex.EncodeToString(calldata)))
	return nil
}

func decodeParams(args []string) error {
	fs := flag.NewFlagSet("decode params", flag.ExitOnError)
	var typeNames stringList
	fs.Var(&typeNames, "t", "Parameter type (repeatable, in order)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(typeNames) == 0 || fs.NArg() != 1 {
		return fmt.Errorf("expected -t TYPE flags and one HEX_DATA argument")
	}

	types := make([]abi.Type, len(typeNames))
	for i, name := range typeNames {
		t, err := abi.ParseType(name)
		if err != nil {
			return err
		}
		types[i] = t
	}
	data, err := parseHexData(fs.Arg(0))
	if err != nil {
		return err
	}

	values, err := abi.Decode(types, data)
	if err != nil {
		return err
	}
	for i, v := range values {
		fmt.Printf("%s %s\n", types[i], outStyle.Render(v.String()))
	}
	return nil
}

func decodeFunction(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("expected ABI_FILE NAME HEX_CALLDATA")
	}
	fn, err := lookupFunction(args[0], args[1])
	if err != nil {
		return err
	}
	data, err := parseHexData(args[2])
	if err != nil {
		return err
	}
	values, err := fn.DecodeInput(data)
	if err != nil {
		return err
	}
	printNamed(fn.Inputs, values)
	return nil
}

func decodeOutput(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("expected ABI_FILE NAME HEX_DATA")
	}
	fn, err := lookupFunction(args[0], args[1])
	if err != nil {
		return err
	}
	data, err := parseHexData(args[2])
	if err != nil {
		return err
	}
	values, err := fn.DecodeOutput(data)
	if err != nil {
		return err
	}
	printNamed(fn.Outputs, values)
	return nil
}

func decodeLog(args []string) error {
	fs := flag.NewFlagSet("decode log", flag.ExitOnError)
	var topicHex stringList
	fs.Var(&topicHex, "l", "Log topic as 32-byte hex (repeatable, in order)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) != 3 {
		return fmt.Errorf("expected [-l TOPIC ...] ABI_FILE NAME HEX_DATA")
	}

	c, err := loadContract(rest[0])
	if err != nil {
		return err
	}
	event, err := lookupEvent(c, rest[1])
	if err != nil {
		return err
	}

	topics := make([]ethabi.Hash, len(topicHex))
	for i, th := range topicHex {
		b, err := parseHexData(th)
		if err != nil {
			return err
		}
		if len(b) != 32 {
			return fmt.Errorf("topic %d is %d bytes, want 32", i, len(b))
		}
		copy(topics[i][:], b)
	}
	data, err := parseHexData(rest[2])
	if err != nil {
		return err
	}

	fields, err := event.DecodeLog(topics, data)
	if err != nil {
		return err
	}
	for _, f := range fields {
		marker := ""
		if f.Indexed {
			marker = " (indexed)"
		}
		fmt.Printf("%s%s %s\n", f.Name, marker, outStyle.Render(f.Value.String()))
	}
	return nil
}

func loadContract(path string) (*contract.Contract, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return contract.Load(f)
}

// lookupFunction resolves a name or, for overloads, a full signature.
func lookupFunction(abiPath, name string) (*contract.Function, error) {
	c, err := loadContract(abiPath)
	if err != nil {
		return nil, err
	}
	if strings.Contains(name, "(") {
		return c.FunctionBySignature(name)
	}
	return c.FunctionByName(name)
}

func lookupEvent(c *contract.Contract, name string) (*contract.Event, error) {
	if strings.Contains(name, "(") {
		return c.EventBySignature(name)
	}
	return c.EventByName(name)
}

func parseHexData(s string) ([]byte, error) {
	return hex.DecodeString(strings.TrimPrefix(strings.TrimSpace(s), "0x"))
}

func printNamed(params []contract.Param, values []abi.Value) {
	for i, v := range values {
		name := params[i].Name
		if name == "" {
			name = fmt.Sprintf("out%d", i)
		}
		fmt.Printf("%s %s %s\n", name, params[i].Type, outStyle.Render(v.String()))
	}
}
