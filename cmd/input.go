package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

// readJSONArg resolves a flag value that is either inline JSON, @file or - for stdin.
func readJSONArg(value string) (json.RawMessage, error) {
	var raw []byte
	var err error
	switch {
	case value == "-":
		raw, err = io.ReadAll(os.Stdin)
	case strings.HasPrefix(value, "@"):
		raw, err = os.ReadFile(strings.TrimPrefix(value, "@"))
	default:
		raw = []byte(value)
	}
	if err != nil {
		return nil, err
	}

	if !json.Valid(raw) {
		return nil, fmt.Errorf("input is not valid JSON: %s", strings.TrimSpace(string(raw)))
	}
	return raw, nil
}

func printJSON(v any) error {
	bz, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(bz))
	return nil
}
