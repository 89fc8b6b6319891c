package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/agentflare-ai/tagtree/cbor"
	"github.com/agentflare-ai/tagtree/json"
	"github.com/agentflare-ai/tagtree/value"
)

// resolveFormat returns the explicit --format flag if set, otherwise
// guesses from path's extension, defaulting to json.
func resolveFormat(path string) string {
	if flagFormat != "" {
		return flagFormat
	}
	switch strings.ToLower(strings.TrimPrefix(pathExt(path), ".")) {
	case "cbor", "cb":
		return "cbor"
	default:
		return "json"
	}
}

func pathExt(path string) string {
	i := strings.LastIndexByte(path, '.')
	if i < 0 {
		return ""
	}
	return path[i:]
}

func readInput(path string) ([]byte, error) {
	if path == "" || path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

// writeOutput writes data to path (stdout when path is empty or "-").
// A trailing newline is appended for textFormat output written to a
// terminal-facing stream; binary CBOR output is written byte-exact.
func writeOutput(path string, data []byte, textFormat bool) error {
	if path == "" || path == "-" {
		_, err := os.Stdout.Write(data)
		if err == nil && textFormat && (len(data) == 0 || data[len(data)-1] != '\n') {
			_, err = os.Stdout.Write([]byte{'\n'})
		}
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// decodeDocument parses data as format ("cbor" or "json") into a Value.
func decodeDocument(data []byte, format string) (value.Value, error) {
	switch format {
	case "cbor":
		opts := cbor.DecodeOptions{MaxDepth: flagDepthLimit}
		v, n, err := cbor.LoadWithOptions(data, opts)
		if err != nil {
			return value.Value{}, err
		}
		if n != len(data) {
			return value.Value{}, fmt.Errorf("tagtree: trailing data after CBOR item")
		}
		return v, nil
	case "json":
		return json.UnmarshalWithOptions(data, json.DefaultFlags, json.DecodeOptions{MaxDepth: flagDepthLimit})
	default:
		return value.Value{}, fmt.Errorf("tagtree: unknown format %q", format)
	}
}

// encodeDocument serializes v as format, honoring --pretty for JSON.
func encodeDocument(v value.Value, format string) ([]byte, error) {
	switch format {
	case "cbor":
		return cbor.Marshal(v)
	case "json":
		if flagPretty {
			return json.Dump(v, json.EncodeOptions{Pretty: true, Indent: "  ", Logger: logger})
		}
		return json.Dump(v, json.EncodeOptions{Logger: logger})
	default:
		return nil, fmt.Errorf("tagtree: unknown format %q", format)
	}
}

// loadDocumentFrom reads and decodes the document at path (or stdin),
// using --format if set, else guessing from path's extension.
func loadDocumentFrom(path string) (value.Value, error) {
	data, err := readInput(path)
	if err != nil {
		return value.Value{}, err
	}
	return decodeDocument(data, resolveFormat(path))
}
