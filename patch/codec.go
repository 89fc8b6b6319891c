package patch

import (
	"github.com/agentflare-ai/tagtree/json"
)

// Marshal serializes p as a JSON Patch document.
func Marshal(p Patch) ([]byte, error) {
	return json.Marshal(p.ToValue())
}

// Unmarshal parses a JSON Patch document into a Patch.
func Unmarshal(data []byte) (Patch, error) {
	v, err := json.Unmarshal(data, json.DefaultFlags)
	if err != nil {
		return nil, err
	}
	return FromValue(v)
}
