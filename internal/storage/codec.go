package storage

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/dyluth/shelf/pkg/catalog"
)

// Encode validates state, serialises it as JSON and base64-encodes it. A state
// Decode would reject is never encoded.
func Encode(state *catalog.State) ([]byte, error) {
	if state == nil {
		state = catalog.NewState()
	}
	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("refusing to save invalid state: %w", err)
	}

	raw, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal state: %w", err)
	}

	out := make([]byte, base64.StdEncoding.EncodedLen(len(raw)))
	base64.StdEncoding.Encode(out, raw)
	return out, nil
}

// Decode reverses Encode and validates the result. All failures wrap ErrCorrupt.
func Decode(data []byte) (*catalog.State, error) {
	data = bytes.TrimSpace(data)

	raw := make([]byte, base64.StdEncoding.DecodedLen(len(data)))
	n, err := base64.StdEncoding.Decode(raw, data)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base64: %v", ErrCorrupt, err)
	}

	var state catalog.State
	if err := json.Unmarshal(raw[:n], &state); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrCorrupt, err)
	}

	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	return &state, nil
}
