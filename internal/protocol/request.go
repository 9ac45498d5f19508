// Package protocol implements the line-delimited JSON request/response
// protocol: parsing one request object into a typed action, dispatching it
// against the active clipboard backend, and encoding the outcome (payload or
// recursive error chain) back to one response object.
package protocol

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/labi-le/clipwire/pkg/clipboard"
)

// Action is the closed set of operations a request line can describe.
type Action interface{ isAction() }

type Query struct{}

type Copy struct {
	Dest clipboard.Dest
	Data string
}

type Paste struct {
	Source clipboard.Source
}

func (Query) isAction() {}
func (Copy) isAction()  {}
func (Paste) isAction() {}

// rawRequest defers field decoding so that a wrong type yields a precise
// request error instead of a generic unmarshal failure.
type rawRequest struct {
	Action    json.RawMessage `json:"action"`
	Data      json.RawMessage `json:"data"`
	Clipboard json.RawMessage `json:"clipboard"`
}

// ParseRequest turns one request line into an Action. Every failure here is
// a request-level error: reported in-band, never fatal to the loop.
func ParseRequest(line []byte) (Action, error) {
	var raw rawRequest
	if err := json.Unmarshal(line, &raw); err != nil {
		return nil, clipboard.Wrap("invalid request", err)
	}

	if raw.Action == nil {
		return nil, errors.New("no action specified")
	}
	name, ok := asString(raw.Action)
	if !ok {
		return nil, fmt.Errorf("expected string for action: %s", raw.Action)
	}

	switch name {
	case "query":
		return Query{}, nil

	case "copy":
		if raw.Data == nil {
			return nil, errors.New("request is missing `data`")
		}
		data, ok := asString(raw.Data)
		if !ok {
			return nil, fmt.Errorf("invalid clipboard data: %s", raw.Data)
		}
		dest, err := parseDest(raw.Clipboard)
		if err != nil {
			return nil, err
		}
		return Copy{Dest: dest, Data: data}, nil

	case "paste":
		source, err := parseSource(raw.Clipboard)
		if err != nil {
			return nil, err
		}
		return Paste{Source: source}, nil

	default:
		return nil, fmt.Errorf("invalid action: %s", name)
	}
}

func parseSource(raw json.RawMessage) (clipboard.Source, error) {
	if raw == nil {
		return clipboard.SourceDefault, nil
	}
	name, ok := asString(raw)
	if !ok {
		return 0, fmt.Errorf("invalid clipboard source: %s", raw)
	}
	switch name {
	case "default":
		return clipboard.SourceDefault, nil
	case "primary":
		return clipboard.SourcePrimary, nil
	case "clipboard":
		return clipboard.SourceClipboard, nil
	default:
		return 0, fmt.Errorf("invalid clipboard source: %s", name)
	}
}

func parseDest(raw json.RawMessage) (clipboard.Dest, error) {
	if raw == nil {
		return clipboard.DestDefault, nil
	}
	name, ok := asString(raw)
	if !ok {
		return 0, fmt.Errorf("invalid clipboard destination: %s", raw)
	}
	switch name {
	case "default":
		return clipboard.DestDefault, nil
	case "primary":
		return clipboard.DestPrimary, nil
	case "clipboard":
		return clipboard.DestClipboard, nil
	case "both":
		return clipboard.DestBoth, nil
	default:
		return 0, fmt.Errorf("invalid clipboard destination: %s", name)
	}
}

func asString(raw json.RawMessage) (string, bool) {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}
