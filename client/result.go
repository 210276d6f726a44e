package client

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/gjson"
)

// Kind says which form a Result holds.
type Kind int

const (
	// Decoded: the first content element was text holding valid JSON.
	Decoded Kind = iota
	// RawText: the first content element was text that is not JSON.
	RawText
	// Envelope: no textual first element; JSON holds the whole result.
	Envelope
)

func (k Kind) String() string {
	switch k {
	case Decoded:
		return "decoded"
	case RawText:
		return "raw_text"
	case Envelope:
		return "envelope"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Result is the outcome of one successful tools/call.
type Result struct {
	Kind Kind
	JSON json.RawMessage
	Text string
}

// DecodeEnvelope classifies a marshaled CallToolResult.
func DecodeEnvelope(raw []byte) Result {
	first := gjson.GetBytes(raw, "content.0")
	if first.Get("type").String() == "text" {
		text := first.Get("text").String()
		if gjson.Valid(text) {
			return Result{Kind: Decoded, JSON: json.RawMessage(text)}
		}
		return Result{Kind: RawText, Text: text}
	}
	return Result{Kind: Envelope, JSON: json.RawMessage(raw)}
}

// Decode unmarshals the JSON payload into v. A RawText result cannot be
// decoded and yields a *DecodeError carrying the text.
func (r Result) Decode(v any) error {
	if r.Kind == RawText {
		return &DecodeError{Text: r.Text}
	}
	if err := json.Unmarshal(r.JSON, v); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

// Value returns the payload as a generic JSON value, or the raw string for
// a RawText result.
func (r Result) Value() (any, error) {
	if r.Kind == RawText {
		return r.Text, nil
	}
	var v any
	if err := r.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

// Bytes returns the payload bytes; for RawText this is the text itself.
func (r Result) Bytes() []byte {
	if r.Kind == RawText {
		return []byte(r.Text)
	}
	return r.JSON
}

// As decodes the outcome of a call into T, passing call errors through.
func As[T any](r Result, err error) (T, error) {
	var out T
	if err != nil {
		return out, err
	}
	if err := r.Decode(&out); err != nil {
		return out, err
	}
	return out, nil
}
