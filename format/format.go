// Package format renders parse results. Encoders only read the result.
package format

import (
	"encoding"
	"fmt"
	"io"

	"github.com/dhamidi/chartparse/parse"
)

type Encoder interface {
	encoding.TextMarshaler
	Encode(r *parse.Result) error
}

// Kind names an output format. It implements pflag.Value.
type Kind string

const (
	Text Kind = "text"
	Line Kind = "line"
	JSON Kind = "json"
)

func (k Kind) String() string {
	return string(k)
}

// Set parses a format name.
func (k *Kind) Set(v string) error {
	switch Kind(v) {
	case Text, Line, JSON:
		*k = Kind(v)
		return nil
	}
	return fmt.Errorf("unknown format: %s (want text, line or json)", v)
}

// Type names the flag type in help output.
func (k *Kind) Type() string {
	return "format"
}

// New returns the encoder for kind writing to w.
func New(kind Kind, w io.Writer, opts ...TextOption) (Encoder, error) {
	switch kind {
	case Text, "":
		return NewTextEncoder(w, opts...), nil
	case Line:
		return NewLineEncoder(w), nil
	case JSON:
		return NewJSONEncoder(w), nil
	}
	return nil, fmt.Errorf("unknown format: %s", kind)
}

func encode(w io.Writer, m encoding.TextMarshaler) error {
	text, err := m.MarshalText()
	if err != nil {
		return err
	}
	_, err = w.Write(text)
	return err
}
