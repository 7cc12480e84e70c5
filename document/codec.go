package document

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Codec converts between bytes and generic document trees.
type Codec interface {
	Decode(data []byte) (any, error)
	Encode(v any) ([]byte, error)
}

// JSONCodec encodes/decodes using JSON. Numbers decode as float64.
type JSONCodec struct {
	Pretty bool
	Indent string
}

// NewJSONCodec creates a new JSON codec with default options.
func NewJSONCodec() *JSONCodec {
	return &JSONCodec{Indent: "  "}
}

// WithPretty enables pretty printing.
func (c *JSONCodec) WithPretty() *JSONCodec {
	c.Pretty = true
	return c
}

// Decode decodes JSON to a document tree.
func (c *JSONCodec) Decode(data []byte) (any, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Encode encodes a document tree to JSON.
func (c *JSONCodec) Encode(v any) ([]byte, error) {
	if c.Pretty {
		return json.MarshalIndent(v, "", c.Indent)
	}
	return json.Marshal(v)
}

// YAMLCodec encodes/decodes using YAML.
type YAMLCodec struct {
	Indent int
}

// NewYAMLCodec creates a new YAML codec.
func NewYAMLCodec() *YAMLCodec {
	return &YAMLCodec{Indent: 2}
}

// WithIndent sets the indentation level.
func (c *YAMLCodec) WithIndent(indent int) *YAMLCodec {
	c.Indent = indent
	return c
}

// Decode decodes YAML to a document tree. An empty input decodes to nil.
func (c *YAMLCodec) Decode(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Encode encodes a document tree to YAML.
func (c *YAMLCodec) Encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(c.Indent)
	if err := encoder.Encode(v); err != nil {
		return nil, err
	}
	if err := encoder.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Read decodes data and returns the value at path.
func Read(c Codec, data []byte, path string) (any, error) {
	l, err := Path(path)
	if err != nil {
		return nil, err
	}
	doc, err := c.Decode(data)
	if err != nil {
		return nil, err
	}
	return l.Get(doc)
}

// Rewrite decodes data, applies fn to the value at path and encodes the
// result. The input bytes are never modified.
func Rewrite(c Codec, data []byte, path string, fn func(any) any) ([]byte, error) {
	l, err := Path(path)
	if err != nil {
		return nil, err
	}
	doc, err := c.Decode(data)
	if err != nil {
		return nil, err
	}
	doc, err = l.Update(doc, fn)
	if err != nil {
		return nil, err
	}
	return c.Encode(doc)
}
