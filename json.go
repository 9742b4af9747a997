package jsondiff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// JSONLoader decodes JSON documents into map[string]interface{},
// []interface{}, float64, string, bool and nil.
type JSONLoader struct {
	// UseNumber decodes numbers as json.Number.
	UseNumber bool
}

func (l JSONLoader) Load(data []byte) (interface{}, error) {
	return l.LoadFrom(bytes.NewReader(data))
}

func (l JSONLoader) LoadFrom(r io.Reader) (interface{}, error) {
	dec := json.NewDecoder(r)
	if l.UseNumber {
		dec.UseNumber()
	}

	var val interface{}
	err := dec.Decode(&val)
	if err != nil {
		return nil, fmt.Errorf("%w: json: %v", ErrParse, err)
	}
	if dec.More() {
		return nil, fmt.Errorf("%w: json: unexpected data after the document", ErrParse)
	}
	return val, nil
}

// JSONDumper encodes documents as JSON. Indent is the number of spaces per
// level; zero writes a single line.
type JSONDumper struct {
	Indent int
}

func (d JSONDumper) Dump(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	err := d.DumpTo(&buf, v)
	if err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

func (d JSONDumper) DumpTo(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if d.Indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", d.Indent))
	}
	return enc.Encode(Plain(v, true))
}
