package jsondiff

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAMLLoader decodes YAML documents. Mappings with only string keys become
// map[string]interface{}, others become Object.
type YAMLLoader struct{}

func (l YAMLLoader) Load(data []byte) (interface{}, error) {
	return l.LoadFrom(bytes.NewReader(data))
}

func (YAMLLoader) LoadFrom(r io.Reader) (interface{}, error) {
	dec := yaml.NewDecoder(r)

	var val interface{}
	err := dec.Decode(&val)
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: yaml: %v", ErrParse, err)
	}
	return val, nil
}

// YAMLDumper encodes documents as YAML. Indent defaults to two spaces.
type YAMLDumper struct {
	Indent int
}

func (d YAMLDumper) Dump(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	err := d.DumpTo(&buf, v)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (d YAMLDumper) DumpTo(w io.Writer, v interface{}) error {
	enc := yaml.NewEncoder(w)
	indent := d.Indent
	if indent <= 0 {
		indent = 2
	}
	enc.SetIndent(indent)
	err := enc.Encode(Plain(v, false))
	if err != nil {
		return err
	}
	return enc.Close()
}
