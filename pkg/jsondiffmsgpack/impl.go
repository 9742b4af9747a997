package jsondiffmsgpack

import (
	"bytes"
	"fmt"
	"io"

	"github.com/sanity-io/jsondiff"
	"github.com/vmihailenco/msgpack/v4"
)

// Fragment is a diff fragment which implements CustomEncoder/CustomDecoder,
// marshaled with the default escape prefix.
// You should only use this if you need to embed a fragment inside a larger msgpack structure.
// Otherwise it's preferred to use the Marshal and Unmarshal functions.
type Fragment struct {
	Value interface{}
}

var _ msgpack.CustomEncoder = (*Fragment)(nil)
var _ msgpack.CustomDecoder = (*Fragment)(nil)

var _ jsondiff.Loader = Loader{}
var _ jsondiff.Dumper = Dumper{}

// Marshal encodes a fragment using Msgpack.
func Marshal(options jsondiff.Options, d interface{}) ([]byte, error) {
	return Dumper{}.Dump(options.Marshal(d))
}

// Unmarshal decodes a fragment encoded by Marshal.
func Unmarshal(options jsondiff.Options, data []byte) (interface{}, error) {
	v, err := Loader{}.Load(data)
	if err != nil {
		return nil, err
	}
	return options.Unmarshal(v), nil
}

// Loader decodes Msgpack documents.
type Loader struct{}

func (l Loader) Load(data []byte) (interface{}, error) {
	return l.LoadFrom(bytes.NewReader(data))
}

func (Loader) LoadFrom(r io.Reader) (interface{}, error) {
	var result interface{}
	err := msgpack.NewDecoder(r).Decode(&result)
	if err != nil {
		return nil, fmt.Errorf("%w: msgpack: %v", jsondiff.ErrParse, err)
	}
	return normalize(result), nil
}

// normalize turns decoded maps with only string keys into
// map[string]interface{}, the type the JSON and YAML loaders produce.
func normalize(v interface{}) interface{} {
	switch v := v.(type) {
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(v))
		for k, w := range v {
			s, ok := k.(string)
			if !ok {
				return normalizeObject(v)
			}
			m[s] = normalize(w)
		}
		return m
	case map[string]interface{}:
		for k, w := range v {
			v[k] = normalize(w)
		}
		return v
	case []interface{}:
		for i, w := range v {
			v[i] = normalize(w)
		}
		return v
	}
	return v
}

func normalizeObject(v map[interface{}]interface{}) jsondiff.Object {
	out := make(jsondiff.Object, len(v))
	for k, w := range v {
		out[k] = normalize(w)
	}
	return out
}

// Dumper encodes documents using Msgpack.
type Dumper struct{}

func (d Dumper) Dump(v interface{}) ([]byte, error) {
	var buf bytes.Buffer
	err := d.DumpTo(&buf, v)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (Dumper) DumpTo(w io.Writer, v interface{}) error {
	enc := msgpack.NewEncoder(w)
	enc.SortMapKeys(true)
	return enc.Encode(jsondiff.Plain(v, true))
}

func (f *Fragment) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.Encode(jsondiff.Plain(jsondiff.DefaultOptions.Marshal(f.Value), true))
}

func (f *Fragment) DecodeMsgpack(dec *msgpack.Decoder) error {
	var result interface{}
	err := dec.Decode(&result)
	if err != nil {
		return err
	}
	f.Value = jsondiff.DefaultOptions.Unmarshal(normalize(result))
	return nil
}
