package jsondiff

import (
	"io"
)

// Loader decodes a document. This can be used for supporting a custom serialization format.
type Loader interface {
	Load(data []byte) (interface{}, error)
	LoadFrom(r io.Reader) (interface{}, error)
}

// Dumper encodes a document. This can be used for supporting a custom serialization format.
type Dumper interface {
	Dump(v interface{}) ([]byte, error)
	DumpTo(w io.Writer, v interface{}) error
}

// Plain converts a document into the types understood by generic encoders:
// sets become sequences in canonical order, symbols become their escaped
// spelling and Objects become map[string]interface{} when stringKeys is set.
// Fragments should be marshaled first so their symbols survive a round trip.
func Plain(v interface{}, stringKeys bool) interface{} {
	switch v := v.(type) {
	case Symbol:
		return v.String()
	case Set:
		elems := v.Elems()
		for i, w := range elems {
			elems[i] = Plain(w, stringKeys)
		}
		return elems
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, w := range v {
			out[i] = Plain(w, stringKeys)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, w := range v {
			out[k] = Plain(w, stringKeys)
		}
		return out
	case Object:
		if stringKeys {
			out := make(map[string]interface{}, len(v))
			for k, w := range v {
				out[keyString(k)] = Plain(w, stringKeys)
			}
			return out
		}
		out := make(map[interface{}]interface{}, len(v))
		for k, w := range v {
			out[Plain(k, stringKeys)] = Plain(w, stringKeys)
		}
		return out
	}
	return v
}

// loadValue decodes src when loading is enabled. src may be a string, a []byte
// or an io.Reader.
func (options Options) loadValue(src interface{}) (interface{}, error) {
	if !options.load {
		return src, nil
	}
	loader := options.getLoader()
	switch src := src.(type) {
	case string:
		return loader.Load([]byte(src))
	case []byte:
		return loader.Load(src)
	case io.Reader:
		return loader.LoadFrom(src)
	}
	return nil, ErrUnsupportedSource
}
