package jsondiff

import "strings"

// Marshal lowers a fragment into plain data: marker symbols become strings
// spelled with the escape prefix and strings already starting with the
// prefix get one more prefix. Unmarshal reverses it.
func (options Options) Marshal(d interface{}) interface{} {
	return marshalValue(d, options.Escape())
}

// Unmarshal restores the marker symbols of a marshaled fragment. Decoded
// mappings with a symbol key are turned into Objects.
func (options Options) Unmarshal(d interface{}) interface{} {
	return unmarshalValue(d, options.Escape())
}

func marshalValue(v interface{}, esc string) interface{} {
	switch v := v.(type) {
	case Symbol:
		return esc + v.label
	case string:
		if strings.HasPrefix(v, esc) {
			return esc + v
		}
		return v
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, w := range v {
			out[marshalValue(k, esc).(string)] = marshalValue(w, esc)
		}
		return out
	case Object:
		out := make(Object, len(v))
		for k, w := range v {
			out[marshalValue(k, esc)] = marshalValue(w, esc)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, w := range v {
			out[i] = marshalValue(w, esc)
		}
		return out
	case Set:
		elems := v.Elems()
		for i, w := range elems {
			elems[i] = marshalValue(w, esc)
		}
		return NewSet(elems...)
	}
	return v
}

func unescapeString(s, esc string) interface{} {
	if !strings.HasPrefix(s, esc) {
		return s
	}
	for _, sym := range allSymbols {
		if s == esc+sym.label {
			return sym
		}
	}
	return s[len(esc):]
}

func unmarshalValue(v interface{}, esc string) interface{} {
	switch v := v.(type) {
	case string:
		return unescapeString(v, esc)
	case map[string]interface{}:
		hasSymbol := false
		for k := range v {
			if _, ok := unescapeString(k, esc).(Symbol); ok {
				hasSymbol = true
				break
			}
		}
		if hasSymbol {
			out := make(Object, len(v))
			for k, w := range v {
				out[unescapeString(k, esc)] = unmarshalValue(w, esc)
			}
			return out
		}
		out := make(map[string]interface{}, len(v))
		for k, w := range v {
			out[unescapeString(k, esc).(string)] = unmarshalValue(w, esc)
		}
		return out
	case Object:
		out := make(Object, len(v))
		for k, w := range v {
			out[unmarshalValue(k, esc)] = unmarshalValue(w, esc)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, w := range v {
			out[i] = unmarshalValue(w, esc)
		}
		return out
	case Set:
		elems := v.Elems()
		for i, w := range elems {
			elems[i] = unmarshalValue(w, esc)
		}
		return NewSet(elems...)
	}
	return v
}
