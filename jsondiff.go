package jsondiff

import (
	"fmt"
)

// Diff returns the fragment turning a into b using the default options.
func Diff(a, b interface{}) (interface{}, error) {
	return DefaultOptions.Diff(a, b)
}

// Patch applies a fragment to a using the default options.
func Patch(a, d interface{}) (interface{}, error) {
	return DefaultOptions.Patch(a, d)
}

// Unpatch applies a symmetric fragment to b, restoring the left document.
func Unpatch(b, d interface{}) (interface{}, error) {
	return SymmetricOptions.Unpatch(b, d)
}

// Similarity returns the similarity of a and b in [0, 1].
func Similarity(a, b interface{}) float64 {
	return DefaultOptions.Similarity(a, b)
}

// Diff returns the fragment turning a into b.
//
// When loading is enabled a and b are decoded first. When marshaling or
// dumping is enabled the fragment is marshaled, and when dumping is enabled
// the encoded fragment is returned as a []byte.
func (options Options) Diff(a, b interface{}) (interface{}, error) {
	d, _, err := options.DiffWithScore(a, b)
	return d, err
}

// DiffWithScore is Diff that also returns the similarity of a and b.
func (options Options) DiffWithScore(a, b interface{}) (interface{}, float64, error) {
	a, err := options.loadValue(a)
	if err != nil {
		return nil, 0, err
	}
	b, err = options.loadValue(b)
	if err != nil {
		return nil, 0, err
	}

	d, s := newDiffer(&options).objDiff(a, b, "")
	options.logger.Debug().
		Str("syntax", syntaxName(options.Syntax())).
		Float64("score", s).
		Msg("computed diff")

	if options.marshal || options.dump {
		d = options.Marshal(d)
	}
	if options.dump {
		out, err := options.getDumper().Dump(d)
		if err != nil {
			return nil, 0, fmt.Errorf("dump diff: %w", err)
		}
		return out, s, nil
	}
	return d, s, nil
}

// Similarity returns the similarity of a and b in [0, 1]. It is 1 exactly
// when the syntax emits an empty fragment.
func (options Options) Similarity(a, b interface{}) float64 {
	_, s := newDiffer(&options).objDiff(a, b, "")
	return s
}

// Patch applies the fragment d to a, producing the right document. The
// syntax must implement Patcher.
func (options Options) Patch(a, d interface{}) (interface{}, error) {
	patcher, ok := options.Syntax().(Patcher)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no patch", ErrNotSupported, syntaxName(options.Syntax()))
	}

	a, d, err := options.prepare(a, d)
	if err != nil {
		return nil, err
	}
	b, err := patcher.Patch(a, d)
	if err != nil {
		options.logger.Debug().Err(err).Str("syntax", syntaxName(options.Syntax())).Msg("patch failed")
		return nil, err
	}
	options.logger.Debug().Str("syntax", syntaxName(options.Syntax())).Msg("applied patch")
	return b, nil
}

// Unpatch applies the fragment d to b, restoring the left document. The
// syntax must implement Unpatcher.
func (options Options) Unpatch(b, d interface{}) (interface{}, error) {
	unpatcher, ok := options.Syntax().(Unpatcher)
	if !ok {
		return nil, fmt.Errorf("%w: %s has no unpatch", ErrNotSupported, syntaxName(options.Syntax()))
	}

	b, d, err := options.prepare(b, d)
	if err != nil {
		return nil, err
	}
	a, err := unpatcher.Unpatch(b, d)
	if err != nil {
		options.logger.Debug().Err(err).Str("syntax", syntaxName(options.Syntax())).Msg("unpatch failed")
		return nil, err
	}
	options.logger.Debug().Str("syntax", syntaxName(options.Syntax())).Msg("applied unpatch")
	return a, nil
}

// prepare loads, converts and unmarshals the inputs of Patch and Unpatch.
func (options Options) prepare(doc, d interface{}) (interface{}, interface{}, error) {
	doc, err := options.loadValue(doc)
	if err != nil {
		return nil, nil, err
	}
	d, err = options.loadValue(d)
	if err != nil {
		return nil, nil, err
	}
	if options.convertFunc != nil {
		doc = convertDeep(doc, options.convertFunc)
	}
	if options.marshal || options.dump {
		d = options.Unmarshal(d)
	}
	return doc, d, nil
}

// convertDeep applies convertFunc to a document and every value inside it.
func convertDeep(v interface{}, convertFunc func(value interface{}) interface{}) interface{} {
	v = convertFunc(v)
	switch v := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, w := range v {
			out[k] = convertDeep(w, convertFunc)
		}
		return out
	case Object:
		out := make(Object, len(v))
		for k, w := range v {
			out[k] = convertDeep(w, convertFunc)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, w := range v {
			out[i] = convertDeep(w, convertFunc)
		}
		return out
	case Set:
		elems := v.Elems()
		for i, w := range elems {
			elems[i] = convertDeep(w, convertFunc)
		}
		return NewSet(elems...)
	}
	return v
}
