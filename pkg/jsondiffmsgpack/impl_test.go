package jsondiffmsgpack_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v4"

	"github.com/sanity-io/jsondiff"
	"github.com/sanity-io/jsondiff/pkg/jsondiffmsgpack"
)

func TestRoundtrip(t *testing.T) {
	left := map[string]interface{}{
		"_type": "Person",
		"name":  "Bob",
		"tags":  []interface{}{"a", "$b"},
	}
	right := map[string]interface{}{
		"_type": "Person",
		"name":  "Robert",
		"tags":  []interface{}{"$b", "c"},
	}

	options := jsondiff.SymmetricOptions
	d, err := options.Diff(left, right)
	require.NoError(t, err)

	b, err := jsondiffmsgpack.Marshal(options, d)
	require.NoError(t, err)

	decoded, err := jsondiffmsgpack.Unmarshal(options, b)
	require.NoError(t, err)

	patched, err := options.Patch(left, decoded)
	require.NoError(t, err)
	require.True(t, jsondiff.Equal(right, patched))

	restored, err := options.Unpatch(right, decoded)
	require.NoError(t, err)
	require.True(t, jsondiff.Equal(left, restored))
}

func TestSize(t *testing.T) {
	left := map[string]interface{}{
		"_type": "Person",
		"name":  "Bob",
		"age":   10.0,
	}
	right := map[string]interface{}{
		"_type": "Person",
		"name":  "Bob",
		"age":   15.0,
	}

	d, err := jsondiff.Diff(left, right)
	require.NoError(t, err)

	b, err := jsondiffmsgpack.Marshal(jsondiff.DefaultOptions, d)
	require.NoError(t, err)

	// {"age": 15.0}: map header, fixstr key and a float64.
	require.Len(t, b, 1+4+9)
}

func TestLoaderAsOption(t *testing.T) {
	data, err := jsondiffmsgpack.Dumper{}.Dump(map[string]interface{}{"a": 1, "b": 2})
	require.NoError(t, err)
	other, err := jsondiffmsgpack.Dumper{}.Dump(map[string]interface{}{"a": 1})
	require.NoError(t, err)

	options := jsondiff.DefaultOptions.
		WithLoad(true).
		WithLoader(jsondiffmsgpack.Loader{}).
		WithDump(true).
		WithDumper(jsondiffmsgpack.Dumper{})

	out, err := options.Diff(data, other)
	require.NoError(t, err)

	d, err := jsondiffmsgpack.Loader{}.Load(out.([]byte))
	require.NoError(t, err)
	require.Equal(t, map[string]interface{}{"$delete": []interface{}{"b"}}, d)

	_, err = jsondiffmsgpack.Loader{}.Load([]byte{0xc1})
	require.True(t, errors.Is(err, jsondiff.ErrParse))
}

func TestFragmentEmbedding(t *testing.T) {
	type envelope struct {
		Revision string
		Diff     jsondiffmsgpack.Fragment
	}

	in := envelope{
		Revision: "r1",
		Diff:     jsondiffmsgpack.Fragment{Value: jsondiff.Object{jsondiff.Delete: []interface{}{"b"}}},
	}
	b, err := msgpack.Marshal(&in)
	require.NoError(t, err)

	var out envelope
	err = msgpack.Unmarshal(b, &out)
	require.NoError(t, err)
	require.Equal(t, "r1", out.Revision)
	require.Equal(t, jsondiff.Object{jsondiff.Delete: []interface{}{"b"}}, out.Diff.Value)
}
