package jsondiff_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanity-io/jsondiff"
)

func TestMarshal(t *testing.T) {
	options := jsondiff.DefaultOptions

	d := jsondiff.Object{
		jsondiff.Delete: 3,
		"$delete":       4,
		jsondiff.Insert: 4,
		"$$something":   1,
	}

	dm := options.Marshal(d)
	require.Equal(t, jsondiff.Object{
		"$delete":      3,
		"$$delete":     4,
		"$insert":      4,
		"$$$something": 1,
	}, dm)

	require.Equal(t, d, options.Unmarshal(dm))
}

func TestMarshalNested(t *testing.T) {
	options := jsondiff.DefaultOptions

	d := jsondiff.Object{
		"a": jsondiff.Object{
			jsondiff.Insert: list(pair(0, "$x")),
			jsondiff.Delete: list(1),
		},
		"s": jsondiff.Object{jsondiff.Add: jsondiff.NewSet("$", "y")},
		"m": doc("$k", "$v"),
	}

	dm := options.Marshal(d)
	require.Equal(t, jsondiff.Object{
		"a": jsondiff.Object{
			"$insert": list(pair(0, "$$x")),
			"$delete": list(1),
		},
		"s": jsondiff.Object{"$add": jsondiff.NewSet("$$", "y")},
		"m": doc("$$k", "$$v"),
	}, dm)

	require.Equal(t, d, options.Unmarshal(dm))
}

func TestUnmarshalDecodedJSON(t *testing.T) {
	options := jsondiff.DefaultOptions

	decoded := map[string]interface{}{
		"a": map[string]interface{}{
			"$delete": []interface{}{"$$b"},
			"c":       3.0,
		},
		"$$d": "$$e",
	}

	require.Equal(t, map[string]interface{}{
		"a": jsondiff.Object{
			jsondiff.Delete: []interface{}{"$b"},
			"c":             3.0,
		},
		"$d": "$e",
	}, options.Unmarshal(decoded))
}

func TestMarshalCustomEscape(t *testing.T) {
	options := jsondiff.DefaultOptions.WithEscape("@")

	d := jsondiff.Object{jsondiff.Replace: doc("@a", "$b")}
	dm := options.Marshal(d)
	require.Equal(t, jsondiff.Object{"@replace": doc("@@a", "$b")}, dm)
	require.Equal(t, d, options.Unmarshal(dm))

	diffOptions := jsondiff.CompactOptions.WithEscape("@").WithMarshal(true)
	out, err := diffOptions.Diff(doc("a", 1, "b", 2), doc("a", 1))
	require.NoError(t, err)
	require.Equal(t, jsondiff.Object{"@delete": list("b")}, out)
}

func TestSymbols(t *testing.T) {
	require.Equal(t, "$insert", jsondiff.Insert.String())
	require.Equal(t, "insert", jsondiff.Insert.Label())
	require.NotEqual(t, interface{}(jsondiff.Insert), interface{}("insert"))
	require.False(t, jsondiff.Equal(jsondiff.Insert, jsondiff.Delete))
	require.True(t, jsondiff.Equal(jsondiff.Insert, jsondiff.Insert))
}
