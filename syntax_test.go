package jsondiff_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanity-io/jsondiff"
)

func TestSyntaxShapes(t *testing.T) {
	obj := doc("a", true)
	tests := []struct {
		name     string
		options  jsondiff.Options
		left     interface{}
		right    interface{}
		expected interface{}
	}{
		{"explicit insert", jsondiff.ExplicitOptions, list(), list(obj), jsondiff.Object{jsondiff.Insert: list(pair(0, obj))}},
		{"explicit delete", jsondiff.ExplicitOptions, list(obj), list(), jsondiff.Object{jsondiff.Delete: list(0)}},
		{"compact insert", jsondiff.CompactOptions, list(), list(obj), list(obj)},
		{"compact delete", jsondiff.CompactOptions, list(obj), list(), list()},
		{"symmetric insert", jsondiff.SymmetricOptions, list(), list(obj), jsondiff.Object{jsondiff.Insert: list(pair(0, obj))}},
		{"symmetric delete", jsondiff.SymmetricOptions, list(obj), list(), jsondiff.Object{jsondiff.Delete: list(pair(0, obj))}},
		{
			"symmetric disjoint keys", jsondiff.SymmetricOptions,
			jsondiff.Object{1: 2}, jsondiff.Object{5: 3},
			jsondiff.Object{jsondiff.Delete: jsondiff.Object{1: 2}, jsondiff.Insert: jsondiff.Object{5: 3}},
		},
		{
			"compact disjoint keys", jsondiff.CompactOptions,
			jsondiff.Object{1: 2}, jsondiff.Object{5: 3},
			jsondiff.Object{jsondiff.Replace: jsondiff.Object{5: 3}},
		},
		{"symmetric value", jsondiff.SymmetricOptions, 1, "x", list(1, "x")},
		{"symmetric unchanged", jsondiff.SymmetricOptions, doc("a", 1), doc("a", 1), jsondiff.Object{}},
		{
			"symmetric list change", jsondiff.SymmetricOptions,
			list(doc("a", 1, "b", 1)), list(doc("a", 1, "b", 2)),
			jsondiff.Object{0: jsondiff.Object{"b": list(1, 2)}},
		},
		{
			"explicit dict", jsondiff.ExplicitOptions,
			doc("a", 1, "b", 2, "c", 3), doc("a", 1, "b", 5, "d", 4),
			jsondiff.Object{
				jsondiff.Insert: jsondiff.Object{"d": 4},
				jsondiff.Update: jsondiff.Object{"b": 5},
				jsondiff.Delete: list("c"),
			},
		},
		{"explicit dict replaced", jsondiff.ExplicitOptions, doc("a", 1), doc("b", 2), doc("b", 2)},
		{"explicit dict emptied", jsondiff.ExplicitOptions, doc("a", 1), doc(), jsondiff.Object{jsondiff.Delete: list("a")}},
		{
			"explicit list update", jsondiff.ExplicitOptions,
			list(doc("a", 1, "b", 1)), list(doc("a", 1, "b", 2)),
			jsondiff.Object{jsondiff.Update: list(pair(0, jsondiff.Object{jsondiff.Update: jsondiff.Object{"b": 2}}))},
		},
		{"explicit set replaced", jsondiff.ExplicitOptions, jsondiff.NewSet(1), jsondiff.NewSet(2), jsondiff.NewSet(2)},
		{"symmetric set replaced", jsondiff.SymmetricOptions, jsondiff.NewSet(1), jsondiff.NewSet(2), list(jsondiff.NewSet(1), jsondiff.NewSet(2))},
		{"rightonly list", jsondiff.RightOnlyOptions, list(1, 2, 3), list(4, 5, 6), list(4, 5, 6)},
		{"rightonly value", jsondiff.RightOnlyOptions, doc("a", 1), doc("a", 2), jsondiff.Object{"a": 2}},
		{"rightonly dict replaced", jsondiff.RightOnlyOptions, doc("a", 1), doc("b", 2), doc("b", 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := tt.options.Diff(tt.left, tt.right)
			require.NoError(t, err)
			require.Equal(t, tt.expected, d)
		})
	}
}

func TestRightOnlySyntax(t *testing.T) {
	options := jsondiff.RightOnlyOptions.WithMarshal(true)

	d, err := options.Diff(doc("poplist", list(1, 2, 3)), doc())
	require.NoError(t, err)
	require.Equal(t, jsondiff.Object{"$delete": list("poplist")}, d)

	a := jsondiff.Object{1: 2, 2: 3, "list": list(1, 2, 3), "samelist": list(1, 2, 3), "poplist": list(1, 2, 3)}
	b := jsondiff.Object{1: 2, 2: 4, "list": list(1, 3), "samelist": list(1, 2, 3)}

	d, err = options.Diff(a, b)
	require.NoError(t, err)
	require.Equal(t, jsondiff.Object{2: 4, "list": list(1, 3), "$delete": list("poplist")}, d)

	d, err = jsondiff.RightOnlyOptions.Diff(a, b)
	require.NoError(t, err)
	require.Equal(t, jsondiff.Object{2: 4, "list": list(1, 3), jsondiff.Delete: list("poplist")}, d)

	d, err = options.Diff(list(1, 2, 3), list(4, 5, 6))
	require.NoError(t, err)
	require.Equal(t, list(4, 5, 6), d)
}

func TestSyntaxByName(t *testing.T) {
	require.Equal(t, []string{"compact", "explicit", "rightonly", "symmetric"}, jsondiff.SyntaxNames())

	for _, name := range jsondiff.SyntaxNames() {
		syntax, err := jsondiff.SyntaxByName(name)
		require.NoError(t, err)
		require.Equal(t, name, syntax.(interface{ String() string }).String())
	}

	_, err := jsondiff.SyntaxByName("unified")
	require.True(t, errors.Is(err, jsondiff.ErrUnknownSyntax))
}

func TestSymmetricPatchChecksValues(t *testing.T) {
	a := doc("a", 1, "b", list("x", "y"))
	b := doc("a", 2, "b", list("y"), "c", true)

	d, err := jsondiff.SymmetricOptions.Diff(a, b)
	require.NoError(t, err)

	patched, err := jsondiff.SymmetricOptions.Patch(a, d)
	require.NoError(t, err)
	require.Equal(t, b, patched)

	restored, err := jsondiff.Unpatch(b, d)
	require.NoError(t, err)
	require.Equal(t, a, restored)

	// Applying to the wrong side must fail instead of producing garbage.
	_, err = jsondiff.SymmetricOptions.Patch(b, d)
	require.True(t, errors.Is(err, jsondiff.ErrPatch))

	_, err = jsondiff.Unpatch(a, d)
	require.True(t, errors.Is(err, jsondiff.ErrPatch))

	var patchErr *jsondiff.PatchError
	require.True(t, errors.As(err, &patchErr))
}

func TestSymmetricSetPatch(t *testing.T) {
	a := jsondiff.NewSet(1, 2, 4)
	b := jsondiff.NewSet(1, 2, 3)

	d, err := jsondiff.SymmetricOptions.Diff(a, b)
	require.NoError(t, err)
	require.Equal(t, jsondiff.Object{jsondiff.Add: jsondiff.NewSet(3), jsondiff.Discard: jsondiff.NewSet(4)}, d)

	patched, err := jsondiff.SymmetricOptions.Patch(a, d)
	require.NoError(t, err)
	require.Equal(t, b, patched)

	restored, err := jsondiff.Unpatch(b, d)
	require.NoError(t, err)
	require.Equal(t, a, restored)

	_, err = jsondiff.SymmetricOptions.Patch(b, d)
	require.True(t, errors.Is(err, jsondiff.ErrPatch))
}

func TestSymmetricRejectsForeignMarkers(t *testing.T) {
	onList := jsondiff.Object{jsondiff.Add: jsondiff.NewSet(3)}
	_, err := jsondiff.SymmetricOptions.Patch(list(1, 2), onList)
	require.True(t, errors.Is(err, jsondiff.ErrPatch))
	_, err = jsondiff.Unpatch(list(1, 2), onList)
	require.True(t, errors.Is(err, jsondiff.ErrPatch))

	onSet := jsondiff.Object{jsondiff.Insert: list(pair(0, 1))}
	_, err = jsondiff.SymmetricOptions.Patch(jsondiff.NewSet(1), onSet)
	require.True(t, errors.Is(err, jsondiff.ErrPatch))
	_, err = jsondiff.Unpatch(jsondiff.NewSet(1), onSet)
	require.True(t, errors.Is(err, jsondiff.ErrPatch))
}

func TestCompactPatchErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  interface{}
		d    interface{}
	}{
		{"missing key", doc("a", 1), jsondiff.Object{jsondiff.Delete: list("b")}},
		{"position out of range", list(1), jsondiff.Object{jsondiff.Delete: list(3)}},
		{"insert out of range", list(1), jsondiff.Object{jsondiff.Insert: list(pair(5, 1))}},
		{"malformed insert", list(1), jsondiff.Object{jsondiff.Insert: list(1)}},
		{"changed index out of range", list(1), jsondiff.Object{4: 2}},
		{"discard non-member", jsondiff.NewSet(1), jsondiff.Object{jsondiff.Discard: jsondiff.NewSet(2)}},
		{"delete section not a list", doc("a", 1), jsondiff.Object{jsondiff.Delete: "a"}},
		{"fragment on a scalar", 5, jsondiff.Object{jsondiff.Delete: list("x"), "c": 3}},
		{"nested fragment on a scalar", doc("a", "s"), jsondiff.Object{"a": jsondiff.Object{jsondiff.Insert: list(pair(0, 1))}}},
		{"add on a list", list(1, 2), jsondiff.Object{jsondiff.Add: jsondiff.NewSet(3)}},
		{"insert on a mapping", doc("a", 1), jsondiff.Object{jsondiff.Insert: list(pair(0, 1))}},
		{"delete on a set", jsondiff.NewSet(1), jsondiff.Object{jsondiff.Delete: list(0)}},
		{"discard on a mapping", doc("a", 1), jsondiff.Object{jsondiff.Discard: jsondiff.NewSet(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := jsondiff.Patch(tt.doc, tt.d)
			require.Error(t, err)
			require.True(t, errors.Is(err, jsondiff.ErrPatch), err.Error())
		})
	}
}

func TestCompactPatch(t *testing.T) {
	a := list("x", "a", doc("v", 11), "c", "x")
	b := list("a", doc("v", 20), "b", "c")

	d, err := jsondiff.Diff(a, b)
	require.NoError(t, err)

	patched, err := jsondiff.Patch(a, d)
	require.NoError(t, err)
	require.Equal(t, b, patched)

	// the input is left untouched
	require.Equal(t, list("x", "a", doc("v", 11), "c", "x"), a)
}

func TestUnsupportedOperations(t *testing.T) {
	for _, options := range []jsondiff.Options{jsondiff.ExplicitOptions, jsondiff.RightOnlyOptions} {
		_, err := options.Patch(doc(), jsondiff.Object{})
		require.True(t, errors.Is(err, jsondiff.ErrNotSupported))
	}

	for _, options := range []jsondiff.Options{jsondiff.CompactOptions, jsondiff.ExplicitOptions, jsondiff.RightOnlyOptions} {
		_, err := options.Unpatch(doc(), jsondiff.Object{})
		require.True(t, errors.Is(err, jsondiff.ErrNotSupported))
	}
}
