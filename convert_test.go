package jsondiff_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sanity-io/jsondiff"
)

type Custom struct {
	attrs map[string]interface{}
}

func TestConvert(t *testing.T) {
	opts := jsondiff.DefaultOptions.WithConvertFunc(func(value interface{}) interface{} {
		if value, ok := value.(Custom); ok {
			return value.attrs
		}
		return value
	})

	left := Custom{
		attrs: map[string]interface{}{
			"a": "abcdefgh",
		},
	}

	right := Custom{
		attrs: map[string]interface{}{
			"a": "abcdefgh",
			"b": 123.0,
		},
	}

	patch, err := opts.Diff(left, right)
	require.NoError(t, err)
	require.Equal(t, jsondiff.Object{"b": 123.0}, patch)

	newRight, err := opts.Patch(left, patch)
	require.NoError(t, err)
	require.EqualValues(t, map[string]interface{}{
		"a": "abcdefgh",
		"b": 123.0,
	}, newRight)
}

func TestConvertNested(t *testing.T) {
	opts := jsondiff.SymmetricOptions.WithConvertFunc(func(value interface{}) interface{} {
		if value, ok := value.(Custom); ok {
			return value.attrs
		}
		return value
	})

	left := map[string]interface{}{
		"items": []interface{}{Custom{attrs: map[string]interface{}{"x": 1.0}}},
	}
	right := map[string]interface{}{
		"items": []interface{}{map[string]interface{}{"x": 2.0}},
	}

	d, err := opts.Diff(left, right)
	require.NoError(t, err)

	newRight, err := opts.Patch(left, d)
	require.NoError(t, err)
	require.EqualValues(t, right, newRight)

	// Opaque values without a conversion are compared as a whole.
	require.Equal(t, 0.0, jsondiff.Similarity(Custom{}, Custom{attrs: map[string]interface{}{}}))
}
