package fuzz

import (
	"bytes"
	"encoding/json"

	"github.com/sanity-io/jsondiff"
)

// Fuzz reads two JSON documents and checks that the compact and symmetric
// fragments between them round trip, also after encoding them as JSON.
func Fuzz(data []byte) int {
	dec := json.NewDecoder(bytes.NewReader(data))
	var left, right interface{}

	err := dec.Decode(&left)
	if err != nil {
		return -1
	}

	err = dec.Decode(&right)
	if err != nil {
		return -1
	}

	compact := jsondiff.CompactOptions
	d, err := compact.Diff(left, right)
	if err != nil {
		panic(err)
	}
	constructedRight, err := compact.Patch(left, d)
	if err != nil {
		panic(err)
	}
	if !jsondiff.Equal(right, constructedRight) {
		panic("compact patch is incorrect")
	}

	symmetric := jsondiff.SymmetricOptions.WithDump(true)
	encoded, err := symmetric.Diff(left, right)
	if err != nil {
		panic(err)
	}
	fragment, err := jsondiff.JSONLoader{}.Load(encoded.([]byte))
	if err != nil {
		panic(err)
	}

	constructedRight, err = symmetric.Patch(left, fragment)
	if err != nil {
		panic(err)
	}
	if !jsondiff.Equal(right, constructedRight) {
		panic("symmetric patch is incorrect")
	}

	constructedLeft, err := symmetric.Unpatch(right, fragment)
	if err != nil {
		panic(err)
	}
	if !jsondiff.Equal(left, constructedLeft) {
		panic("symmetric unpatch is incorrect")
	}

	return 1
}
