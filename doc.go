// Package jsondiff computes structural diffs between JSON-like documents
// and applies them.
//
// A document is built from nil, bool, numbers, string, []interface{},
// Set, map[string]interface{} and Object. Diff walks both documents and
// returns a fragment describing the changes; the shape of the fragment is
// chosen by a Syntax. Fragments of the compact and symmetric syntaxes can be
// applied with Patch, and symmetric fragments can be reversed with Unpatch.
//
// Fragments use Symbol values (Insert, Delete, ...) as keys. Before encoding
// a fragment as JSON or YAML it must be marshaled, which spells the symbols
// as strings starting with an escape prefix ("$" by default):
//
//	options := jsondiff.DefaultOptions.WithMarshal(true)
//	d, err := options.Diff(left, right)
package jsondiff
