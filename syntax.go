package jsondiff

import (
	"fmt"
	"sort"
)

// Syntax shapes the changes found by the differ into a diff fragment.
//
// The differ calls one Emit method per pair of values it compares. s is the
// similarity of a and b: exactly 1 when nothing changed and exactly 0 when
// nothing could be matched.
type Syntax interface {
	EmitValueDiff(a, b interface{}, s float64) interface{}

	// EmitDictDiff receives the added keys with their new values, the
	// changed keys with their child fragments and the removed keys with
	// their old values.
	EmitDictDiff(a, b interface{}, s float64, added, changed, removed Object) interface{}

	// EmitListDiff receives insertions in ascending position of b, changed
	// entries (Value holding the child fragment) in ascending position of b
	// and deletions in descending position of a.
	EmitListDiff(a, b []interface{}, s float64, inserted, changed, deleted []ListEdit) interface{}

	EmitSetDiff(a, b Set, s float64, added, removed Set) interface{}
}

// Patcher is implemented by syntaxes whose fragments can be applied to the
// left document to produce the right document.
type Patcher interface {
	Patch(a, d interface{}) (interface{}, error)
}

// Unpatcher is implemented by syntaxes whose fragments can be applied to the
// right document to restore the left document.
type Unpatcher interface {
	Unpatch(b, d interface{}) (interface{}, error)
}

// ListEdit is a value at a position of a sequence.
type ListEdit struct {
	Pos   int
	Value interface{}
}

var (
	Compact   Syntax = compactSyntax{}
	Explicit  Syntax = explicitSyntax{}
	Symmetric Syntax = symmetricSyntax{}
	RightOnly Syntax = rightOnlySyntax{}
)

var builtinSyntaxes = map[string]Syntax{
	"compact":   Compact,
	"explicit":  Explicit,
	"symmetric": Symmetric,
	"rightonly": RightOnly,
}

// SyntaxByName looks up one of the builtin syntaxes.
func SyntaxByName(name string) (Syntax, error) {
	syntax, ok := builtinSyntaxes[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSyntax, name)
	}
	return syntax, nil
}

// SyntaxNames returns the names of the builtin syntaxes, sorted.
func SyntaxNames() []string {
	names := make([]string, 0, len(builtinSyntaxes))
	for name := range builtinSyntaxes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func syntaxName(syntax Syntax) string {
	if s, ok := syntax.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", syntax)
}

// Emit helpers shared by the builtin syntaxes.

func editPairs(edits []ListEdit) []interface{} {
	result := make([]interface{}, len(edits))
	for i, edit := range edits {
		result[i] = []interface{}{edit.Pos, edit.Value}
	}
	return result
}

func editPositions(edits []ListEdit) []interface{} {
	result := make([]interface{}, len(edits))
	for i, edit := range edits {
		result[i] = edit.Pos
	}
	return result
}

func mergeInto(dst Object, srcs ...Object) Object {
	for _, src := range srcs {
		for k, v := range src {
			dst[k] = v
		}
	}
	return dst
}
