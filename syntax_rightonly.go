package jsondiff

// rightOnlySyntax is the compact syntax without the Replace wrapping:
// replaced values and whole sequences are emitted as the right-hand value.
// Its fragments can't be patched.
type rightOnlySyntax struct{}

func (rightOnlySyntax) String() string { return "rightonly" }

func (rightOnlySyntax) EmitValueDiff(a, b interface{}, s float64) interface{} {
	if s == 1.0 {
		return Object{}
	}
	return b
}

func (rightOnlySyntax) EmitDictDiff(a, b interface{}, s float64, added, changed, removed Object) interface{} {
	if s == 1.0 {
		return Object{}
	}
	if s == 0.0 && mapLen(b) > 0 {
		return b
	}
	d := mergeInto(Object{}, changed, added)
	if len(removed) > 0 {
		d[Delete] = mapKeys(removed)
	}
	return d
}

func (rightOnlySyntax) EmitListDiff(a, b []interface{}, s float64, inserted, changed, deleted []ListEdit) interface{} {
	if s == 1.0 {
		return Object{}
	}
	return b
}

func (rightOnlySyntax) EmitSetDiff(a, b Set, s float64, added, removed Set) interface{} {
	if s == 0.0 || removed.Len() == a.Len() {
		return b
	}
	d := Object{}
	if removed.Len() > 0 {
		d[Discard] = removed
	}
	if added.Len() > 0 {
		d[Add] = added
	}
	return d
}
