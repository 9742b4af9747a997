package jsondiff

// explicitSyntax spells out every change under a marker: Insert, Update
// and Delete for mappings and sequences, Add and Discard for sets. Its
// fragments are meant for reading and can't be patched.
type explicitSyntax struct{}

func (explicitSyntax) String() string { return "explicit" }

func (explicitSyntax) EmitValueDiff(a, b interface{}, s float64) interface{} {
	if s == 1.0 {
		return Object{}
	}
	return b
}

func (explicitSyntax) EmitDictDiff(a, b interface{}, s float64, added, changed, removed Object) interface{} {
	if s == 1.0 {
		return Object{}
	}
	if s == 0.0 && mapLen(b) > 0 {
		return b
	}
	d := Object{}
	if len(added) > 0 {
		d[Insert] = added
	}
	if len(changed) > 0 {
		d[Update] = changed
	}
	if len(removed) > 0 {
		d[Delete] = mapKeys(removed)
	}
	return d
}

func (explicitSyntax) EmitListDiff(a, b []interface{}, s float64, inserted, changed, deleted []ListEdit) interface{} {
	if s == 1.0 {
		return Object{}
	}
	d := Object{}
	if len(inserted) > 0 {
		d[Insert] = editPairs(inserted)
	}
	if len(changed) > 0 {
		d[Update] = editPairs(changed)
	}
	if len(deleted) > 0 {
		d[Delete] = editPositions(deleted)
	}
	return d
}

func (explicitSyntax) EmitSetDiff(a, b Set, s float64, added, removed Set) interface{} {
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
