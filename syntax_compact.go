package jsondiff

// compactSyntax merges changed and added keys into the fragment and marks
// removals with Delete. Whole replacements of mappings are wrapped in
// Replace so they can't be mistaken for a nested fragment.
type compactSyntax struct{}

func (compactSyntax) String() string { return "compact" }

func (compactSyntax) replacement(b interface{}) interface{} {
	if isMapping(b) {
		return Object{Replace: b}
	}
	return b
}

func (c compactSyntax) EmitValueDiff(a, b interface{}, s float64) interface{} {
	if s == 1.0 {
		return Object{}
	}
	return c.replacement(b)
}

func (compactSyntax) EmitDictDiff(a, b interface{}, s float64, added, changed, removed Object) interface{} {
	if s == 0.0 {
		return Object{Replace: b}
	}
	if s == 1.0 {
		return Object{}
	}
	d := mergeInto(Object{}, changed, added)
	if len(removed) > 0 {
		d[Delete] = mapKeys(removed)
	}
	return d
}

func (c compactSyntax) EmitListDiff(a, b []interface{}, s float64, inserted, changed, deleted []ListEdit) interface{} {
	if s == 0.0 {
		return c.replacement(b)
	}
	if s == 1.0 {
		return Object{}
	}
	d := Object{}
	for _, edit := range changed {
		d[edit.Pos] = edit.Value
	}
	if len(inserted) > 0 {
		d[Insert] = editPairs(inserted)
	}
	if len(deleted) > 0 {
		d[Delete] = editPositions(deleted)
	}
	return d
}

func (c compactSyntax) EmitSetDiff(a, b Set, s float64, added, removed Set) interface{} {
	if s == 0.0 || removed.Len() == a.Len() {
		return c.replacement(b)
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

func (compactSyntax) Patch(a, d interface{}) (interface{}, error) {
	return compactPatch(a, d, "")
}

func compactPatch(a, d interface{}, path string) (interface{}, error) {
	if !isMapping(d) {
		return d, nil
	}
	if mapLen(d) == 0 {
		return a, nil
	}
	if replacement, ok := mapGet(d, Replace); ok {
		return replacement, nil
	}

	switch kindOf(a) {
	case kindMapping:
		if err := checkMarkers(d, path, a, Delete); err != nil {
			return nil, err
		}
		out := copyMapping(a)
		for _, k := range mapKeys(d) {
			v, _ := mapGet(d, k)
			if k == Delete {
				keys, err := listSection(v, path, Delete)
				if err != nil {
					return nil, err
				}
				for _, key := range keys {
					if err := deleteKey(out, key, path); err != nil {
						return nil, err
					}
				}
				continue
			}

			if current, ok := mapGet(out, k); ok {
				patched, err := compactPatch(current, v, childPath(path, k))
				if err != nil {
					return nil, err
				}
				v = patched
			}
			if err := setKey(out, k, v, path); err != nil {
				return nil, err
			}
		}
		return out, nil
	case kindSequence:
		if err := checkMarkers(d, path, a, Delete, Insert); err != nil {
			return nil, err
		}
		out := copyList(a.([]interface{}))
		var err error
		if v, ok := mapGet(d, Delete); ok {
			positions, err := listSection(v, path, Delete)
			if err != nil {
				return nil, err
			}
			for _, p := range positions {
				if out, err = removeAt(out, p, nil, false, path); err != nil {
					return nil, err
				}
			}
		}
		if v, ok := mapGet(d, Insert); ok {
			edits, err := editSection(v, path, Insert)
			if err != nil {
				return nil, err
			}
			for _, edit := range edits {
				if out, err = insertAt(out, edit.Pos, edit.Value, path); err != nil {
					return nil, err
				}
			}
		}
		err = patchIndices(out, d, path, compactPatch)
		if err != nil {
			return nil, err
		}
		return out, nil
	case kindSet:
		if err := checkMarkers(d, path, a, Discard, Add); err != nil {
			return nil, err
		}
		out := a.(Set).clone()
		if v, ok := mapGet(d, Discard); ok {
			if err := discardMembers(out, v, path, Discard); err != nil {
				return nil, err
			}
		}
		if v, ok := mapGet(d, Add); ok {
			if err := addMembers(out, v, path, Add, false); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	return nil, patchErrorf(path, "cannot apply a nested diff to a value of type %T", a)
}
