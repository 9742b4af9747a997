package jsondiff

// symmetricSyntax keeps both sides of every change so a fragment can be
// applied in either direction. Replaced values are stored as [a, b] pairs,
// removed keys and list entries keep their old values.
type symmetricSyntax struct{}

func (symmetricSyntax) String() string { return "symmetric" }

func (symmetricSyntax) EmitValueDiff(a, b interface{}, s float64) interface{} {
	if s == 1.0 {
		return Object{}
	}
	return []interface{}{a, b}
}

func (symmetricSyntax) EmitDictDiff(a, b interface{}, s float64, added, changed, removed Object) interface{} {
	if s == 1.0 {
		return Object{}
	}
	d := mergeInto(Object{}, changed)
	if len(added) > 0 {
		d[Insert] = added
	}
	if len(removed) > 0 {
		d[Delete] = removed
	}
	return d
}

func (symmetricSyntax) EmitListDiff(a, b []interface{}, s float64, inserted, changed, deleted []ListEdit) interface{} {
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
		d[Delete] = editPairs(deleted)
	}
	return d
}

func (symmetricSyntax) EmitSetDiff(a, b Set, s float64, added, removed Set) interface{} {
	if s == 0.0 || removed.Len() == a.Len() {
		return []interface{}{a, b}
	}
	d := Object{}
	if added.Len() > 0 {
		d[Add] = added
	}
	if removed.Len() > 0 {
		d[Discard] = removed
	}
	return d
}

func (symmetricSyntax) Patch(a, d interface{}) (interface{}, error) {
	return symmetricPatch(a, d, "")
}

func (symmetricSyntax) Unpatch(b, d interface{}) (interface{}, error) {
	return symmetricUnpatch(b, d, "")
}

func replacementPair(d interface{}, path string) ([]interface{}, bool, error) {
	pair, ok := d.([]interface{})
	if !ok {
		return nil, false, nil
	}
	if len(pair) != 2 {
		return nil, true, patchErrorf(path, "replacement must be a [left, right] pair, got %d elements", len(pair))
	}
	return pair, true, nil
}

func symmetricPatch(a, d interface{}, path string) (interface{}, error) {
	pair, isPair, err := replacementPair(d, path)
	if err != nil {
		return nil, err
	}
	if isPair {
		if !Equal(a, pair[0]) {
			return nil, patchErrorf(path, "value does not match the left side of the diff")
		}
		return pair[1], nil
	}

	if !isMapping(d) {
		return nil, patchErrorf(path, "invalid symmetric diff of type %T", d)
	}
	if mapLen(d) == 0 {
		return a, nil
	}

	switch kindOf(a) {
	case kindMapping:
		out := copyMapping(a)
		for _, k := range mapKeys(d) {
			v, _ := mapGet(d, k)
			switch k {
			case Delete:
				err = removeEntries(out, v, path)
			case Insert:
				err = restoreEntries(out, v, path, Insert)
			default:
				err = patchEntry(out, k, v, path, symmetricPatch)
			}
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	case kindSequence:
		if err := checkMarkers(d, path, a, Delete, Insert); err != nil {
			return nil, err
		}
		out := copyList(a.([]interface{}))
		if v, ok := mapGet(d, Delete); ok {
			edits, err := editSection(v, path, Delete)
			if err != nil {
				return nil, err
			}
			for _, edit := range edits {
				if out, err = removeAt(out, edit.Pos, edit.Value, true, path); err != nil {
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
		if err := patchIndices(out, d, path, symmetricPatch); err != nil {
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
			if err := addMembers(out, v, path, Add, true); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	return nil, patchErrorf(path, "cannot apply a nested diff to a value of type %T", a)
}

func symmetricUnpatch(b, d interface{}, path string) (interface{}, error) {
	pair, isPair, err := replacementPair(d, path)
	if err != nil {
		return nil, err
	}
	if isPair {
		if !Equal(b, pair[1]) {
			return nil, patchErrorf(path, "value does not match the right side of the diff")
		}
		return pair[0], nil
	}

	if !isMapping(d) {
		return nil, patchErrorf(path, "invalid symmetric diff of type %T", d)
	}
	if mapLen(d) == 0 {
		return b, nil
	}

	switch kindOf(b) {
	case kindMapping:
		out := copyMapping(b)
		for _, k := range mapKeys(d) {
			v, _ := mapGet(d, k)
			switch k {
			case Delete:
				err = restoreEntries(out, v, path, Delete)
			case Insert:
				err = removeEntries(out, v, path)
			default:
				err = patchEntry(out, k, v, path, symmetricUnpatch)
			}
			if err != nil {
				return nil, err
			}
		}
		return out, nil
	case kindSequence:
		if err := checkMarkers(d, path, b, Delete, Insert); err != nil {
			return nil, err
		}
		out := copyList(b.([]interface{}))
		if err := patchIndices(out, d, path, symmetricUnpatch); err != nil {
			return nil, err
		}
		if v, ok := mapGet(d, Insert); ok {
			edits, err := editSection(v, path, Insert)
			if err != nil {
				return nil, err
			}
			for i := len(edits) - 1; i >= 0; i-- {
				if out, err = removeAt(out, edits[i].Pos, edits[i].Value, true, path); err != nil {
					return nil, err
				}
			}
		}
		if v, ok := mapGet(d, Delete); ok {
			edits, err := editSection(v, path, Delete)
			if err != nil {
				return nil, err
			}
			for i := len(edits) - 1; i >= 0; i-- {
				if out, err = insertAt(out, edits[i].Pos, edits[i].Value, path); err != nil {
					return nil, err
				}
			}
		}
		return out, nil
	case kindSet:
		if err := checkMarkers(d, path, b, Discard, Add); err != nil {
			return nil, err
		}
		out := b.(Set).clone()
		if v, ok := mapGet(d, Add); ok {
			if err := discardMembers(out, v, path, Add); err != nil {
				return nil, err
			}
		}
		if v, ok := mapGet(d, Discard); ok {
			if err := addMembers(out, v, path, Discard, true); err != nil {
				return nil, err
			}
		}
		return out, nil
	}

	return nil, patchErrorf(path, "cannot apply a nested diff to a value of type %T", b)
}

// removeEntries removes every key of the section from m. The current values
// must match the recorded ones.
func removeEntries(m interface{}, section interface{}, path string) error {
	if !isMapping(section) {
		return patchErrorf(path, "entry section must be a mapping, got %T", section)
	}
	for _, k := range mapKeys(section) {
		recorded, _ := mapGet(section, k)
		current, ok := mapGet(m, k)
		if !ok {
			return patchErrorf(path, "cannot delete missing key %v", k)
		}
		if !Equal(current, recorded) {
			return patchErrorf(childPath(path, k), "value does not match the recorded value")
		}
		mapDelete(m, k)
	}
	return nil
}

// restoreEntries stores every key of the section in m. None of the keys
// may be present already.
func restoreEntries(m interface{}, section interface{}, path string, marker Symbol) error {
	if !isMapping(section) {
		return patchErrorf(path, "%s section must be a mapping, got %T", marker, section)
	}
	for _, k := range mapKeys(section) {
		if _, ok := mapGet(m, k); ok {
			return patchErrorf(path, "cannot insert existing key %v", k)
		}
		v, _ := mapGet(section, k)
		if err := setKey(m, k, v, path); err != nil {
			return err
		}
	}
	return nil
}

func patchEntry(m interface{}, k, d interface{}, path string, fn patchFunc) error {
	current, ok := mapGet(m, k)
	if !ok {
		return patchErrorf(path, "cannot patch missing key %v", k)
	}
	patched, err := fn(current, d, childPath(path, k))
	if err != nil {
		return err
	}
	return setKey(m, k, patched, path)
}
