package jsondiff

// Helpers used by the syntaxes to apply fragments. Every helper works on a
// copy of the input document: the caller copies a container once and then
// edits it in place.

func copyList(src []interface{}) []interface{} {
	out := make([]interface{}, len(src))
	copy(out, src)
	return out
}

// listSection reads a marker section holding plain values (keys, positions
// or set members).
func listSection(v interface{}, path string, marker Symbol) ([]interface{}, error) {
	switch v := v.(type) {
	case []interface{}:
		return v, nil
	case Set:
		return v.Elems(), nil
	}
	return nil, patchErrorf(path, "%s section must be a list, got %T", marker, v)
}

// editSection reads a marker section holding [position, value] pairs.
func editSection(v interface{}, path string, marker Symbol) ([]ListEdit, error) {
	list, ok := v.([]interface{})
	if !ok {
		return nil, patchErrorf(path, "%s section must be a list, got %T", marker, v)
	}

	edits := make([]ListEdit, 0, len(list))
	for _, entry := range list {
		pair, ok := entry.([]interface{})
		if !ok || len(pair) != 2 {
			return nil, patchErrorf(path, "%s entry must be a [position, value] pair", marker)
		}
		pos, ok := toIndex(pair[0])
		if !ok {
			return nil, patchErrorf(path, "%s entry has invalid position %v", marker, pair[0])
		}
		edits = append(edits, ListEdit{Pos: pos, Value: pair[1]})
	}
	return edits, nil
}

// removeAt deletes the element at pos. When check is set the element must
// be Equal to expected.
func removeAt(list []interface{}, pos interface{}, expected interface{}, check bool, path string) ([]interface{}, error) {
	idx, ok := toIndex(pos)
	if !ok {
		return nil, patchErrorf(path, "invalid position %v", pos)
	}
	if idx < 0 || idx >= len(list) {
		return nil, patchErrorf(path, "cannot remove position %d from a list of length %d", idx, len(list))
	}
	if check && !Equal(list[idx], expected) {
		return nil, patchErrorf(childPath(path, idx), "value does not match the recorded value")
	}
	return append(list[:idx], list[idx+1:]...), nil
}

func insertAt(list []interface{}, idx int, value interface{}, path string) ([]interface{}, error) {
	if idx < 0 || idx > len(list) {
		return nil, patchErrorf(path, "cannot insert at position %d into a list of length %d", idx, len(list))
	}
	list = append(list, nil)
	copy(list[idx+1:], list[idx:])
	list[idx] = value
	return list, nil
}

// checkMarkers fails when d holds a marker the target container can't use.
func checkMarkers(d interface{}, path string, target interface{}, allowed ...Symbol) error {
	var err error
	mapEach(d, func(k, _ interface{}) bool {
		sym, ok := k.(Symbol)
		if !ok {
			return true
		}
		for _, a := range allowed {
			if sym == a {
				return true
			}
		}
		err = patchErrorf(path, "%s cannot be applied to a value of type %T", sym, target)
		return false
	})
	return err
}

type patchFunc func(a, d interface{}, path string) (interface{}, error)

// patchIndices applies the child fragments stored under list positions.
func patchIndices(list []interface{}, d interface{}, path string, fn patchFunc) error {
	for _, k := range mapKeys(d) {
		if _, ok := k.(Symbol); ok {
			continue
		}
		idx, ok := toIndex(k)
		if !ok {
			return patchErrorf(path, "invalid list position %v", k)
		}
		if idx < 0 || idx >= len(list) {
			return patchErrorf(path, "position %d is out of range for a list of length %d", idx, len(list))
		}
		v, _ := mapGet(d, k)
		patched, err := fn(list[idx], v, childPath(path, idx))
		if err != nil {
			return err
		}
		list[idx] = patched
	}
	return nil
}

func deleteKey(m interface{}, key interface{}, path string) error {
	if _, ok := mapGet(m, key); !ok {
		return patchErrorf(path, "cannot delete missing key %v", key)
	}
	mapDelete(m, key)
	return nil
}

func setKey(m interface{}, key, value interface{}, path string) error {
	if !mapSet(m, key, value) {
		return patchErrorf(path, "key %v (%T) cannot be stored in %T", key, key, m)
	}
	return nil
}

func discardMembers(s Set, v interface{}, path string, marker Symbol) error {
	members, err := listSection(v, path, marker)
	if err != nil {
		return err
	}
	for _, member := range members {
		key := hashValue(member)
		if _, ok := s.members[key]; !ok {
			return patchErrorf(path, "cannot discard %v: not a member", member)
		}
		delete(s.members, key)
	}
	return nil
}

// addMembers inserts members into s. When strict is set a member must not
// be present already.
func addMembers(s Set, v interface{}, path string, marker Symbol, strict bool) error {
	members, err := listSection(v, path, marker)
	if err != nil {
		return err
	}
	for _, member := range members {
		key := hashValue(member)
		if _, ok := s.members[key]; ok && strict {
			return patchErrorf(path, "cannot add %v: already a member", member)
		}
		s.members[key] = member
	}
	return nil
}
