package jsondiff

import "sort"

type differ struct {
	options *Options
	syntax  Syntax
}

func newDiffer(options *Options) *differ {
	return &differ{options: options, syntax: options.Syntax()}
}

func (d *differ) excluded(path string) bool {
	_, ok := d.options.excludePaths[path]
	return ok
}

func (d *differ) convert(v interface{}) interface{} {
	if d.options.convertFunc != nil {
		return d.options.convertFunc(v)
	}
	return v
}

// objDiff returns the fragment turning a into b together with the
// similarity of the two values.
func (d *differ) objDiff(a, b interface{}, path string) (interface{}, float64) {
	if path != "" && d.excluded(path) {
		return Object{}, 1.0
	}

	a, b = d.convert(a), d.convert(b)
	if sameInstance(a, b) {
		return d.syntax.EmitValueDiff(a, b, 1.0), 1.0
	}

	ka, kb := kindOf(a), kindOf(b)
	switch {
	case ka == kindMapping && kb == kindMapping:
		return d.dictDiff(a, b, path)
	case ka == kindSequence && kb == kindSequence:
		return d.listDiff(a.([]interface{}), b.([]interface{}), path)
	case ka == kindSet && kb == kindSet:
		return d.setDiff(a.(Set), b.(Set), path)
	}

	if !Equal(a, b) {
		return d.syntax.EmitValueDiff(a, b, 0.0), 0.0
	}
	return d.syntax.EmitValueDiff(a, b, 1.0), 1.0
}

func (d *differ) dictDiff(a, b interface{}, path string) (interface{}, float64) {
	added := Object{}
	changed := Object{}
	removed := Object{}

	nremoved, nmatched, nadded := 0, 0, 0
	smatched := 0.0

	for _, k := range mapKeys(a) {
		child := childPath(path, k)
		if d.excluded(child) {
			continue
		}
		av, _ := mapGet(a, k)
		bv, ok := mapGet(b, k)
		if !ok {
			nremoved++
			removed[k] = av
			continue
		}
		nmatched++
		fragment, s := d.objDiff(av, bv, child)
		if s < 1.0 {
			changed[k] = fragment
		}
		smatched += 0.5 + 0.5*s
	}

	for _, k := range mapKeys(b) {
		if d.excluded(childPath(path, k)) {
			continue
		}
		if _, ok := mapGet(a, k); ok {
			continue
		}
		nadded++
		added[k], _ = mapGet(b, k)
	}

	n := nremoved + nmatched + nadded
	s := 1.0
	if n > 0 {
		s = smatched / float64(n)
	}
	return d.syntax.EmitDictDiff(a, b, s, added, changed, removed), s
}

// step is one move of the alignment between two sequences.
type step struct {
	op   int // -1 delete, 0 pair, 1 insert
	i, j int
}

func (d *differ) listDiff(x, y []interface{}, path string) (interface{}, float64) {
	m, n := len(x), len(y)

	scores := make([][]float64, m)
	for i := range scores {
		scores[i] = make([]float64, n)
		for j := range scores[i] {
			_, scores[i][j] = d.objDiff(x[i], y[j], path)
		}
	}

	c := make([][]float64, m+1)
	for i := range c {
		c[i] = make([]float64, n+1)
	}
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			best := c[i][j-1]
			if c[i-1][j] > best {
				best = c[i-1][j]
			}
			if diag := c[i-1][j-1] + scores[i-1][j-1]; diag > best {
				best = diag
			}
			c[i][j] = best
		}
	}

	// Backtrack from the bottom right corner. Ties prefer a pair, then an
	// insertion, then a deletion.
	steps := make([]step, 0, m+n)
	for i, j := m, n; i > 0 || j > 0; {
		if i > 0 && j > 0 {
			s := scores[i-1][j-1]
			if s > 0 && c[i][j] == c[i-1][j-1]+s {
				steps = append(steps, step{0, i - 1, j - 1})
				i--
				j--
				continue
			}
		}
		if j > 0 && (i == 0 || c[i][j-1] >= c[i-1][j]) {
			steps = append(steps, step{1, i, j - 1})
			j--
		} else {
			steps = append(steps, step{-1, i - 1, j})
			i--
		}
	}

	var inserted, changed, deleted []ListEdit
	total := 0.0
	for k := len(steps) - 1; k >= 0; k-- {
		st := steps[k]
		switch st.op {
		case -1:
			deleted = append([]ListEdit{{Pos: st.i, Value: x[st.i]}}, deleted...)
		case 1:
			inserted = append(inserted, ListEdit{Pos: st.j, Value: y[st.j]})
		case 0:
			s := scores[st.i][st.j]
			total += s
			if s < 1.0 {
				fragment, _ := d.objDiff(x[st.i], y[st.j], path)
				changed = append(changed, ListEdit{Pos: st.j, Value: fragment})
			}
		}
	}

	ntot := len(x) + len(inserted)
	s := 1.0
	if ntot > 0 {
		s = total / float64(ntot)
	}
	return d.syntax.EmitListDiff(x, y, s, inserted, changed, deleted), s
}

type candidate struct {
	removed, added interface{}
	s              float64
}

func (d *differ) setDiff(a, b Set, path string) (interface{}, float64) {
	removed := a.difference(b)
	added := b.difference(a)
	if removed.Len() == 0 && added.Len() == 0 {
		return d.syntax.EmitValueDiff(a, b, 1.0), 1.0
	}

	removedElems := removed.Elems()
	addedElems := added.Elems()
	candidates := make([]candidate, 0, len(removedElems)*len(addedElems))
	for _, r := range removedElems {
		for _, e := range addedElems {
			_, s := d.objDiff(r, e, path)
			candidates = append(candidates, candidate{r, e, s})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].s > candidates[j].s
	})

	unmatchedRemoved := removed.clone()
	unmatchedAdded := added.clone()
	sCommon := float64(a.Len() - removed.Len())
	for _, cand := range candidates {
		if unmatchedRemoved.Len() == 0 || unmatchedAdded.Len() == 0 {
			break
		}
		rk, ak := hashValue(cand.removed), hashValue(cand.added)
		if _, ok := unmatchedRemoved.members[rk]; !ok {
			continue
		}
		if _, ok := unmatchedAdded.members[ak]; !ok {
			continue
		}
		delete(unmatchedRemoved.members, rk)
		delete(unmatchedAdded.members, ak)
		sCommon += cand.s
	}

	ntot := a.Len() + added.Len()
	s := 1.0
	if ntot > 0 {
		s = sCommon / float64(ntot)
	}
	return d.syntax.EmitSetDiff(a, b, s, added, removed), s
}
