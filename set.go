package jsondiff

import (
	"bytes"
	"sort"

	"github.com/sanity-io/jsondiff/internal/hashing"
)

// Set is an unordered collection of documents. Members are identified by
// their structural hash, so two members are the same when they are Equal.
//
// A Set is never modified after construction; operations return new sets.
type Set struct {
	members map[hashing.Hash]interface{}
}

type setMember struct {
	key   hashing.Hash
	value interface{}
}

// NewSet creates a set holding the given elements. Duplicates are dropped,
// keeping the first occurrence.
func NewSet(elems ...interface{}) Set {
	s := Set{members: make(map[hashing.Hash]interface{}, len(elems))}
	for _, elem := range elems {
		key := hashValue(elem)
		if _, ok := s.members[key]; !ok {
			s.members[key] = elem
		}
	}
	return s
}

// Len returns the number of members.
func (s Set) Len() int {
	return len(s.members)
}

// Contains reports whether an element Equal to v is a member of the set.
func (s Set) Contains(v interface{}) bool {
	_, ok := s.members[hashValue(v)]
	return ok
}

// Elems returns the members in canonical order.
func (s Set) Elems() []interface{} {
	sorted := s.sorted()
	elems := make([]interface{}, len(sorted))
	for i, m := range sorted {
		elems[i] = m.value
	}
	return elems
}

func (s Set) sorted() []setMember {
	result := make([]setMember, 0, len(s.members))
	for key, value := range s.members {
		result = append(result, setMember{key, value})
	}
	sort.Slice(result, func(i, j int) bool {
		if c := compareValues(result[i].value, result[j].value); c != 0 {
			return c < 0
		}
		return bytes.Compare(result[i].key[:], result[j].key[:]) < 0
	})
	return result
}

// difference returns the members of s which are not in other.
func (s Set) difference(other Set) Set {
	result := Set{members: make(map[hashing.Hash]interface{})}
	for key, value := range s.members {
		if _, ok := other.members[key]; !ok {
			result.members[key] = value
		}
	}
	return result
}

func (s Set) equal(other Set) bool {
	if len(s.members) != len(other.members) {
		return false
	}
	for key := range s.members {
		if _, ok := other.members[key]; !ok {
			return false
		}
	}
	return true
}

func (s Set) clone() Set {
	result := Set{members: make(map[hashing.Hash]interface{}, len(s.members))}
	for key, value := range s.members {
		result.members[key] = value
	}
	return result
}
