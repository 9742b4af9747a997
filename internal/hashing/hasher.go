// Package hashing computes structural hashes of decoded documents.
//
// Ordered containers feed their children into a running sha256 state while
// unordered containers (mappings, sets) combine their children with XOR so the
// result does not depend on iteration order.
package hashing

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"
	"math"
	"reflect"
)

type Hash [sha256.Size]byte

type Hasher struct {
	hasher hash.Hash
}

func (h *Hash) Xor(other Hash) {
	for i, b := range other {
		h[i] ^= b
	}
}

const (
	typeString byte = iota
	typeFloat
	typeMap
	typeSlice
	typeTrue
	typeFalse
	typeNull
	typeSet
	typeSymbol
	typeEntry
	typeOpaque
	typeInteger
)

func hasherFor(t byte) Hasher {
	h := Hasher{
		hasher: sha256.New(),
	}
	h.hasher.Write([]byte{t})
	return h
}

func hashFor(t byte) Hash {
	h := hasherFor(t)
	return h.Sum()
}

var HashTrue = hashFor(typeTrue)
var HashFalse = hashFor(typeFalse)
var HashNull = hashFor(typeNull)

var hasherString = hasherFor(typeString)
var hasherFloat = hasherFor(typeFloat)
var hasherSymbol = hasherFor(typeSymbol)
var hasherOpaque = hasherFor(typeOpaque)
var hasherInteger = hasherFor(typeInteger)
var hasherEntry = hasherFor(typeEntry)
var hasherMap = hasherFor(typeMap)
var hasherSet = hasherFor(typeSet)
var hasherSlice = hasherFor(typeSlice)

func HashString(s string) Hash {
	h := hasherString.Copy()
	h.hasher.Write([]byte(s))
	return h.Sum()
}

// HashFloat64 hashes a number. -0 and +0 hash the same since they compare equal.
func HashFloat64(f float64) Hash {
	if f == 0 {
		f = 0
	}
	h := hasherFloat.Copy()
	bits := math.Float64bits(f)
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], bits)
	h.hasher.Write(buf[:])
	return h.Sum()
}

// HashInteger hashes the decimal form of an integer too wide for HashFloat64.
func HashInteger(repr string) Hash {
	h := hasherInteger.Copy()
	h.hasher.Write([]byte(repr))
	return h.Sum()
}

func HashSymbol(label string) Hash {
	h := hasherSymbol.Copy()
	h.hasher.Write([]byte(label))
	return h.Sum()
}

// HashOpaque hashes a value outside the document model by its printed form.
func HashOpaque(repr string) Hash {
	h := hasherOpaque.Copy()
	h.hasher.Write([]byte(repr))
	return h.Sum()
}

// HashEntry binds a mapping key to its value.
func HashEntry(key, value Hash) Hash {
	h := hasherEntry.Copy()
	h.hasher.Write(key[:])
	h.hasher.Write(value[:])
	return h.Sum()
}

// HashMap wraps the XOR of all entry hashes of a mapping.
func HashMap(entries Hash) Hash {
	h := hasherMap.Copy()
	h.hasher.Write(entries[:])
	return h.Sum()
}

// HashSet wraps the XOR of all member hashes of a set.
func HashSet(members Hash) Hash {
	h := hasherSet.Copy()
	h.hasher.Write(members[:])
	return h.Sum()
}

// NewSliceHasher returns a hasher which accepts elements with WriteElement.
func NewSliceHasher() Hasher {
	return hasherSlice.Copy()
}

func (h Hasher) Copy() Hasher {
	res := Hasher{
		hasher: sha256.New(),
	}
	reflect.ValueOf(res.hasher).Elem().Set(reflect.ValueOf(h.hasher).Elem())
	return res
}

func (h *Hasher) Sum() (result Hash) {
	_ = h.hasher.Sum(result[:0])
	return
}

func (h *Hasher) WriteElement(value Hash) {
	h.hasher.Write(value[:])
}
