package jsondiff

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/sanity-io/jsondiff/internal/hashing"
)

// Object is a mapping with arbitrary comparable keys. Diff fragments are
// always Objects since their keys may be Symbols or list positions.
type Object = map[interface{}]interface{}

type kind uint8

const (
	kindNull kind = iota
	kindBool
	kindNumber
	kindString
	kindSymbol
	kindSequence
	kindMapping
	kindSet
	kindOpaque
)

func kindOf(v interface{}) kind {
	switch v.(type) {
	case nil:
		return kindNull
	case bool:
		return kindBool
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64, json.Number:
		return kindNumber
	case string:
		return kindString
	case Symbol:
		return kindSymbol
	case []interface{}:
		return kindSequence
	case map[string]interface{}, Object:
		return kindMapping
	case Set:
		return kindSet
	}
	return kindOpaque
}

func isMapping(v interface{}) bool {
	return kindOf(v) == kindMapping
}

// asInt64 reports the value of an integer kind that fits into an int64.
func asInt64(v interface{}) (int64, bool) {
	switch v := v.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), uint64(v) <= math.MaxInt64
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), v <= math.MaxInt64
	case json.Number:
		i, err := v.Int64()
		return i, err == nil
	}
	return 0, false
}

func asFloat64(v interface{}) (float64, bool) {
	switch v := v.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint64:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	}
	if i, ok := asInt64(v); ok {
		return float64(i), true
	}
	return 0, false
}

// wideInteger returns the decimal form of an integer which has no exact
// float64 representation.
func wideInteger(v interface{}) (string, bool) {
	if i, ok := asInt64(v); ok {
		f := float64(i)
		if f < 0x1p63 && int64(f) == i {
			return "", false
		}
		return strconv.FormatInt(i, 10), true
	}

	var u uint64
	switch v := v.(type) {
	case uint:
		u = uint64(v)
	case uint64:
		u = v
	default:
		return "", false
	}
	if f := float64(u); f < 0x1p64 && uint64(f) == u {
		return "", false
	}
	return strconv.FormatUint(u, 10), true
}

// exactNumber widens a number without losing precision. NaN has no exact form.
func exactNumber(v interface{}) (*big.Float, bool) {
	if i, ok := asInt64(v); ok {
		return new(big.Float).SetInt64(i), true
	}
	switch v := v.(type) {
	case uint:
		return new(big.Float).SetUint64(uint64(v)), true
	case uint64:
		return new(big.Float).SetUint64(v), true
	}
	f, ok := asFloat64(v)
	if !ok || math.IsNaN(f) {
		return nil, false
	}
	return new(big.Float).SetFloat64(f), true
}

func numbersEqual(a, b interface{}) bool {
	wa, okA := wideInteger(a)
	wb, okB := wideInteger(b)
	if okA || okB {
		return okA && okB && wa == wb
	}
	if x, ok := asInt64(a); ok {
		if y, ok := asInt64(b); ok {
			return x == y
		}
	}
	x, _ := asFloat64(a)
	y, _ := asFloat64(b)
	return x == y
}

// toIndex reads a list position. Positions may have been turned into
// floats or strings by a round trip through a text format.
func toIndex(v interface{}) (int, bool) {
	if i, ok := asInt64(v); ok {
		return int(i), true
	}
	switch v := v.(type) {
	case float64, float32:
		f, _ := asFloat64(v)
		if f != math.Trunc(f) {
			return 0, false
		}
		return int(f), true
	case string:
		i, err := strconv.Atoi(v)
		return i, err == nil
	}
	return 0, false
}

// Equal reports whether two documents are equal. Numbers are compared by
// value regardless of their Go type, mappings and sets regardless of order.
func Equal(a, b interface{}) bool {
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		return false
	}

	switch ka {
	case kindNull:
		return true
	case kindBool:
		return a.(bool) == b.(bool)
	case kindNumber:
		return numbersEqual(a, b)
	case kindString:
		return a.(string) == b.(string)
	case kindSymbol:
		return a.(Symbol) == b.(Symbol)
	case kindSequence:
		x, y := a.([]interface{}), b.([]interface{})
		if len(x) != len(y) {
			return false
		}
		for i := range x {
			if !Equal(x[i], y[i]) {
				return false
			}
		}
		return true
	case kindMapping:
		if mapLen(a) != mapLen(b) {
			return false
		}
		equal := true
		mapEach(a, func(k, v interface{}) bool {
			w, ok := mapGet(b, k)
			equal = ok && Equal(v, w)
			return equal
		})
		return equal
	case kindSet:
		return a.(Set).equal(b.(Set))
	}

	return reflect.DeepEqual(a, b)
}

// sameInstance reports whether a and b share their backing storage.
func sameInstance(a, b interface{}) bool {
	switch x := a.(type) {
	case map[string]interface{}:
		y, ok := b.(map[string]interface{})
		return ok && x != nil && y != nil && reflect.ValueOf(x).Pointer() == reflect.ValueOf(y).Pointer()
	case Object:
		y, ok := b.(Object)
		return ok && x != nil && y != nil && reflect.ValueOf(x).Pointer() == reflect.ValueOf(y).Pointer()
	case []interface{}:
		y, ok := b.([]interface{})
		return ok && len(x) > 0 && len(x) == len(y) && &x[0] == &y[0]
	case Set:
		y, ok := b.(Set)
		return ok && x.members != nil && y.members != nil &&
			reflect.ValueOf(x.members).Pointer() == reflect.ValueOf(y.members).Pointer()
	}
	return false
}

func hashValue(v interface{}) hashing.Hash {
	switch kindOf(v) {
	case kindNull:
		return hashing.HashNull
	case kindBool:
		if v.(bool) {
			return hashing.HashTrue
		}
		return hashing.HashFalse
	case kindNumber:
		if repr, ok := wideInteger(v); ok {
			return hashing.HashInteger(repr)
		}
		f, _ := asFloat64(v)
		return hashing.HashFloat64(f)
	case kindString:
		return hashing.HashString(v.(string))
	case kindSymbol:
		return hashing.HashSymbol(v.(Symbol).label)
	case kindSequence:
		h := hashing.NewSliceHasher()
		for _, elem := range v.([]interface{}) {
			h.WriteElement(hashValue(elem))
		}
		return h.Sum()
	case kindMapping:
		var entries hashing.Hash
		mapEach(v, func(k, val interface{}) bool {
			entries.Xor(hashing.HashEntry(hashValue(k), hashValue(val)))
			return true
		})
		return hashing.HashMap(entries)
	case kindSet:
		var members hashing.Hash
		for key := range v.(Set).members {
			members.Xor(key)
		}
		return hashing.HashSet(members)
	}
	return hashing.HashOpaque(fmt.Sprintf("%T:%#v", v, v))
}

// compareValues orders documents by kind and then by value. It only needs
// to be total and deterministic; it is used to visit keys and set members in
// a stable order.
func compareValues(a, b interface{}) int {
	ka, kb := kindOf(a), kindOf(b)
	if ka != kb {
		if ka < kb {
			return -1
		}
		return 1
	}

	switch ka {
	case kindNull:
		return 0
	case kindBool:
		x, y := a.(bool), b.(bool)
		switch {
		case x == y:
			return 0
		case !x:
			return -1
		}
		return 1
	case kindNumber:
		if numbersEqual(a, b) {
			return 0
		}
		if x, ok := exactNumber(a); ok {
			if y, ok := exactNumber(b); ok {
				return x.Cmp(y)
			}
		}
		x, _ := asFloat64(a)
		y, _ := asFloat64(b)
		if x < y {
			return -1
		}
		return 1
	case kindString:
		return strings.Compare(a.(string), b.(string))
	case kindSymbol:
		return strings.Compare(a.(Symbol).label, b.(Symbol).label)
	case kindSequence:
		x, y := a.([]interface{}), b.([]interface{})
		for i := 0; i < len(x) && i < len(y); i++ {
			if c := compareValues(x[i], y[i]); c != 0 {
				return c
			}
		}
		return len(x) - len(y)
	}

	ha, hb := hashValue(a), hashValue(b)
	return bytes.Compare(ha[:], hb[:])
}

// Mapping helpers. Both map[string]interface{} and Object are mappings.

func mapLen(m interface{}) int {
	switch m := m.(type) {
	case map[string]interface{}:
		return len(m)
	case Object:
		return len(m)
	}
	return 0
}

func mapGet(m interface{}, key interface{}) (interface{}, bool) {
	switch m := m.(type) {
	case map[string]interface{}:
		s, ok := key.(string)
		if !ok {
			return nil, false
		}
		v, ok := m[s]
		return v, ok
	case Object:
		v, ok := m[key]
		return v, ok
	}
	return nil, false
}

func mapEach(m interface{}, fn func(k, v interface{}) bool) {
	switch m := m.(type) {
	case map[string]interface{}:
		for k, v := range m {
			if !fn(k, v) {
				return
			}
		}
	case Object:
		for k, v := range m {
			if !fn(k, v) {
				return
			}
		}
	}
}

// mapKeys returns the keys of a mapping in canonical order.
func mapKeys(m interface{}) []interface{} {
	keys := make([]interface{}, 0, mapLen(m))
	mapEach(m, func(k, _ interface{}) bool {
		keys = append(keys, k)
		return true
	})
	sortValues(keys)
	return keys
}

func sortValues(values []interface{}) {
	sort.SliceStable(values, func(i, j int) bool {
		return compareValues(values[i], values[j]) < 0
	})
}

func copyMapping(m interface{}) interface{} {
	switch m := m.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out
	case Object:
		out := make(Object, len(m))
		for k, v := range m {
			out[k] = v
		}
		return out
	}
	return m
}

func mapSet(m interface{}, key, value interface{}) bool {
	switch m := m.(type) {
	case map[string]interface{}:
		s, ok := key.(string)
		if !ok {
			return false
		}
		m[s] = value
		return true
	case Object:
		m[key] = value
		return true
	}
	return false
}

func mapDelete(m interface{}, key interface{}) {
	switch m := m.(type) {
	case map[string]interface{}:
		if s, ok := key.(string); ok {
			delete(m, s)
		}
	case Object:
		delete(m, key)
	}
}

// keyString spells a mapping key inside a dotted path.
func keyString(key interface{}) string {
	switch key := key.(type) {
	case string:
		return key
	case Symbol:
		return key.String()
	}
	return fmt.Sprint(key)
}

func childPath(path string, key interface{}) string {
	if path == "" {
		return keyString(key)
	}
	return path + "." + keyString(key)
}
