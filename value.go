package jvx

import (
	"encoding/json"
	"fmt"
	"sort"
	"sync/atomic"
)

// Kind identifies the type of a Value. The zero Kind is KindInvalid so that a
// zero Value is recognisably broken rather than silently null.
type Kind int

const (
	KindInvalid Kind = iota
	KindNull
	KindFalse
	KindTrue
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindNull:
		return "null"
	case KindFalse:
		return "false"
	case KindTrue:
		return "true"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Value is a tagged JSON datum: null, false, true, number, string, array,
// object, or the invalid marker. Compound and string values share a backing
// allocation; Copy increments its share count without duplicating data. The
// dumper only ever reads a Value, so concurrent dumps of the same tree to
// distinct sinks are safe.
//
// String values must hold well-formed UTF-8. The dumper treats a decode
// failure as a broken invariant and panics rather than emit malformed JSON.
type Value struct {
	kind Kind
	num  float64
	str  *sharedString
	arr  *sharedArray
	obj  *sharedObject
	msg  *sharedString // optional diagnostic carried by KindInvalid
}

type sharedString struct {
	refs atomic.Int32
	b    []byte
}

type sharedArray struct {
	refs  atomic.Int32
	elems []Value
}

type sharedObject struct {
	refs  atomic.Int32
	keys  []string
	index map[string]int
	vals  []Value
}

func newSharedString(b []byte) *sharedString {
	s := &sharedString{b: b}
	s.refs.Store(1)
	return s
}

// Null returns the JSON null value.
func Null() Value { return Value{kind: KindNull} }

// True returns the JSON true value.
func True() Value { return Value{kind: KindTrue} }

// False returns the JSON false value.
func False() Value { return Value{kind: KindFalse} }

// Bool returns True() or False().
func Bool(b bool) Value {
	if b {
		return True()
	}
	return False()
}

// Number returns a JSON number. NaN and infinities are representable here;
// the dumper normalises them on output (NaN becomes null, infinities clamp
// to the largest finite double).
func Number(f float64) Value { return Value{kind: KindNumber, num: f} }

// String returns a JSON string value. s must be well-formed UTF-8.
func String(s string) Value {
	return Value{kind: KindString, str: newSharedString([]byte(s))}
}

// Array returns a JSON array holding elems in order.
func Array(elems ...Value) Value {
	a := &sharedArray{elems: elems}
	a.refs.Store(1)
	return Value{kind: KindArray, arr: a}
}

// Object returns an empty JSON object. Populate it with Set; insertion order
// is preserved and observable through Iter.
func Object() Value {
	o := &sharedObject{index: make(map[string]int)}
	o.refs.Store(1)
	return Value{kind: KindObject, obj: o}
}

// Invalid returns the invalid marker without a message.
func Invalid() Value { return Value{kind: KindInvalid} }

// InvalidMsg returns the invalid marker carrying a diagnostic message.
func InvalidMsg(msg string) Value {
	return Value{kind: KindInvalid, msg: newSharedString([]byte(msg))}
}

// Kind reports the value's kind.
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether the value is anything other than the invalid marker.
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// InvalidMessage returns the diagnostic carried by an invalid value, if any.
func (v Value) InvalidMessage() (string, bool) {
	if v.kind != KindInvalid || v.msg == nil {
		return "", false
	}
	return string(v.msg.b), true
}

// Float returns the numeric value. It panics when the value is not a number.
func (v Value) Float() float64 {
	v.mustBe(KindNumber)
	return v.num
}

// Str returns the string value. It panics when the value is not a string.
func (v Value) Str() string {
	v.mustBe(KindString)
	return string(v.str.b)
}

// strBytes exposes the raw UTF-8 backing for the escaper without copying.
func (v Value) strBytes() []byte {
	v.mustBe(KindString)
	return v.str.b
}

// Len returns the element count of an array or the pair count of an object.
// It panics for other kinds.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.arr.elems)
	case KindObject:
		return len(v.obj.keys)
	default:
		panic(fmt.Sprintf("jvx: Len of %s value", v.kind))
	}
}

// Index returns the i'th array element.
func (v Value) Index(i int) Value {
	v.mustBe(KindArray)
	return v.arr.elems[i]
}

// Append adds elems to the end of an array and returns the array value.
func (v Value) Append(elems ...Value) Value {
	v.mustBe(KindArray)
	v.arr.elems = append(v.arr.elems, elems...)
	return v
}

// Set inserts or replaces a key in an object and returns the object value.
// A replaced key keeps its original position; a new key appends.
func (v Value) Set(key string, val Value) Value {
	v.mustBe(KindObject)
	o := v.obj
	if i, ok := o.index[key]; ok {
		o.vals[i] = val
		return v
	}
	o.index[key] = len(o.keys)
	o.keys = append(o.keys, key)
	o.vals = append(o.vals, val)
	return v
}

// Get looks up a key in an object.
func (v Value) Get(key string) (Value, bool) {
	v.mustBe(KindObject)
	i, ok := v.obj.index[key]
	if !ok {
		return Value{}, false
	}
	return v.obj.vals[i], true
}

// Keys returns a lexicographically sorted snapshot of an object's key set.
func (v Value) Keys() []string {
	v.mustBe(KindObject)
	keys := make([]string, len(v.obj.keys))
	copy(keys, v.obj.keys)
	sort.Strings(keys)
	return keys
}

// ObjectIter walks an object's pairs in insertion order.
type ObjectIter struct {
	obj *sharedObject
	i   int
}

// Iter returns an insertion-order cursor over an object's pairs. Call Next
// before the first Key/Value access.
func (v Value) Iter() *ObjectIter {
	v.mustBe(KindObject)
	return &ObjectIter{obj: v.obj, i: -1}
}

// Next advances the cursor and reports whether a pair is available.
func (it *ObjectIter) Next() bool {
	it.i++
	return it.i < len(it.obj.keys)
}

// Key returns the current pair's key.
func (it *ObjectIter) Key() string { return it.obj.keys[it.i] }

// Value returns the current pair's value.
func (it *ObjectIter) Value() Value { return it.obj.vals[it.i] }

// Copy registers another shared reference to the value's backing and returns
// the value. Scalars are unaffected. The count feeds the ShowRefs diagnostic
// annotation; it has no bearing on lifetime, which the garbage collector owns.
func (v Value) Copy() Value {
	switch v.kind {
	case KindString:
		v.str.refs.Add(1)
	case KindArray:
		v.arr.refs.Add(1)
	case KindObject:
		v.obj.refs.Add(1)
	}
	return v
}

// Refs returns the value's share count: 1 for an unshared value, incremented
// by each Copy. Scalars always report 1. The exact meaning is an
// implementation-defined diagnostic, not a stable contract.
func (v Value) Refs() int {
	switch v.kind {
	case KindString:
		return int(v.str.refs.Load())
	case KindArray:
		return int(v.arr.refs.Load())
	case KindObject:
		return int(v.obj.refs.Load())
	default:
		return 1
	}
}

func (v Value) mustBe(k Kind) {
	if v.kind != k {
		panic(fmt.Sprintf("jvx: %s value used as %s", v.kind, k))
	}
}

// FromGo converts a decoded encoding/json value (nil, bool, float64, string,
// []any, map[string]any) into a Value. Map keys are inserted in sorted order
// since Go maps carry no insertion order; decode through json tokens instead
// when document order matters (see cmd/jvx).
func FromGo(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return Bool(x), nil
	case float64:
		return Number(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Value{}, fmt.Errorf("jvx: bad number %q: %w", x.String(), err)
		}
		return Number(f), nil
	case string:
		return String(x), nil
	case []any:
		arr := Array()
		for _, e := range x {
			ev, err := FromGo(e)
			if err != nil {
				return Value{}, err
			}
			arr.Append(ev)
		}
		return arr, nil
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		obj := Object()
		for _, k := range keys {
			ev, err := FromGo(x[k])
			if err != nil {
				return Value{}, err
			}
			obj.Set(k, ev)
		}
		return obj, nil
	default:
		return Value{}, fmt.Errorf("jvx: cannot convert %T to a Value", v)
	}
}
