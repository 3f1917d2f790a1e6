package main

// Object is the object-stack's unit value: an immutable byte sequence
// paired with an immutable ordered sequence of child Objects (spec §3
// "Object value"). Strings are objects whose data is UTF-8 text and whose
// refs are empty; a list of objects has empty data and non-empty refs.
type Object struct {
	data []byte
	refs []Object
}

// NewObjectBytes builds an object from a byte sequence, copying it so the
// caller's slice can be reused.
func NewObjectBytes(data []byte) Object {
	cp := make([]byte, len(data))
	copy(cp, data)
	return Object{data: cp}
}

// NewObjectText builds a string object from text.
func NewObjectText(s string) Object {
	return Object{data: []byte(s)}
}

// NewObjectRefs builds a list object from children, copying the slice.
func NewObjectRefs(refs []Object) Object {
	cp := make([]Object, len(refs))
	copy(cp, refs)
	return Object{refs: cp}
}

// Data returns the object's byte sequence.
func (o Object) Data() []byte { return o.data }

// Refs returns the object's child sequence.
func (o Object) Refs() []Object { return o.refs }

// ByteCount is the length of Data.
func (o Object) ByteCount() int { return len(o.data) }

// RefCount is the length of Refs.
func (o Object) RefCount() int { return len(o.refs) }

// Text decodes Data as UTF-8 text, assuming it is (spec §9 "UTF-8 in
// object text"): callers that need to reject invalid UTF-8 do so at the
// word boundary, not here.
func (o Object) Text() string { return string(o.data) }

// Concat pairwise concatenates both fields of o and rhs (spec invariant 4).
func (o Object) Concat(rhs Object) Object {
	data := make([]byte, 0, len(o.data)+len(rhs.data))
	data = append(data, o.data...)
	data = append(data, rhs.data...)
	refs := make([]Object, 0, len(o.refs)+len(rhs.refs))
	refs = append(refs, o.refs...)
	refs = append(refs, rhs.refs...)
	return Object{data: data, refs: refs}
}

// Slice carves a data range and a refs range out of o.
func (o Object) Slice(dataLo, dataHi, refLo, refHi int) (Object, error) {
	if dataLo < 0 || dataHi < dataLo || dataHi > len(o.data) {
		return Object{}, rangeError{"data slice out of bounds"}
	}
	if refLo < 0 || refHi < refLo || refHi > len(o.refs) {
		return Object{}, rangeError{"refs slice out of bounds"}
	}
	return Object{data: o.data[dataLo:dataHi], refs: o.refs[refLo:refHi]}, nil
}

// IntoRef wraps o as the sole element of a new list object (spec invariant
// 4: IntoRef then index 0 of Refs round-trips o).
func (o Object) IntoRef() Object {
	return Object{refs: []Object{o}}
}
