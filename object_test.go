package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewObjectTextRoundTrip(t *testing.T) {
	o := NewObjectText("hello")
	assert.Equal(t, "hello", o.Text())
	assert.Equal(t, 5, o.ByteCount())
	assert.Equal(t, 0, o.RefCount())
}

func TestNewObjectBytesCopiesInput(t *testing.T) {
	data := []byte("mutable")
	o := NewObjectBytes(data)
	data[0] = 'X'
	assert.Equal(t, "mutable", o.Text())
}

func TestNewObjectRefsCopiesSlice(t *testing.T) {
	refs := []Object{NewObjectText("a"), NewObjectText("b")}
	o := NewObjectRefs(refs)
	refs[0] = NewObjectText("z")
	assert.Equal(t, "a", o.Refs()[0].Text())
	assert.Equal(t, 2, o.RefCount())
}

func TestObjectConcatPairsBothFields(t *testing.T) {
	a := NewObjectText("foo").Concat(NewObjectRefs([]Object{NewObjectText("x")}))
	b := NewObjectText("bar").Concat(NewObjectRefs([]Object{NewObjectText("y")}))

	c := a.Concat(b)
	assert.Equal(t, "foobar", c.Text())
	require.Equal(t, 2, c.RefCount())
	assert.Equal(t, "x", c.Refs()[0].Text())
	assert.Equal(t, "y", c.Refs()[1].Text())
}

func TestObjectSliceBounds(t *testing.T) {
	o := NewObjectText("hello").Concat(NewObjectRefs([]Object{NewObjectText("a"), NewObjectText("b")}))

	sliced, err := o.Slice(1, 4, 0, 1)
	require.NoError(t, err)
	assert.Equal(t, "ell", sliced.Text())
	require.Equal(t, 1, sliced.RefCount())
	assert.Equal(t, "a", sliced.Refs()[0].Text())

	_, err = o.Slice(0, 100, 0, 0)
	var re rangeError
	assert.ErrorAs(t, err, &re)

	_, err = o.Slice(0, 1, 5, 5)
	assert.ErrorAs(t, err, &re)
}

func TestObjectIntoRefRoundTrips(t *testing.T) {
	o := NewObjectText("payload")
	wrapped := o.IntoRef()
	require.Equal(t, 1, wrapped.RefCount())
	assert.Equal(t, "payload", wrapped.Refs()[0].Text())
	assert.Equal(t, 0, wrapped.ByteCount())
}
