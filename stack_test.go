package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackPushPopOrder(t *testing.T) {
	var s Stack[int]
	s.Push(1)
	s.Push(2)
	s.Push(3)

	v, err := s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = s.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	assert.Equal(t, 1, s.Len())
}

func TestStackTopLeavesValueInPlace(t *testing.T) {
	var s Stack[string]
	s.Push("a")
	s.Push("b")

	top, err := s.Top()
	require.NoError(t, err)
	assert.Equal(t, "b", top)
	assert.Equal(t, 2, s.Len())
}

func TestStackUnderflow(t *testing.T) {
	var s Stack[int]
	_, err := s.Pop()
	assert.ErrorIs(t, err, errStackUnderflow)

	_, err = s.Top()
	assert.ErrorIs(t, err, errStackUnderflow)
}

func TestStackLenEmpty(t *testing.T) {
	var s Stack[int]
	assert.Equal(t, 0, s.Len())
}
