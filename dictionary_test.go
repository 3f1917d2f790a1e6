package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryDefineAndGet(t *testing.T) {
	var dict Dictionary
	dict.Define("foo", Word{fn: func(vm *VM) error { return nil }})

	w, ok := dict.Get("foo")
	require.True(t, ok)
	assert.False(t, w.immediate)

	_, ok = dict.Get("bar")
	assert.False(t, ok)
}

func TestDictionaryRedefineOverwrites(t *testing.T) {
	var dict Dictionary
	dict.Define("x", Word{immediate: false})
	dict.Define("x", Word{immediate: true})

	w, ok := dict.Get("x")
	require.True(t, ok)
	assert.True(t, w.immediate)
}

func TestDictionaryFallbackConsultedOnMiss(t *testing.T) {
	var dict Dictionary
	dict.PushAlt(func(name string) (Word, bool) {
		if name == "alt" {
			return Word{}, true
		}
		return Word{}, false
	})

	_, ok := dict.Get("alt")
	assert.True(t, ok)

	_, ok = dict.Get("nope")
	assert.False(t, ok)
}

func TestDictionaryTableWinsOverFallback(t *testing.T) {
	var dict Dictionary
	dict.Define("dup", Word{immediate: true})
	dict.PushAlt(func(name string) (Word, bool) {
		return Word{immediate: false}, name == "dup"
	})

	w, ok := dict.Get("dup")
	require.True(t, ok)
	assert.True(t, w.immediate, "explicit table entry should win over a fallback parser")
}

func TestDictionaryPushAltTriesNewestFirst(t *testing.T) {
	var dict Dictionary
	dict.PushAlt(func(name string) (Word, bool) { return Word{immediate: false}, true })
	dict.PushAlt(func(name string) (Word, bool) { return Word{immediate: true}, true })

	w, ok := dict.Get("anything")
	require.True(t, ok)
	assert.True(t, w.immediate, "most recently pushed fallback should be tried first")
}
