package main

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pushedInt(t *testing.T, w Word) *big.Int {
	t.Helper()
	vm := &VM{}
	require.NoError(t, w.Exec(vm))
	v, err := vm.ints.Pop()
	require.NoError(t, err)
	return v
}

func TestParseNumericLiteralDecimal(t *testing.T) {
	w, ok := parseNumericLiteral("12345")
	require.True(t, ok)
	assert.Equal(t, "12345", pushedInt(t, w).String())
}

func TestParseNumericLiteralNegative(t *testing.T) {
	w, ok := parseNumericLiteral("-7")
	require.True(t, ok)
	assert.Equal(t, "-7", pushedInt(t, w).String())
}

func TestParseNumericLiteralRadixPrefixes(t *testing.T) {
	cases := map[string]string{
		"0b1010": "10",
		"0o17":   "15",
		"0x1F":   "31",
		"0X1f":   "31",
	}
	for in, want := range cases {
		w, ok := parseNumericLiteral(in)
		require.Truef(t, ok, "expected %q to parse", in)
		assert.Equal(t, want, pushedInt(t, w).String(), in)
	}
}

func TestParseNumericLiteralUnderscoreSeparators(t *testing.T) {
	w, ok := parseNumericLiteral("1_000_000")
	require.True(t, ok)
	assert.Equal(t, "1000000", pushedInt(t, w).String())
}

func TestParseNumericLiteralRejectsNonDigits(t *testing.T) {
	_, ok := parseNumericLiteral("not-a-number")
	assert.False(t, ok)

	_, ok = parseNumericLiteral("0x")
	assert.False(t, ok, "a bare radix prefix with no digits should not parse")
}

func TestParseCharLiteral(t *testing.T) {
	w, ok := parseCharLiteral("'a'")
	require.True(t, ok)
	assert.Equal(t, int64('a'), pushedInt(t, w).Int64())
}

func TestParseCharLiteralEscapes(t *testing.T) {
	w, ok := parseCharLiteral(`'\n'`)
	require.True(t, ok)
	assert.Equal(t, int64('\n'), pushedInt(t, w).Int64())
}

func TestParseCharLiteralRejectsMultiRune(t *testing.T) {
	_, ok := parseCharLiteral("'ab'")
	assert.False(t, ok)
}

func TestIntegerLiteralParserPrefersCharShape(t *testing.T) {
	w, ok := integerLiteralParser("'5'")
	require.True(t, ok)
	assert.Equal(t, int64('5'), pushedInt(t, w).Int64(), "a quoted digit is a char literal, not a numeral")
}

func TestStringLiteralParser(t *testing.T) {
	w, ok := stringLiteralParser(`"hello world"`)
	require.True(t, ok)

	vm := &VM{}
	require.NoError(t, w.Exec(vm))
	o, err := vm.objs.Pop()
	require.NoError(t, err)
	assert.Equal(t, "hello world", o.Text())
}

func TestStringLiteralParserRejectsUnquoted(t *testing.T) {
	_, ok := stringLiteralParser("bareword")
	assert.False(t, ok)
}

func TestDigitValue(t *testing.T) {
	d, ok := digitValue('7')
	require.True(t, ok)
	assert.Equal(t, 7, d)

	d, ok = digitValue('f')
	require.True(t, ok)
	assert.Equal(t, 15, d)

	_, ok = digitValue('!')
	assert.False(t, ok)
}
