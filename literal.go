package main

import (
	"math/big"
	"strings"
	"unicode/utf8"
)

// registerLiteralParsers installs the integer-literal fallback, then the
// string-literal fallback on top of it, so string literals are tried first
// (spec §4.4 "installed as a fallback after the integer parser so it is
// tried first"; Dictionary.PushAlt prepends).
func registerLiteralParsers(dict *Dictionary) {
	dict.PushAlt(integerLiteralParser)
	dict.PushAlt(stringLiteralParser)
}

// integerLiteralParser is spec §4.3's single fallback, trying the char
// literal shape before the numeric literal shape.
func integerLiteralParser(name string) (Word, bool) {
	if w, ok := parseCharLiteral(name); ok {
		return w, true
	}
	return parseNumericLiteral(name)
}

func parseCharLiteral(name string) (Word, bool) {
	if len(name) < 3 || name[0] != '\'' || name[len(name)-1] != '\'' {
		return Word{}, false
	}
	body := name[1 : len(name)-1]
	var cp rune
	switch body {
	case `\n`:
		cp = '\n'
	case `\t`:
		cp = '\t'
	case `\r`:
		cp = '\r'
	default:
		r, size := utf8.DecodeRuneInString(body)
		if r == utf8.RuneError || size != len(body) {
			return Word{}, false
		}
		cp = r
	}
	return pushIntWord(big.NewInt(int64(cp))), true
}

func parseNumericLiteral(name string) (Word, bool) {
	s := name
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}

	radix := 10
	switch {
	case strings.HasPrefix(s, "0b"), strings.HasPrefix(s, "0B"):
		radix, s = 2, s[2:]
	case strings.HasPrefix(s, "0o"), strings.HasPrefix(s, "0O"):
		radix, s = 8, s[2:]
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		radix, s = 16, s[2:]
	}
	if s == "" {
		return Word{}, false
	}

	v := new(big.Int)
	base := big.NewInt(int64(radix))
	digit := new(big.Int)
	any := false
	for _, r := range s {
		if r == '_' {
			continue
		}
		d, ok := digitValue(r)
		if !ok || d >= radix {
			return Word{}, false
		}
		v.Mul(v, base)
		digit.SetInt64(int64(d))
		v.Add(v, digit)
		any = true
	}
	if !any {
		return Word{}, false
	}
	if neg {
		v.Neg(v)
	}
	return pushIntWord(v), true
}

func digitValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'z':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'Z':
		return int(r-'A') + 10, true
	}
	return 0, false
}

func pushIntWord(v *big.Int) Word {
	val := new(big.Int).Set(v)
	return Word{fn: func(vm *VM) error {
		vm.ints.Push(new(big.Int).Set(val))
		return nil
	}}
}

// stringLiteralParser implements spec §4.4: shape "..." with no escape
// processing (spec §9 notes the reference behavior does not unescape).
func stringLiteralParser(name string) (Word, bool) {
	if len(name) < 2 || name[0] != '"' || name[len(name)-1] != '"' {
		return Word{}, false
	}
	obj := NewObjectText(name[1 : len(name)-1])
	return Word{fn: func(vm *VM) error {
		vm.objs.Push(obj)
		return nil
	}}, true
}
