package main

// fallbackParser turns an unknown name into a word body, or reports no
// match. Used for the literal parsers (spec §4.3/§4.4).
type fallbackParser func(name string) (Word, bool)

// Dictionary is the ordered mapping from word name to word body, plus the
// fallback-parser chain consulted when a name is not in the mapping (spec
// §3 "Dictionary", §4.2).
type Dictionary struct {
	table     map[string]Word
	fallbacks []fallbackParser
}

// Define unconditionally overwrites any prior binding for name.
func (d *Dictionary) Define(name string, w Word) {
	if d.table == nil {
		d.table = make(map[string]Word)
	}
	d.table[name] = w
}

// Get consults the explicit table first, then the fallback chain in
// most-recently-registered order.
func (d *Dictionary) Get(name string) (Word, bool) {
	if w, ok := d.table[name]; ok {
		return w, true
	}
	for _, fb := range d.fallbacks {
		if w, ok := fb(name); ok {
			return w, true
		}
	}
	return Word{}, false
}

// PushAlt prepends a fallback parser, so it is tried before any previously
// registered fallback (spec §9 "first match wins, newest first").
func (d *Dictionary) PushAlt(fb fallbackParser) {
	d.fallbacks = append([]fallbackParser{fb}, d.fallbacks...)
}
