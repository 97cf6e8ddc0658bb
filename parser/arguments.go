package parser

import (
	"sort"
	"strings"
)

// Prefix is a short literal marker introducing a field's raw argument within
// a command line, e.g. "n/" for name.
type Prefix string

// Prefix inventory shared by the command grammars.
const (
	PrefixName         Prefix = "n/"
	PrefixPhone        Prefix = "p/"
	PrefixEmail        Prefix = "e/"
	PrefixAddress      Prefix = "a/"
	PrefixTag          Prefix = "t/"
	PrefixRelationship Prefix = "r/"
	PrefixAllergy      Prefix = "ta/"
	PrefixCondition    Prefix = "tc/"
	PrefixInsurance    Prefix = "ti/"
	PrefixTagDelete    Prefix = "td/"
	PrefixTagEdit      Prefix = "te/"
)

// ArgumentMap holds the result of tokenizing a command's argument string: the
// preamble (text before the first prefix) and the raw values collected for
// each recognized prefix, in order of appearance.
type ArgumentMap struct {
	preamble string
	values   map[Prefix][]string
}

// prefixHit records one recognized prefix occurrence.
type prefixHit struct {
	prefix Prefix
	start  int
}

// Tokenize splits args into a preamble and prefix-tagged segments. A prefix
// is recognized only at a token boundary, i.e. when preceded by whitespace,
// so free text containing a prefix-like substring mid-token ("Blk4t/5") is
// safe. The flip side is documented behavior: a prefix that follows a space
// always starts a new field, even inside intended free text; there is no
// escape syntax.
func Tokenize(args string, prefixes ...Prefix) *ArgumentMap {
	padded := " " + args

	var hits []prefixHit
	for _, p := range prefixes {
		marker := " " + string(p)
		from := 0
		for {
			idx := strings.Index(padded[from:], marker)
			if idx < 0 {
				break
			}
			at := from + idx
			hits = append(hits, prefixHit{prefix: p, start: at + 1})
			from = at + 1
		}
	}
	sort.Slice(hits, func(i, j int) bool { return hits[i].start < hits[j].start })

	m := &ArgumentMap{values: make(map[Prefix][]string)}
	if len(hits) == 0 {
		m.preamble = strings.TrimSpace(padded)
		return m
	}

	m.preamble = strings.TrimSpace(padded[:hits[0].start])
	for i, h := range hits {
		valueStart := h.start + len(h.prefix)
		valueEnd := len(padded)
		if i+1 < len(hits) {
			valueEnd = hits[i+1].start
		}
		value := strings.TrimSpace(padded[valueStart:valueEnd])
		m.values[h.prefix] = append(m.values[h.prefix], value)
	}
	return m
}

// Preamble returns the text before the first recognized prefix.
func (m *ArgumentMap) Preamble() string {
	return m.preamble
}

// Value returns the single raw value for p, if present. With multiple
// occurrences it returns the first; grammars that allow at most one
// occurrence reject duplicates via VerifyNoDuplicates before reading.
func (m *ArgumentMap) Value(p Prefix) (string, bool) {
	vs := m.values[p]
	if len(vs) == 0 {
		return "", false
	}
	return vs[0], true
}

// AllValues returns every raw value collected for p, in order of appearance.
func (m *ArgumentMap) AllValues(p Prefix) []string {
	return m.values[p]
}

// ArePresent reports whether every given prefix appeared at least once.
func (m *ArgumentMap) ArePresent(prefixes ...Prefix) bool {
	for _, p := range prefixes {
		if len(m.values[p]) == 0 {
			return false
		}
	}
	return true
}

// VerifyNoDuplicates fails with a DuplicatePrefix ParseError if any of the
// given zero-or-one prefixes occurred more than once.
func (m *ArgumentMap) VerifyNoDuplicates(prefixes ...Prefix) error {
	var dups []Prefix
	for _, p := range prefixes {
		if len(m.values[p]) > 1 {
			dups = append(dups, p)
		}
	}
	if len(dups) > 0 {
		return duplicatePrefix(dups)
	}
	return nil
}
