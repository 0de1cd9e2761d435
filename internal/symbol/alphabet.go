// Package symbol holds the alphabet of puzzle tokens and the named
// per-cell symbol restrictions built on top of it.
package symbol

import (
	"fmt"
	"strings"
)

// Index is the internal representation of an alphabet token. Index 0 is
// always reserved for "empty"; printing uses the original token.
type Index int

// Empty is the reserved index for the unassigned symbol.
const Empty Index = 0

// Alphabet is the ordered list of symbol tokens, bidirectionally mapped
// to internal indexes. tokens[0] is always the empty token.
type Alphabet struct {
	tokens    []string
	byToken   map[string]Index
	delimiter bool // needs_delimiter: true when any token is longer than one rune
}

// Parse builds an Alphabet from a whitespace-delimited list of tokens.
// The first token is reserved for "empty". Commas inside a token and
// duplicate tokens are rejected.
func Parse(spec string) (*Alphabet, error) {
	fields := strings.Fields(spec)
	if len(fields) < 2 {
		return nil, fmt.Errorf("symbols: need an empty token plus at least one symbol, got %d tokens", len(fields))
	}
	a := &Alphabet{
		tokens:  make([]string, 0, len(fields)),
		byToken: make(map[string]Index, len(fields)),
	}
	for _, tok := range fields {
		if strings.Contains(tok, ",") {
			return nil, fmt.Errorf("symbols: token %q must not contain a comma", tok)
		}
		if _, dup := a.byToken[tok]; dup {
			return nil, fmt.Errorf("symbols: duplicate token %q", tok)
		}
		idx := Index(len(a.tokens))
		a.tokens = append(a.tokens, tok)
		a.byToken[tok] = idx
		if len([]rune(tok)) > 1 {
			a.delimiter = true
		}
	}
	return a, nil
}

// Len returns the number of tokens including the empty token.
func (a *Alphabet) Len() int { return len(a.tokens) }

// NonEmptyLen returns the number of usable (non-empty) symbols.
func (a *Alphabet) NonEmptyLen() int { return len(a.tokens) - 1 }

// Token returns the printable token for an index, or "" if out of range.
func (a *Alphabet) Token(idx Index) string {
	if idx < 0 || int(idx) >= len(a.tokens) {
		return ""
	}
	return a.tokens[idx]
}

// Lookup returns the index for a token and whether it was found.
func (a *Alphabet) Lookup(token string) (Index, bool) {
	idx, ok := a.byToken[token]
	return idx, ok
}

// HasToken reports whether token is a known alphabet token (including empty).
func (a *Alphabet) HasToken(token string) bool {
	_, ok := a.byToken[token]
	return ok
}

// NeedsDelimiter reports whether a problem string must separate its
// tokens with whitespace; when false, whitespace between single-character
// tokens may be omitted. It is true when any alphabet token is longer
// than one character, and MarkMultiCharName also sets it when an
// allowed-symbol-set name is itself multi-character.
func (a *Alphabet) NeedsDelimiter() bool { return a.delimiter }

// MarkMultiCharName flips needs_delimiter on when a caller-supplied
// allowed-symbol-set name is more than one character long.
func (a *Alphabet) MarkMultiCharName(name string) {
	if len([]rune(name)) > 1 {
		a.delimiter = true
	}
}

// Tokens returns the full token list (index 0 is the empty token).
func (a *Alphabet) Tokens() []string {
	out := make([]string, len(a.tokens))
	copy(out, a.tokens)
	return out
}
