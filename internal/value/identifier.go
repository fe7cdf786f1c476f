// Package value implements jink's runtime value model: primitive and record
// instances, their byte layout, and the declaration shapes (TypeId, DecArg,
// TypeDec, Var) that describe them.
package value

import "unicode"

// ReservedIdentifiers are the keyword spellings an Identifier may not equal:
// the declaration keywords for functions, externs, tests, mocks, and loop
// forms, plus the mutation qualifier.
var ReservedIdentifiers = map[string]struct{}{
	"func":  {},
	"ext":   {},
	"test":  {},
	"mock":  {},
	"for":   {},
	"while": {},
	"loop":  {},
	"mut":   {},
}

// IsValidIdentifier reports whether name is a well-formed identifier: a
// non-empty run of alphanumerics and underscores containing at least one
// alphabetic character, and not a reserved keyword.
func IsValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	hasAlpha := false
	for _, r := range name {
		switch {
		case unicode.IsLetter(r):
			hasAlpha = true
		case unicode.IsDigit(r), r == '_':
		default:
			return false
		}
	}
	if !hasAlpha {
		return false
	}
	_, reserved := ReservedIdentifiers[name]
	return !reserved
}
