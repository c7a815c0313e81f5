// Character-level primitives (spec §4.5): satisfy, char, string, digit
// classes, oneOf/noneOf. Everything here is built on TokenPrim/Tokens from
// token.go — these are not special cases, just the character instantiation
// of the generic primitives.
package parsec

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"

	"parsec/pkg/stream"
)

func showRuneTok(t stream.Rune) string {
	if t.Ch == 0 {
		return "end of input"
	}
	return "'" + string(t.Ch) + "'"
}

func showChar(c rune) string {
	return "'" + string(c) + "'"
}

// Satisfy matches any single rune for which pred holds.
func Satisfy[U any](pred func(rune) bool) Parser[U, rune] {
	return TokenPrim[U, rune](showRuneTok, DefaultNextPos, func(t stream.Rune) (rune, bool) {
		if pred(t.Ch) {
			return t.Ch, true
		}
		return 0, false
	})
}

// Char matches exactly one rune c.
func Char[U any](c rune) Parser[U, rune] {
	return Label(Satisfy[U](func(r rune) bool { return r == c }), showChar(c))
}

// OneOf matches any rune appearing in cs.
func OneOf[U any](cs string) Parser[U, rune] {
	return Satisfy[U](func(r rune) bool { return strings.ContainsRune(cs, r) })
}

// NoneOf matches any rune not appearing in cs.
func NoneOf[U any](cs string) Parser[U, rune] {
	return Satisfy[U](func(r rune) bool { return !strings.ContainsRune(cs, r) })
}

// AnyChar matches any single rune, failing only at end of input.
func AnyChar[U any]() Parser[U, rune] {
	return Satisfy[U](func(rune) bool { return true })
}

// String matches a fixed sequence of runes exactly, committing after the
// first rune matches (spec §4.4's Tokens: a mismatch past index 0 is a
// Consumed-Error).
func String[U any](s string) Parser[U, string] {
	rs := []rune(s)
	toks := make([]stream.Rune, len(rs))
	for i, r := range rs {
		toks[i] = stream.Rune{Ch: r, Width: utf8.RuneLen(r)}
	}
	return Tokens[U](showRuneTok, DefaultNextPos, toks)
}

// Eol matches "\n" or "\r\n".
func Eol[U any]() Parser[U, string] {
	return Alt(String[U]("\r\n"), String[U]("\n"))
}

// alphaNumRanges merges the Letter and Number Unicode categories into one
// table via golang.org/x/text/unicode/rangetable, so alphaNumChar tests
// membership with a single unicode.In call instead of a hand-chained
// IsLetter(r) || IsNumber(r) boolean tree.
var alphaNumRanges = rangetable.Merge(unicode.Letter, unicode.Number)

// DigitChar matches a Unicode decimal digit, labelled "digit".
func DigitChar[U any]() Parser[U, rune] {
	return Label(Satisfy[U](unicode.IsDigit), "digit")
}

// HexDigitChar matches an ASCII hexadecimal digit, labelled "hexadecimal digit".
func HexDigitChar[U any]() Parser[U, rune] {
	return Label(Satisfy[U](isHexDigit), "hexadecimal digit")
}

// OctDigitChar matches an ASCII octal digit, labelled "octal digit".
func OctDigitChar[U any]() Parser[U, rune] {
	return Label(Satisfy[U](isOctDigit), "octal digit")
}

// LetterChar matches a Unicode letter, labelled "letter".
func LetterChar[U any]() Parser[U, rune] {
	return Label(Satisfy[U](unicode.IsLetter), "letter")
}

// AlphaNumChar matches a Unicode letter or number, labelled "alphanumeric character".
func AlphaNumChar[U any]() Parser[U, rune] {
	return Label(Satisfy[U](func(r rune) bool { return unicode.In(r, alphaNumRanges) }), "alphanumeric character")
}

// SpaceChar matches a Unicode whitespace character, labelled "whitespace".
func SpaceChar[U any]() Parser[U, rune] {
	return Label(Satisfy[U](unicode.IsSpace), "whitespace")
}

// UpperChar matches a Unicode uppercase letter, labelled "uppercase letter".
func UpperChar[U any]() Parser[U, rune] {
	return Label(Satisfy[U](unicode.IsUpper), "uppercase letter")
}

// LowerChar matches a Unicode lowercase letter, labelled "lowercase letter".
func LowerChar[U any]() Parser[U, rune] {
	return Label(Satisfy[U](unicode.IsLower), "lowercase letter")
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isOctDigit(r rune) bool {
	return r >= '0' && r <= '7'
}
