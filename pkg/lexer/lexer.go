// Package lexer builds token-level parsers from a declarative LanguageDef,
// the way Parsec's Text.Parsec.Token does: describe a language's comment
// syntax, identifier/operator character classes and reserved words once,
// and get back a Lexer of ready-made lexeme parsers (identifier, reserved,
// operator, char/string/number literals, brackets, separators) built on top
// of pkg/parsec, with whitespace and comment skipping already wired into
// every one of them.
package lexer

import (
	"sort"
	"strings"
	"unicode"

	"parsec/pkg/parsec"
)

// LanguageDef describes the lexical rules NewLexer compiles into a Lexer.
// CommentStart/CommentEnd/CommentLine are empty to disable that comment
// form entirely. IdentStart/IdentLetter and OpStart/OpLetter are supplied
// as parsers rather than predicates so a caller can reuse anything already
// built with this package (a Unicode class, a fixed OneOf set, and so on).
type LanguageDef[U any] struct {
	CommentStart   string
	CommentEnd     string
	CommentLine    string
	NestedComments bool

	IdentStart  parsec.Parser[U, rune]
	IdentLetter parsec.Parser[U, rune]
	OpStart     parsec.Parser[U, rune]
	OpLetter    parsec.Parser[U, rune]

	ReservedNames   []string
	ReservedOpNames []string
	CaseSensitive   bool
}

// Lexer is the compiled output of NewLexer: a set of lexeme parsers, each
// already consuming its own trailing whitespace and comments per
// LanguageDef, so a grammar built from them never has to think about
// layout at all.
type Lexer[U any] struct {
	def LanguageDef[U]

	WhiteSpace parsec.Parser[U, parsec.Unit]

	Identifier parsec.Parser[U, string]
	Reserved   func(name string) parsec.Parser[U, parsec.Unit]

	Operator   parsec.Parser[U, string]
	ReservedOp func(name string) parsec.Parser[U, parsec.Unit]

	CharLiteral   parsec.Parser[U, rune]
	StringLiteral parsec.Parser[U, string]

	Decimal       parsec.Parser[U, uint64]
	Hexadecimal   parsec.Parser[U, uint64]
	Octal         parsec.Parser[U, uint64]
	Integer       parsec.Parser[U, int64]
	IntegerSigned parsec.Parser[U, int64]
	Float         parsec.Parser[U, float64]
	FloatSigned   parsec.Parser[U, float64]
	Number        parsec.Parser[U, float64]
	NumberSigned  parsec.Parser[U, float64]

	Semicolon parsec.Parser[U, string]
	Comma     parsec.Parser[U, string]
	Colon     parsec.Parser[U, string]
	Dot       parsec.Parser[U, string]

	reservedSorted   []string
	reservedOpSorted []string
}

func sortedFold(names []string, caseSensitive bool) []string {
	out := make([]string, len(names))
	for i, n := range names {
		if caseSensitive {
			out[i] = n
		} else {
			out[i] = strings.ToLower(n)
		}
	}
	sort.Strings(out)
	return out
}

func isSortedMember(sorted []string, key string) bool {
	i := sort.SearchStrings(sorted, key)
	return i < len(sorted) && sorted[i] == key
}

// NewLexer compiles def into a Lexer. Every field of the result is built
// once here; none of them recompute def on every call.
func NewLexer[U any](def LanguageDef[U]) *Lexer[U] {
	lx := &Lexer[U]{def: def}
	lx.reservedSorted = sortedFold(def.ReservedNames, def.CaseSensitive)
	lx.reservedOpSorted = sortedFold(def.ReservedOpNames, def.CaseSensitive)

	lx.WhiteSpace = buildWhiteSpace[U](def)

	lx.Identifier = buildIdentifier(lx, def)
	lx.Reserved = func(name string) parsec.Parser[U, parsec.Unit] {
		return buildReserved(lx, def, name)
	}

	lx.Operator = buildOperator(lx, def)
	lx.ReservedOp = func(name string) parsec.Parser[U, parsec.Unit] {
		return buildReservedOp(lx, def, name)
	}

	lx.CharLiteral = buildCharLiteral(lx)
	lx.StringLiteral = buildStringLiteral(lx)

	buildNumbers(lx)

	lx.Semicolon = Symbol(lx, ";")
	lx.Comma = Symbol(lx, ",")
	lx.Colon = Symbol(lx, ":")
	lx.Dot = Symbol(lx, ".")

	return lx
}

// Lexeme runs p, then discards any trailing whitespace/comments — the
// building block every other lexeme-level field is defined in terms of.
func Lexeme[U, A any](lx *Lexer[U], p parsec.Parser[U, A]) parsec.Parser[U, A] {
	return parsec.Before(p, lx.WhiteSpace)
}

// Symbol matches the literal text s as a lexeme.
func Symbol[U any](lx *Lexer[U], s string) parsec.Parser[U, string] {
	return Lexeme(lx, parsec.String[U](s))
}

// Parens, Braces, Angles and Brackets wrap p in the matching pair of
// lexeme-level bracket symbols, discarding the brackets themselves.
func Parens[U, A any](lx *Lexer[U], p parsec.Parser[U, A]) parsec.Parser[U, A] {
	return parsec.Between(Symbol(lx, "("), Symbol(lx, ")"), p)
}

func Braces[U, A any](lx *Lexer[U], p parsec.Parser[U, A]) parsec.Parser[U, A] {
	return parsec.Between(Symbol(lx, "{"), Symbol(lx, "}"), p)
}

func Angles[U, A any](lx *Lexer[U], p parsec.Parser[U, A]) parsec.Parser[U, A] {
	return parsec.Between(Symbol(lx, "<"), Symbol(lx, ">"), p)
}

func Brackets[U, A any](lx *Lexer[U], p parsec.Parser[U, A]) parsec.Parser[U, A] {
	return parsec.Between(Symbol(lx, "["), Symbol(lx, "]"), p)
}

// CommaSep and CommaSep1 match p separated by lx.Comma, zero-or-more and
// one-or-more times respectively; SemicolonSep/SemicolonSep1 do the same
// with lx.Semicolon.
func CommaSep[U, A any](lx *Lexer[U], p parsec.Parser[U, A]) parsec.Parser[U, []A] {
	return parsec.SepBy(p, lx.Comma)
}

func CommaSep1[U, A any](lx *Lexer[U], p parsec.Parser[U, A]) parsec.Parser[U, []A] {
	return parsec.SepBy1(p, lx.Comma)
}

func SemicolonSep[U, A any](lx *Lexer[U], p parsec.Parser[U, A]) parsec.Parser[U, []A] {
	return parsec.SepBy(p, lx.Semicolon)
}

func SemicolonSep1[U, A any](lx *Lexer[U], p parsec.Parser[U, A]) parsec.Parser[U, []A] {
	return parsec.SepBy1(p, lx.Semicolon)
}

func buildWhiteSpace[U any](def LanguageDef[U]) parsec.Parser[U, parsec.Unit] {
	alts := []parsec.Parser[U, parsec.Unit]{
		parsec.SkipSome(parsec.SpaceChar[U]()),
	}
	if def.CommentLine != "" {
		alts = append(alts, buildLineComment[U](def))
	}
	if def.CommentStart != "" {
		alts = append(alts, buildBlockComment[U](def))
	}
	return parsec.SkipMany(parsec.Choice(alts...))
}

func buildLineComment[U any](def LanguageDef[U]) parsec.Parser[U, parsec.Unit] {
	rest := parsec.SkipMany(parsec.Satisfy[U](func(r rune) bool { return r != '\n' }))
	return parsec.Then(parsec.Try(parsec.String[U](def.CommentLine)), rest)
}

// buildBlockComment supports nesting by referring back to itself through
// Lazy — the recursive var is closed over, not read until the comment
// actually runs, by which point buildBlockComment has finished assigning it.
func buildBlockComment[U any](def LanguageDef[U]) parsec.Parser[U, parsec.Unit] {
	start := parsec.Try(parsec.String[U](def.CommentStart))
	end := parsec.Try(parsec.String[U](def.CommentEnd))
	anyRune := parsec.Map(parsec.AnyChar[U](), func(rune) parsec.Unit { return parsec.Unit{} })

	var body parsec.Parser[U, parsec.Unit]
	if def.NestedComments {
		var self parsec.Parser[U, parsec.Unit]
		nested := parsec.Try(parsec.Lazy(func() parsec.Parser[U, parsec.Unit] { return self }))
		self = parsec.Then(start, parsec.Map(
			parsec.ManyTill(parsec.Alt(nested, anyRune), end),
			func([]parsec.Unit) parsec.Unit { return parsec.Unit{} },
		))
		body = self
	} else {
		body = parsec.Then(start, parsec.Map(
			parsec.ManyTill(anyRune, end),
			func([]parsec.Unit) parsec.Unit { return parsec.Unit{} },
		))
	}
	return body
}

func rawIdentifier[U any](def LanguageDef[U]) parsec.Parser[U, string] {
	return parsec.Bind(def.IdentStart, func(c rune) parsec.Parser[U, string] {
		return parsec.Bind(parsec.Many(def.IdentLetter), func(cs []rune) parsec.Parser[U, string] {
			return parsec.Return[U, string](string(c) + string(cs))
		})
	})
}

func buildIdentifier[U any](lx *Lexer[U], def LanguageDef[U]) parsec.Parser[U, string] {
	ident := parsec.Label(parsec.Try(rawIdentifier(def)), "identifier")
	checked := parsec.Bind(ident, func(name string) parsec.Parser[U, string] {
		key := name
		if !def.CaseSensitive {
			key = strings.ToLower(name)
		}
		if isSortedMember(lx.reservedSorted, key) {
			return parsec.Unexpected[U, string]("reserved word " + showWord(name))
		}
		return parsec.Return[U, string](name)
	})
	return Lexeme(lx, checked)
}

func buildReserved[U any](lx *Lexer[U], def LanguageDef[U], name string) parsec.Parser[U, parsec.Unit] {
	matchName := parsec.Before(caseString[U](name, def.CaseSensitive), parsec.NotFollowedBy(def.IdentLetter, showRune))
	labeled := parsec.Label(parsec.Try(matchName), showWord(name))
	return Lexeme(lx, parsec.Map(labeled, func(string) parsec.Unit { return parsec.Unit{} }))
}

func rawOperator[U any](def LanguageDef[U]) parsec.Parser[U, string] {
	return parsec.Bind(def.OpStart, func(c rune) parsec.Parser[U, string] {
		return parsec.Bind(parsec.Many(def.OpLetter), func(cs []rune) parsec.Parser[U, string] {
			return parsec.Return[U, string](string(c) + string(cs))
		})
	})
}

func buildOperator[U any](lx *Lexer[U], def LanguageDef[U]) parsec.Parser[U, string] {
	op := parsec.Label(parsec.Try(rawOperator(def)), "operator")
	checked := parsec.Bind(op, func(text string) parsec.Parser[U, string] {
		key := text
		if !def.CaseSensitive {
			key = strings.ToLower(text)
		}
		if isSortedMember(lx.reservedOpSorted, key) {
			return parsec.Unexpected[U, string]("reserved operator " + showWord(text))
		}
		return parsec.Return[U, string](text)
	})
	return Lexeme(lx, checked)
}

func buildReservedOp[U any](lx *Lexer[U], def LanguageDef[U], name string) parsec.Parser[U, parsec.Unit] {
	matchName := parsec.Before(caseString[U](name, def.CaseSensitive), parsec.NotFollowedBy(def.OpLetter, showRune))
	labeled := parsec.Label(parsec.Try(matchName), showWord(name))
	return Lexeme(lx, parsec.Map(labeled, func(string) parsec.Unit { return parsec.Unit{} }))
}

func showWord(s string) string { return "\"" + s + "\"" }
func showRune(r rune) string   { return "'" + string(r) + "'" }

// caseString matches s exactly (caseSensitive) or letter-by-letter up to
// case (!caseSensitive), returning the text as it actually appeared in the
// input rather than the canonical form of s.
func caseString[U any](s string, caseSensitive bool) parsec.Parser[U, string] {
	if caseSensitive {
		return parsec.String[U](s)
	}
	rs := []rune(s)
	p := parsec.Return[U, []rune](nil)
	for _, want := range rs {
		want := want
		p = parsec.Bind(p, func(acc []rune) parsec.Parser[U, []rune] {
			match := parsec.Satisfy[U](func(r rune) bool { return unicode.ToLower(r) == unicode.ToLower(want) })
			return parsec.Bind(match, func(r rune) parsec.Parser[U, []rune] {
				return parsec.Return[U, []rune](append(append([]rune{}, acc...), r))
			})
		})
	}
	return parsec.Map(p, func(rs []rune) string { return string(rs) })
}
