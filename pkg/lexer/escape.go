package lexer

import (
	"strconv"

	"parsec/pkg/parsec"
)

// letterEscapes maps a single letter following a backslash to the
// character it denotes.
var letterEscapes = map[rune]rune{
	'a': '\a', 'b': '\b', 'f': '\f', 'n': '\n', 'r': '\r',
	't': '\t', 'v': '\v', '\\': '\\', '"': '"', '\'': '\'',
}

// asciiMnemonics is the C0-control mnemonic table, ordered so that any name
// which is a prefix of another (SO/SOH) has the longer one tried first.
var asciiMnemonics = []struct {
	Name string
	Code rune
}{
	{"NUL", 0}, {"SOH", 1}, {"STX", 2}, {"ETX", 3}, {"EOT", 4},
	{"ENQ", 5}, {"ACK", 6}, {"BEL", 7}, {"BS", 8}, {"HT", 9},
	{"LF", 10}, {"VT", 11}, {"FF", 12}, {"CR", 13}, {"SO", 14},
	{"SI", 15}, {"DLE", 16}, {"DC1", 17}, {"DC2", 18}, {"DC3", 19},
	{"DC4", 20}, {"NAK", 21}, {"SYN", 22}, {"ETB", 23}, {"CAN", 24},
	{"EM", 25}, {"SUB", 26}, {"ESC", 27}, {"FS", 28}, {"GS", 29},
	{"RS", 30}, {"US", 31}, {"SP", 32}, {"DEL", 127},
}

func digitsToRune(base int) func([]rune) rune {
	return func(ds []rune) rune {
		v, _ := strconv.ParseUint(string(ds), base, 32)
		return rune(v)
	}
}

// escapeCode parses the part of an escape sequence after the backslash: a
// letter escape, a numeric escape (decimal, \o octal or \x hex), an ASCII
// control mnemonic, or a caret-notation control character.
func escapeCode[U any]() parsec.Parser[U, rune] {
	letter := parsec.Satisfy[U](func(r rune) bool {
		_, ok := letterEscapes[r]
		return ok
	})
	letterEscape := parsec.Map(letter, func(r rune) rune { return letterEscapes[r] })

	decimalEscape := parsec.Map(parsec.Some(parsec.DigitChar[U]()), digitsToRune(10))
	octalEscape := parsec.Then(parsec.Char[U]('o'), parsec.Map(parsec.Some(parsec.OctDigitChar[U]()), digitsToRune(8)))
	hexEscape := parsec.Then(parsec.Char[U]('x'), parsec.Map(parsec.Some(parsec.HexDigitChar[U]()), digitsToRune(16)))
	numericEscape := parsec.Choice(decimalEscape, octalEscape, hexEscape)

	mnemonics := make([]parsec.Parser[U, rune], len(asciiMnemonics))
	for i, m := range asciiMnemonics {
		code := m.Code
		mnemonics[i] = parsec.Try(parsec.Map(parsec.String[U](m.Name), func(string) rune { return code }))
	}
	mnemonicEscape := parsec.Choice(mnemonics...)

	caretEscape := parsec.Then(parsec.Char[U]('^'), parsec.Map(
		parsec.Satisfy[U](func(r rune) bool { return r >= 'A' && r <= 'Z' }),
		func(r rune) rune { return r - 64 },
	))

	return parsec.Label(parsec.Choice(letterEscape, numericEscape, mnemonicEscape, caretEscape), "escape code")
}

func directChar[U any](forbid rune) parsec.Parser[U, rune] {
	return parsec.Satisfy[U](func(r rune) bool { return r != forbid && r != '\\' && r > 26 })
}

func buildCharLiteral[U any](lx *Lexer[U]) parsec.Parser[U, rune] {
	quote := parsec.Char[U]('\'')
	body := parsec.Alt(directChar[U]('\''), parsec.Then(parsec.Char[U]('\\'), escapeCode[U]()))
	return Lexeme(lx, parsec.Label(parsec.Between(quote, quote, body), "character"))
}

// stringChunk is one string-char's contribution: either a rune that
// appears in the literal's value, or nothing at all (the empty escape \&
// and string gaps contribute nothing but still terminate an escape).
type stringChunk struct {
	ok bool
	ch rune
}

func stringEscape[U any]() parsec.Parser[U, stringChunk] {
	asCode := parsec.Map(escapeCode[U](), func(r rune) stringChunk { return stringChunk{ok: true, ch: r} })
	empty := parsec.Map(parsec.Char[U]('&'), func(rune) stringChunk { return stringChunk{} })
	gap := parsec.Map(
		parsec.Then(parsec.Some(parsec.SpaceChar[U]()), parsec.Char[U]('\\')),
		func(rune) stringChunk { return stringChunk{} },
	)
	return parsec.Then(parsec.Char[U]('\\'), parsec.Choice(asCode, empty, gap))
}

func buildStringLiteral[U any](lx *Lexer[U]) parsec.Parser[U, string] {
	direct := parsec.Map(directChar[U]('"'), func(r rune) stringChunk { return stringChunk{ok: true, ch: r} })
	char := parsec.Alt(direct, stringEscape[U]())
	quote := parsec.Char[U]('"')
	body := parsec.Map(parsec.Many(char), func(cs []stringChunk) string {
		rs := make([]rune, 0, len(cs))
		for _, c := range cs {
			if c.ok {
				rs = append(rs, c.ch)
			}
		}
		return string(rs)
	})
	return Lexeme(lx, parsec.Label(parsec.Between(quote, quote, body), "literal string"))
}
