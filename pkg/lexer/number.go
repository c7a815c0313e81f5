package lexer

import (
	"strconv"

	"parsec/pkg/parsec"
)

func rawUint[U any](digits parsec.Parser[U, rune], base int) parsec.Parser[U, uint64] {
	return parsec.Map(parsec.Some(digits), digitsToUint(base))
}

func digitsToUint(base int) func([]rune) uint64 {
	return func(ds []rune) uint64 {
		v, _ := strconv.ParseUint(string(ds), base, 64)
		return v
	}
}

// rawSign matches an optional leading '-' or '+' immediately adjacent to
// the digits that follow — no intervening whitespace, per the signed
// numeric lexemes' resolution of the "where does a sign's whitespace go"
// question: whitespace is only ever consumed after the whole lexeme, via
// the usual Lexeme wrapper, never between the sign and its digits.
func rawSign[U any]() parsec.Parser[U, int64] {
	neg := parsec.Map(parsec.Char[U]('-'), func(rune) int64 { return -1 })
	pos := parsec.Map(parsec.Char[U]('+'), func(rune) int64 { return 1 })
	return parsec.Option(int64(1), parsec.Alt(neg, pos))
}

func exponentPart[U any]() parsec.Parser[U, string] {
	sign := parsec.Option("", parsec.Map(parsec.OneOf[U]("+-"), func(r rune) string { return string(r) }))
	return parsec.Bind(parsec.OneOf[U]("eE"), func(e rune) parsec.Parser[U, string] {
		return parsec.Bind(sign, func(sg string) parsec.Parser[U, string] {
			return parsec.Bind(parsec.Some(parsec.DigitChar[U]()), func(ds []rune) parsec.Parser[U, string] {
				return parsec.Return[U, string](string(e) + sg + string(ds))
			})
		})
	})
}

// rawFloatText matches a float literal's text without consuming trailing
// whitespace: digits '.' digits, with an optional exponent, or digits with
// a mandatory exponent.
func rawFloatText[U any]() parsec.Parser[U, string] {
	fracForm := parsec.Bind(parsec.Some(parsec.DigitChar[U]()), func(intPart []rune) parsec.Parser[U, string] {
		return parsec.Bind(parsec.Char[U]('.'), func(rune) parsec.Parser[U, string] {
			return parsec.Bind(parsec.Some(parsec.DigitChar[U]()), func(fracPart []rune) parsec.Parser[U, string] {
				return parsec.Bind(parsec.Option("", exponentPart[U]()), func(exp string) parsec.Parser[U, string] {
					return parsec.Return[U, string](string(intPart) + "." + string(fracPart) + exp)
				})
			})
		})
	})
	expForm := parsec.Bind(parsec.Some(parsec.DigitChar[U]()), func(intPart []rune) parsec.Parser[U, string] {
		return parsec.Bind(exponentPart[U](), func(exp string) parsec.Parser[U, string] {
			return parsec.Return[U, string](string(intPart) + exp)
		})
	})
	return parsec.Alt(parsec.Try(fracForm), expForm)
}

func rawFloat[U any]() parsec.Parser[U, float64] {
	return parsec.Bind(rawFloatText[U](), func(text string) parsec.Parser[U, float64] {
		v, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return parsec.Fail[U, float64]("invalid float literal")
		}
		return parsec.Return[U, float64](v)
	})
}

// buildNumbers wires lx's decimal/hexadecimal/octal/integer/float/number
// fields, each the lexeme form of the corresponding raw parser above.
func buildNumbers[U any](lx *Lexer[U]) {
	decimal := parsec.Label(rawUint[U](parsec.DigitChar[U](), 10), "number")
	hexadecimal := parsec.Then(
		parsec.Alt(parsec.Try(parsec.String[U]("0x")), parsec.String[U]("0X")),
		parsec.Label(rawUint[U](parsec.HexDigitChar[U](), 16), "hexadecimal number"),
	)
	octal := parsec.Then(
		parsec.Alt(parsec.Try(parsec.String[U]("0o")), parsec.String[U]("0O")),
		parsec.Label(rawUint[U](parsec.OctDigitChar[U](), 8), "octal number"),
	)
	float := rawFloat[U]()

	lx.Decimal = Lexeme(lx, decimal)
	lx.Hexadecimal = Lexeme(lx, hexadecimal)
	lx.Octal = Lexeme(lx, octal)
	lx.Float = Lexeme(lx, float)

	lx.Integer = Lexeme(lx, parsec.Map(decimal, func(u uint64) int64 { return int64(u) }))

	signedInt := parsec.Bind(rawSign[U](), func(sign int64) parsec.Parser[U, int64] {
		return parsec.Map(decimal, func(u uint64) int64 { return sign * int64(u) })
	})
	lx.IntegerSigned = Lexeme(lx, signedInt)

	signedFloat := parsec.Bind(rawSign[U](), func(sign int64) parsec.Parser[U, float64] {
		return parsec.Map(float, func(v float64) float64 { return float64(sign) * v })
	})
	lx.FloatSigned = Lexeme(lx, signedFloat)

	lx.Number = Lexeme(lx, parsec.Alt(
		parsec.Try(float),
		parsec.Map(decimal, func(u uint64) float64 { return float64(u) }),
	))
	lx.NumberSigned = Lexeme(lx, parsec.Alt(
		parsec.Try(signedFloat),
		parsec.Map(signedInt, func(i int64) float64 { return float64(i) }),
	))
}
