package lexer

import "parsec/pkg/parsec"

func underscoreLetter() parsec.Parser[NoState, rune] {
	return parsec.Alt(parsec.LetterChar[NoState](), parsec.Char[NoState]('_'))
}

func underscoreAlphaNum() parsec.Parser[NoState, rune] {
	return parsec.Alt(parsec.AlphaNumChar[NoState](), parsec.Char[NoState]('_'))
}

// CLikeLanguageDef approximates the lexical rules shared by the C family:
// /* */ nested block comments, // line comments, C identifiers, and a
// reserved-word set covering the control-flow and type keywords common to
// that family.
func CLikeLanguageDef() LanguageDef[NoState] {
	return LanguageDef[NoState]{
		CommentStart:   "/*",
		CommentEnd:     "*/",
		CommentLine:    "//",
		NestedComments: true,
		IdentStart:     underscoreLetter(),
		IdentLetter:    underscoreAlphaNum(),
		OpStart:        parsec.OneOf[NoState](":!#$%&*+./<=>?@\\^|-~"),
		OpLetter:       parsec.OneOf[NoState](":!#$%&*+./<=>?@\\^|-~"),
		ReservedNames: []string{
			"auto", "break", "case", "char", "const", "continue", "default",
			"do", "double", "else", "enum", "extern", "float", "for", "goto",
			"if", "int", "long", "register", "return", "short", "signed",
			"sizeof", "static", "struct", "switch", "typedef", "union",
			"unsigned", "void", "volatile", "while",
		},
		ReservedOpNames: []string{
			"=", "==", "!=", "<", "<=", ">", ">=", "&&", "||", "!",
			"+", "-", "*", "/", "%", "++", "--", "->", ".",
		},
		CaseSensitive: true,
	}
}

// TypeScriptSubsetLanguageDef reuses the keyword and operator set of the
// expression-oriented scripting language this module's lexeme-level
// combinators replace the hand-rolled scanner for: the same reserved
// words, the same compound-assignment, comparison, logical and spread
// operators, under nested /* */ and // comments.
func TypeScriptSubsetLanguageDef() LanguageDef[NoState] {
	return LanguageDef[NoState]{
		CommentStart:   "/*",
		CommentEnd:     "*/",
		CommentLine:    "//",
		NestedComments: true,
		IdentStart:     underscoreLetter(),
		IdentLetter:    underscoreAlphaNum(),
		OpStart:        parsec.OneOf[NoState]("=+-!*/<>&|?.:"),
		OpLetter:       parsec.OneOf[NoState]("=+-!*/<>&|?.:"),
		ReservedNames: []string{
			"function", "let", "const", "true", "false", "if", "else",
			"return", "null", "undefined", "while", "do", "for", "break",
			"continue", "type", "switch", "case", "default",
		},
		ReservedOpNames: []string{
			"=", "+", "-", "!", "*", "/", "<", ">", "==", "!=", "<=", ">=",
			"+=", "-=", "*=", "/=", "++", "--", "|", "&&", "||", "??",
			"===", "!==", "?", "=>", "...", ".",
		},
		CaseSensitive: true,
	}
}
