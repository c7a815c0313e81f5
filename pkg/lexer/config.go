package lexer

import (
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"parsec/pkg/parsec"
)

// NoState is the user-state type used by every LanguageDef this package
// builds for you (the presets, and anything loaded via LoadLanguageDef) —
// none of them need per-parse state of their own.
type NoState struct{}

// charClasses maps the character-class names usable in a TOML LanguageDef
// file to the parser they select. "oneOf:<chars>" is handled separately,
// as its set isn't fixed ahead of time.
var charClasses = map[string]func() parsec.Parser[NoState, rune]{
	"letter":              parsec.LetterChar[NoState],
	"alphanum":            parsec.AlphaNumChar[NoState],
	"digit":               parsec.DigitChar[NoState],
	"upper":               parsec.UpperChar[NoState],
	"lower":               parsec.LowerChar[NoState],
	"space":               parsec.SpaceChar[NoState],
	"anychar":             parsec.AnyChar[NoState],
	"underscore_letter":   underscoreLetter,
	"underscore_alphanum": underscoreAlphaNum,
}

func resolveCharClass(name string) (parsec.Parser[NoState, rune], error) {
	if strings.HasPrefix(name, "oneOf:") {
		set := strings.TrimPrefix(name, "oneOf:")
		return parsec.OneOf[NoState](set), nil
	}
	ctor, ok := charClasses[name]
	if !ok {
		return nil, fmt.Errorf("lexer: unknown character class %q", name)
	}
	return ctor(), nil
}

// languageDefConfig is the TOML-decodable shape LoadLanguageDef reads;
// char-class fields are names resolved through resolveCharClass rather
// than parser values, which TOML has no way to represent.
type languageDefConfig struct {
	CommentStart    string   `toml:"comment_start"`
	CommentEnd      string   `toml:"comment_end"`
	CommentLine     string   `toml:"comment_line"`
	NestedComments  bool     `toml:"nested_comments"`
	IdentStart      string   `toml:"ident_start"`
	IdentLetter     string   `toml:"ident_letter"`
	OpStart         string   `toml:"op_start"`
	OpLetter        string   `toml:"op_letter"`
	ReservedNames   []string `toml:"reserved_names"`
	ReservedOpNames []string `toml:"reserved_op_names"`
	CaseSensitive   bool     `toml:"case_sensitive"`
}

// LoadLanguageDef reads a LanguageDef from a TOML file at path, the
// declarative alternative to assembling one by hand in Go: character-class
// fields name one of a fixed set of classes ("letter", "alphanum", "digit",
// "upper", "lower", "space", "anychar", "underscore_letter",
// "underscore_alphanum") or "oneOf:<chars>" for a fixed operator-character
// set.
func LoadLanguageDef(path string) (*LanguageDef[NoState], error) {
	var cfg languageDefConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("lexer: loading language def: %w", err)
	}

	identStart, err := resolveCharClass(cfg.IdentStart)
	if err != nil {
		return nil, err
	}
	identLetter, err := resolveCharClass(cfg.IdentLetter)
	if err != nil {
		return nil, err
	}
	opStart, err := resolveCharClass(cfg.OpStart)
	if err != nil {
		return nil, err
	}
	opLetter, err := resolveCharClass(cfg.OpLetter)
	if err != nil {
		return nil, err
	}

	return &LanguageDef[NoState]{
		CommentStart:    cfg.CommentStart,
		CommentEnd:      cfg.CommentEnd,
		CommentLine:     cfg.CommentLine,
		NestedComments:  cfg.NestedComments,
		IdentStart:      identStart,
		IdentLetter:     identLetter,
		OpStart:         opStart,
		OpLetter:        opLetter,
		ReservedNames:   cfg.ReservedNames,
		ReservedOpNames: cfg.ReservedOpNames,
		CaseSensitive:   cfg.CaseSensitive,
	}, nil
}
