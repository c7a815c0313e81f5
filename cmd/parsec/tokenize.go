package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"parsec/pkg/diag"
	"parsec/pkg/errors"
	"parsec/pkg/lexer"
	"parsec/pkg/parsec"
	"parsec/pkg/source"
)

func newTokenizeCmd() *cobra.Command {
	var langPath string
	var preset string

	cmd := &cobra.Command{
		Use:           "tokenize <file>",
		Short:         "Tokenize a file against a LanguageDef",
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			def, err := resolveLanguageDef(langPath, preset)
			if err != nil {
				return err
			}

			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}
			src := source.FromFile(args[0], string(content))

			lx := lexer.NewLexer(*def)
			tokens, err := runTokenize(lx, *def, src)
			if err != nil {
				if pe, ok := err.(*errors.ParseError); ok {
					fmt.Fprint(os.Stderr, diag.Format(src, pe))
				} else {
					fmt.Fprintln(os.Stderr, err)
				}
				return err
			}
			for _, tok := range tokens {
				fmt.Println(tok)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&langPath, "lang", "", "path to a LanguageDef TOML file")
	cmd.Flags().StringVar(&preset, "preset", "ts", "built-in LanguageDef preset to use when --lang is not given (c, ts)")

	return cmd
}

func resolveLanguageDef(langPath, preset string) (*lexer.LanguageDef[lexer.NoState], error) {
	if langPath != "" {
		return lexer.LoadLanguageDef(langPath)
	}
	switch preset {
	case "c":
		d := lexer.CLikeLanguageDef()
		return &d, nil
	case "ts":
		d := lexer.TypeScriptSubsetLanguageDef()
		return &d, nil
	default:
		return nil, fmt.Errorf("unknown preset %q (want \"c\" or \"ts\")", preset)
	}
}

// tokenParser builds a single parser that recognizes exactly one lexeme of
// any kind this LanguageDef knows about, rendering it as a one-line
// description. Reserved names are tried before Identifier/Operator since
// those two explicitly reject anything on the reserved list.
func tokenParser(lx *lexer.Lexer[lexer.NoState], def lexer.LanguageDef[lexer.NoState]) parsec.Parser[lexer.NoState, string] {
	alts := make([]parsec.Parser[lexer.NoState, string], 0, 8+len(def.ReservedNames)+len(def.ReservedOpNames))

	for _, name := range def.ReservedNames {
		name := name
		alts = append(alts, parsec.Map(lx.Reserved(name), func(parsec.Unit) string {
			return "KEYWORD " + name
		}))
	}
	for _, name := range def.ReservedOpNames {
		name := name
		alts = append(alts, parsec.Map(lx.ReservedOp(name), func(parsec.Unit) string {
			return "RESERVED_OP " + name
		}))
	}

	alts = append(alts,
		parsec.Map(lx.StringLiteral, func(s string) string { return fmt.Sprintf("STRING %q", s) }),
		parsec.Map(lx.CharLiteral, func(r rune) string { return fmt.Sprintf("CHAR %q", string(r)) }),
		parsec.Try(parsec.Map(lx.Float, func(v float64) string { return fmt.Sprintf("NUMBER %v", v) })),
		parsec.Map(lx.Decimal, func(v uint64) string { return fmt.Sprintf("NUMBER %d", v) }),
		parsec.Map(lx.Identifier, func(s string) string { return "IDENT " + s }),
		parsec.Map(lx.Operator, func(s string) string { return "OP " + s }),
		parsec.Map(lx.Semicolon, func(string) string { return "PUNCT ;" }),
		parsec.Map(lx.Comma, func(string) string { return "PUNCT ," }),
		parsec.Map(lx.Colon, func(string) string { return "PUNCT :" }),
		parsec.Map(lx.Dot, func(string) string { return "PUNCT ." }),
		parsec.Map(lexer.Symbol(lx, "("), func(string) string { return "PUNCT (" }),
		parsec.Map(lexer.Symbol(lx, ")"), func(string) string { return "PUNCT )" }),
		parsec.Map(lexer.Symbol(lx, "{"), func(string) string { return "PUNCT {" }),
		parsec.Map(lexer.Symbol(lx, "}"), func(string) string { return "PUNCT }" }),
		parsec.Map(lexer.Symbol(lx, "["), func(string) string { return "PUNCT [" }),
		parsec.Map(lexer.Symbol(lx, "]"), func(string) string { return "PUNCT ]" }),
	)
	return parsec.Choice(alts...)
}

func runTokenize(lx *lexer.Lexer[lexer.NoState], def lexer.LanguageDef[lexer.NoState], src *source.File) ([]string, error) {
	tok := tokenParser(lx, def)
	full := parsec.Before(
		parsec.Then(lx.WhiteSpace, parsec.Many(tok)),
		parsec.Eof[lexer.NoState](),
	)
	return parsec.Run[lexer.NoState, []string](full, src.Name, lexer.NoState{}, src.Stream())
}
