package lexer

import (
	"testing"

	"parsec/pkg/parsec"
	"parsec/pkg/stream"
)

func runString[A any](t *testing.T, p parsec.Parser[NoState, A], input string) (A, error) {
	t.Helper()
	return parsec.Run[NoState, A](p, "test", NoState{}, stream.FromString(input))
}

func TestIdentifierAcceptsAndRejectsReserved(t *testing.T) {
	lx := NewLexer(TypeScriptSubsetLanguageDef())

	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"five", "five", false},
		{"let", "", true},
		{"letx", "letx", false},
		{"_private9", "_private9", false},
		{"spaced  ", "spaced", false},
	}
	for _, tc := range tests {
		got, err := runString(t, lx.Identifier, tc.input)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Identifier(%q): expected error, got %q", tc.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Identifier(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Identifier(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestReservedRequiresWordBoundary(t *testing.T) {
	lx := NewLexer(TypeScriptSubsetLanguageDef())

	if _, err := runString(t, lx.Reserved("let"), "let x"); err != nil {
		t.Errorf("Reserved(\"let\") on %q: unexpected error: %v", "let x", err)
	}
	if _, err := runString(t, lx.Reserved("let"), "letx"); err == nil {
		t.Errorf("Reserved(\"let\") on %q: expected error, got none", "letx")
	}
}

func TestOperatorAndReservedOp(t *testing.T) {
	lx := NewLexer(TypeScriptSubsetLanguageDef())

	// "&" is a valid operator-character sequence but not itself one of
	// ReservedOpNames, so Operator should accept it.
	got, err := runString(t, lx.Operator, "& 1")
	if err != nil || got != "&" {
		t.Fatalf("Operator(%q) = %q, %v; want \"&\", nil", "& 1", got, err)
	}
	// "==" IS reserved, so Operator (which excludes reserved operators,
	// mirroring Identifier excluding reserved words) must reject it.
	if _, err := runString(t, lx.Operator, "=="); err == nil {
		t.Errorf("Operator on %q: expected error (operator is reserved), got none", "==")
	}
	if _, err := runString(t, lx.ReservedOp("=="), "==="); err == nil {
		t.Errorf("ReservedOp(\"==\") on %q: expected error (greedy operator read is \"===\"), got none", "===")
	}
	if _, err := runString(t, lx.ReservedOp("=="), "== "); err != nil {
		t.Errorf("ReservedOp(\"==\") on %q: unexpected error: %v", "== ", err)
	}
}

func TestCharLiteralEscapes(t *testing.T) {
	tests := []struct {
		input string
		want  rune
	}{
		{`'a'`, 'a'},
		{`'\n'`, '\n'},
		{`'\t'`, '\t'},
		{`'\65'`, 'A'},
		{`'\x41'`, 'A'},
		{`'\o101'`, 'A'},
		{`'\SOH'`, 1},
		{`'\^A'`, 1},
	}
	lx := NewLexer(CLikeLanguageDef())
	for _, tc := range tests {
		got, err := runString(t, lx.CharLiteral, tc.input)
		if err != nil {
			t.Errorf("CharLiteral(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("CharLiteral(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestStringLiteralEscapesAndGaps(t *testing.T) {
	lx := NewLexer(CLikeLanguageDef())

	tests := []struct {
		input string
		want  string
	}{
		{`"foo bar"`, "foo bar"},
		{"\"a\\&b\"", "ab"},
		{"\"a\\   \\b\"", "ab"},
		{`"tab\there"`, "tab\there"},
	}
	for _, tc := range tests {
		got, err := runString(t, lx.StringLiteral, tc.input)
		if err != nil {
			t.Errorf("StringLiteral(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("StringLiteral(%q) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	lx := NewLexer(CLikeLanguageDef())

	if got, err := runString(t, lx.Decimal, "12345"); err != nil || got != 12345 {
		t.Errorf("Decimal(%q) = %v, %v; want 12345, nil", "12345", got, err)
	}
	if got, err := runString(t, lx.Hexadecimal, "0xFF"); err != nil || got != 255 {
		t.Errorf("Hexadecimal(%q) = %v, %v; want 255, nil", "0xFF", got, err)
	}
	if got, err := runString(t, lx.Octal, "0o17"); err != nil || got != 15 {
		t.Errorf("Octal(%q) = %v, %v; want 15, nil", "0o17", got, err)
	}
	if got, err := runString(t, lx.Float, "3.14"); err != nil || got != 3.14 {
		t.Errorf("Float(%q) = %v, %v; want 3.14, nil", "3.14", got, err)
	}
	if got, err := runString(t, lx.Float, "2e10"); err != nil || got != 2e10 {
		t.Errorf("Float(%q) = %v, %v; want 2e10, nil", "2e10", got, err)
	}
	if got, err := runString(t, lx.Number, "42"); err != nil || got != 42 {
		t.Errorf("Number(%q) = %v, %v; want 42, nil", "42", got, err)
	}
	if got, err := runString(t, lx.Number, "42.5"); err != nil || got != 42.5 {
		t.Errorf("Number(%q) = %v, %v; want 42.5, nil", "42.5", got, err)
	}
	if got, err := runString(t, lx.IntegerSigned, "-7"); err != nil || got != -7 {
		t.Errorf("IntegerSigned(%q) = %v, %v; want -7, nil", "-7", got, err)
	}
	if got, err := runString(t, lx.NumberSigned, "-7"); err != nil || got != -7 {
		t.Errorf("NumberSigned(%q) = %v, %v; want -7.0, nil", "-7", got, err)
	}
}

func TestWhiteSpaceSkipsLineAndNestedBlockComments(t *testing.T) {
	lx := NewLexer(CLikeLanguageDef())
	input := "  // a line comment\n/* outer /* inner */ still outer */  int"
	got, err := runString(t, parsec.Then(lx.WhiteSpace, lx.Reserved("int")), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_ = got
}

func TestUnterminatedBlockCommentFails(t *testing.T) {
	lx := NewLexer(CLikeLanguageDef())
	if _, err := runString(t, lx.WhiteSpace, "/* never closed"); err == nil {
		t.Errorf("expected an error for an unterminated block comment, got none")
	}
}

func TestBracketsAndSeparators(t *testing.T) {
	lx := NewLexer(CLikeLanguageDef())
	p := Parens(lx, CommaSep(lx, lx.Decimal))
	got, err := runString(t, p, "(1, 2, 3)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []uint64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got %v, want %v", got, want)
			break
		}
	}
}
