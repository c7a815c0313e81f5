package parsec

import "testing"

func TestSatisfyAndChar(t *testing.T) {
	if got, err := run(t, Char[noState]('a'), "a"); err != nil || got != 'a' {
		t.Fatalf("Char('a') on \"a\" = %v, %v; want 'a', nil", got, err)
	}
	if _, err := run(t, Char[noState]('a'), "b"); err == nil {
		t.Fatalf("Char('a') on \"b\" should fail")
	}
}

func TestOneOfNoneOf(t *testing.T) {
	if _, err := run(t, OneOf[noState]("abc"), "b"); err != nil {
		t.Fatalf("OneOf(\"abc\") on \"b\" should succeed: %v", err)
	}
	if _, err := run(t, OneOf[noState]("abc"), "z"); err == nil {
		t.Fatalf("OneOf(\"abc\") on \"z\" should fail")
	}
	if _, err := run(t, NoneOf[noState]("abc"), "z"); err != nil {
		t.Fatalf("NoneOf(\"abc\") on \"z\" should succeed: %v", err)
	}
	if _, err := run(t, NoneOf[noState]("abc"), "a"); err == nil {
		t.Fatalf("NoneOf(\"abc\") on \"a\" should fail")
	}
}

func TestAnyCharFailsOnlyAtEOF(t *testing.T) {
	if _, err := run(t, AnyChar[noState](), "x"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := run(t, AnyChar[noState](), ""); err == nil {
		t.Fatalf("AnyChar at end of input should fail")
	}
}

func TestStringCommitsAfterFirstRune(t *testing.T) {
	got, err := run(t, String[noState]("foo"), "foo")
	if err != nil || got != "foo" {
		t.Fatalf("String(\"foo\") on \"foo\" = %q, %v; want \"foo\", nil", got, err)
	}
	if _, err := run(t, String[noState]("foo"), "bar"); err == nil {
		t.Fatalf("String(\"foo\") on \"bar\" should fail")
	}
	// "fob" matches String("foo")'s first rune before failing, so the
	// failure is consumed and Alt must not fall through to "fob".
	if _, err := run(t, Alt(String[noState]("foo"), String[noState]("fob")), "fob"); err == nil {
		t.Fatalf("Alt(String(\"foo\"), String(\"fob\")) on \"fob\" should fail: String commits after its first rune")
	}
}

func TestEolMatchesBothLineEndings(t *testing.T) {
	for _, in := range []string{"\n", "\r\n"} {
		if got, err := run(t, Eol[noState](), in); err != nil || got != in {
			t.Errorf("Eol() on %q = %q, %v; want %q, nil", in, got, err, in)
		}
	}
}

func TestDigitAndHexAndOctClasses(t *testing.T) {
	if _, err := run(t, DigitChar[noState](), "7"); err != nil {
		t.Errorf("DigitChar on \"7\": %v", err)
	}
	if _, err := run(t, DigitChar[noState](), "a"); err == nil {
		t.Errorf("DigitChar on \"a\" should fail")
	}
	if _, err := run(t, HexDigitChar[noState](), "f"); err != nil {
		t.Errorf("HexDigitChar on \"f\": %v", err)
	}
	if _, err := run(t, HexDigitChar[noState](), "g"); err == nil {
		t.Errorf("HexDigitChar on \"g\" should fail")
	}
	if _, err := run(t, OctDigitChar[noState](), "7"); err != nil {
		t.Errorf("OctDigitChar on \"7\": %v", err)
	}
	if _, err := run(t, OctDigitChar[noState](), "8"); err == nil {
		t.Errorf("OctDigitChar on \"8\" should fail")
	}
}

func TestLetterAlphaNumUpperLowerSpace(t *testing.T) {
	if _, err := run(t, LetterChar[noState](), "Q"); err != nil {
		t.Errorf("LetterChar on \"Q\": %v", err)
	}
	if _, err := run(t, AlphaNumChar[noState](), "9"); err != nil {
		t.Errorf("AlphaNumChar on \"9\": %v", err)
	}
	if _, err := run(t, AlphaNumChar[noState](), "!"); err == nil {
		t.Errorf("AlphaNumChar on \"!\" should fail")
	}
	if _, err := run(t, UpperChar[noState](), "A"); err != nil {
		t.Errorf("UpperChar on \"A\": %v", err)
	}
	if _, err := run(t, UpperChar[noState](), "a"); err == nil {
		t.Errorf("UpperChar on \"a\" should fail")
	}
	if _, err := run(t, LowerChar[noState](), "a"); err != nil {
		t.Errorf("LowerChar on \"a\": %v", err)
	}
	if _, err := run(t, SpaceChar[noState](), " "); err != nil {
		t.Errorf("SpaceChar on \" \": %v", err)
	}
}
