package parsec

import "testing"

// A minimal left-recursion-free arithmetic grammar (sums of products of
// integers, parenthesized sub-expressions) exercises the combinators
// together the way a real grammar would: Bind chains, Alt commit, Many,
// and Between all composing without fighting each other.

func number() Parser[noState, int] {
	return Map(Some(DigitChar[noState]()), func(ds []rune) int {
		n := 0
		for _, d := range ds {
			n = n*10 + int(d-'0')
		}
		return n
	})
}

func spaces() Parser[noState, Unit] {
	return SkipMany(Char[noState](' '))
}

func lexeme[A any](p Parser[noState, A]) Parser[noState, A] {
	return Before(p, spaces())
}

func factor() Parser[noState, int] {
	return Lazy(func() Parser[noState, int] {
		return Alt(
			lexeme(number()),
			Between(lexeme(Char[noState]('(')), lexeme(Char[noState](')')), expr()),
		)
	})
}

func term() Parser[noState, int] {
	return Bind(factor(), func(first int) Parser[noState, int] {
		return Bind(Many(Then(lexeme(Char[noState]('*')), factor())), func(rest []int) Parser[noState, int] {
			acc := first
			for _, f := range rest {
				acc *= f
			}
			return Return[noState, int](acc)
		})
	})
}

func expr() Parser[noState, int] {
	return Bind(term(), func(first int) Parser[noState, int] {
		return Bind(Many(Then(lexeme(Char[noState]('+')), term())), func(rest []int) Parser[noState, int] {
			acc := first
			for _, t := range rest {
				acc += t
			}
			return Return[noState, int](acc)
		})
	})
}

func TestArithmeticExpressionGrammar(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"2 + 3", 5},
		{"2 * 3 + 4", 10},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"((1 + 1) * (1 + 2)) + 1", 7},
	}
	p := Before(Then(spaces(), expr()), Eof[noState]())
	for _, tc := range tests {
		got, err := run(t, p, tc.input)
		if err != nil {
			t.Errorf("expr(%q): unexpected error: %v", tc.input, err)
			continue
		}
		if got != tc.want {
			t.Errorf("expr(%q) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

func TestArithmeticExpressionReportsFailurePosition(t *testing.T) {
	p := Before(Then(spaces(), expr()), Eof[noState]())
	_, err := run(t, p, "2 + ")
	if err == nil {
		t.Fatalf("expected a failure for a dangling '+'")
	}
}

// TestErrorPositionIsMonotonicUnderBacktracking checks spec's invariant
// that merge always keeps the deepest failure reached, even across a
// branch that ultimately backtracks all the way out via Try.
func TestErrorPositionIsMonotonicUnderBacktracking(t *testing.T) {
	deepBranch := Try(Then(Char[noState]('a'), Then(Char[noState]('b'), Char[noState]('c'))))
	shallowBranch := Char[noState]('x')
	p := Alt(deepBranch, shallowBranch)

	_, err := run(t, p, "aqz")
	if err == nil {
		t.Fatalf("expected failure")
	}
	if !containsSubstring(err.Error(), "test:1:2:") {
		t.Errorf("error = %v, want it to report the deeper position test:1:2 reached inside the backtracked branch", err)
	}
}

func TestManyTerminationOnLabelledChoice(t *testing.T) {
	word := Label(Some(LetterChar[noState]()), "word")
	p := SepBy(word, Char[noState](' '))
	got, err := run(t, p, "the quick brown fox")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"the", "quick", "brown", "fox"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i, w := range want {
		if string(got[i]) != w {
			t.Errorf("got[%d] = %q, want %q", i, string(got[i]), w)
		}
	}
}
