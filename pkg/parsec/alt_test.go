package parsec

import (
	"strings"
	"testing"
)

func TestAltTriesSecondOnlyOnEmptyFailure(t *testing.T) {
	p := Alt(Char[noState]('a'), Char[noState]('b'))
	if got, err := run(t, p, "b"); err != nil || got != 'b' {
		t.Fatalf("Alt(a,b) on \"b\" = %v, %v; want 'b', nil", got, err)
	}
}

func TestAltCommitsAfterFirstConsumes(t *testing.T) {
	// String("ab") consumes 'a' before failing on the second char, so Alt
	// must NOT fall through to the second branch even though it would
	// otherwise match.
	p := Alt(String[noState]("ab"), String[noState]("ac"))
	if _, err := run(t, p, "ac"); err == nil {
		t.Fatalf("expected a Consumed-Error to commit the whole Alt, got success")
	}
}

func TestTryUndoesConsumptionOnFailure(t *testing.T) {
	p := Alt(Try(String[noState]("ab")), String[noState]("ac"))
	got, err := run(t, p, "ac")
	if err != nil || got != "ac" {
		t.Fatalf("Alt(Try(ab), ac) on \"ac\" = %q, %v; want \"ac\", nil", got, err)
	}
}

func TestTryPassesThroughSuccess(t *testing.T) {
	got, err := run(t, Try(String[noState]("ab")), "ab")
	if err != nil || got != "ab" {
		t.Fatalf("got %q, %v; want \"ab\", nil", got, err)
	}
}

func TestChoiceTriesInOrder(t *testing.T) {
	p := Choice(Char[noState]('a'), Char[noState]('b'), Char[noState]('c'))
	for _, in := range []string{"a", "b", "c"} {
		if got, err := run(t, p, in); err != nil || string(got) != in {
			t.Errorf("Choice(...) on %q = %q, %v; want %q, nil", in, string(got), err, in)
		}
	}
	if _, err := run(t, p, "d"); err == nil {
		t.Errorf("Choice(...) on \"d\" should fail")
	}
}

func TestLookAheadDoesNotConsume(t *testing.T) {
	p := Then(LookAhead(String[noState]("ab")), String[noState]("ab"))
	got, err := run(t, p, "ab")
	if err != nil || got != "ab" {
		t.Fatalf("got %q, %v; want \"ab\", nil", got, err)
	}
}

func TestLookAheadFailurePassesThroughConsumed(t *testing.T) {
	_, err := run(t, LookAhead(String[noState]("ab")), "ac")
	if err == nil {
		t.Fatalf("expected failure")
	}
}

func TestLabelReplacesExpectedOnEmptyFailure(t *testing.T) {
	_, err := run(t, Label(Char[noState]('a'), "the letter a"), "b")
	if err == nil || !containsSubstring(err.Error(), "expecting the letter a") {
		t.Fatalf("error = %v, want it to mention \"expecting the letter a\"", err)
	}
}

func TestLabelLeavesConsumedFailureAlone(t *testing.T) {
	_, err := run(t, Label(String[noState]("ab"), "ab-token"), "ac")
	if err == nil || containsSubstring(err.Error(), "ab-token") {
		t.Fatalf("error = %v, a consumed failure should not be relabeled", err)
	}
}

func TestHiddenRemovesExpectedEntirely(t *testing.T) {
	_, err := run(t, Hidden(Char[noState]('a')), "b")
	if err == nil || containsSubstring(err.Error(), "expecting") {
		t.Fatalf("error = %v, Hidden should leave no expecting clause", err)
	}
}

func TestNotFollowedBySucceedsWhenPFails(t *testing.T) {
	p := Then(String[noState]("let"), NotFollowedBy(Char[noState]('x'), showChar))
	if _, err := run(t, p, "lety"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNotFollowedByFailsWhenPSucceeds(t *testing.T) {
	p := Then(String[noState]("let"), NotFollowedBy(Char[noState]('x'), showChar))
	if _, err := run(t, p, "letx"); err == nil {
		t.Fatalf("expected failure when the forbidden parser matches")
	}
}

func containsSubstring(s, sub string) bool {
	return strings.Contains(s, sub)
}
