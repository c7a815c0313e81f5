package parsec

import "parsec/pkg/errors"

// Alt is Parsec's "<|>": run p, and only try q if p failed without
// consuming input (an EErr). Any consumed outcome of p — success or
// failure — commits to p's branch; this is the predictive-parsing
// invariant the whole engine exists to provide (spec §3, "commit").
func Alt[U, A any](p, q Parser[U, A]) Parser[U, A] {
	return func(s State[U]) Reply[U, A] {
		r1 := p(s)
		if r1.Consumed || r1.Ok {
			return r1
		}
		r2 := q(s)
		r2.Err = errors.Merge(r1.Err, r2.Err)
		return r2
	}
}

// Choice tries each parser in order, left to right, same as folding Alt
// over the list with a parser that always fails empty as the seed.
func Choice[U, A any](ps ...Parser[U, A]) Parser[U, A] {
	if len(ps) == 0 {
		return Fail[U, A]("")
	}
	p := ps[0]
	for _, q := range ps[1:] {
		p = Alt(p, q)
	}
	return p
}

// Try runs p, and if it fails after consuming input, rewinds to the state
// before p and reports the failure as unconsumed (EErr) instead — the only
// source of unbounded backtracking in the engine. The failure's position is
// left untouched, so merge's "further position wins" rule still favors the
// deepest failure reached even though the stream itself rewound.
func Try[U, A any](p Parser[U, A]) Parser[U, A] {
	return func(s State[U]) Reply[U, A] {
		r := p(s)
		if !r.Ok && r.Consumed {
			return eerr[U, A](s, r.Err)
		}
		return r
	}
}

// LookAhead runs p; on success it restores the state from before p ran and
// reports an unconsumed success, so the input is left exactly as it was
// whether or not p matched. On failure the outcome passes through
// unchanged — callers who also want to rewind on failure wrap with Try.
func LookAhead[U, A any](p Parser[U, A]) Parser[U, A] {
	return func(s State[U]) Reply[U, A] {
		r := p(s)
		if r.Ok {
			return eok[U, A](r.Value, s, errors.Unknown(s.Pos))
		}
		return r
	}
}

// Label replaces the Expected messages of p's empty outcomes (EOk or EErr)
// with the single name given; consumed outcomes are left alone, since once
// input has been consumed the low-level expectation is more informative
// than the caller's high-level label (spec §4.4).
func Label[U, A any](p Parser[U, A], name string) Parser[U, A] {
	return func(s State[U]) Reply[U, A] {
		r := p(s)
		if r.Consumed {
			return r
		}
		r.Err = errors.Relabel(r.Err, name)
		return r
	}
}

// Hidden is Label(p, "") — it removes Expected messages from p's empty
// outcomes entirely rather than replacing them.
func Hidden[U, A any](p Parser[U, A]) Parser[U, A] {
	return Label(p, "")
}

// NotFollowedBy succeeds, without consuming input, only if p would not
// currently match; on a match it fails reporting the matched value as
// unexpected. show renders a matched value for that message. p always runs
// under an implicit Try so a consuming match still leaves the stream
// untouched either way.
func NotFollowedBy[U, A any](p Parser[U, A], show func(A) string) Parser[U, Unit] {
	return func(s State[U]) Reply[U, Unit] {
		r := Try(p)(s)
		if r.Ok {
			err := errors.NewMessage(s.Pos, errors.Msg{Kind: errors.Unexpected, Text: show(r.Value)})
			return eerr[U, Unit](s, err)
		}
		return eok[U, Unit](Unit{}, s, errors.Unknown(s.Pos))
	}
}
