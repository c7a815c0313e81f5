package parsec

import (
	"parsec/pkg/errors"
	"parsec/pkg/position"
	"parsec/pkg/stream"
)

// Return succeeds with x without consuming input.
func Return[U, A any](x A) Parser[U, A] {
	return func(s State[U]) Reply[U, A] {
		return eok[U, A](x, s, errors.Unknown(s.Pos))
	}
}

// Fail fails with a free-form Message, without consuming input.
func Fail[U, A any](msg string) Parser[U, A] {
	return func(s State[U]) Reply[U, A] {
		err := errors.NewMessage(s.Pos, errors.Msg{Kind: errors.Message, Text: msg})
		return eerr[U, A](s, err)
	}
}

// Unexpected fails, without consuming input, reporting text as what was
// unexpectedly seen — the primitive a caller reaches for when a later
// check rejects an already-parsed value (a reserved word where an
// identifier was wanted, an out-of-range literal, and so on).
func Unexpected[U, A any](text string) Parser[U, A] {
	return func(s State[U]) Reply[U, A] {
		err := errors.NewMessage(s.Pos, errors.Msg{Kind: errors.Unexpected, Text: text})
		return eerr[U, A](s, err)
	}
}

// Lazy defers calling thunk until the returned parser actually runs,
// letting two parsers refer to each other (a recursive grammar rule) by
// closing over a var that is only assigned after both are constructed.
func Lazy[U, A any](thunk func() Parser[U, A]) Parser[U, A] {
	return func(s State[U]) Reply[U, A] {
		return thunk()(s)
	}
}

// Bind sequences p then f(x) where x is p's result, implementing the
// consumed-propagation and error-merging discipline of spec §4.4: the
// result is consumed if either p or f(x) consumed, and p's carried error is
// always merged into f(x)'s — on success as a hidden accumulator available
// to a later alt, on failure as the final reported error.
func Bind[U, A, B any](p Parser[U, A], f func(A) Parser[U, B]) Parser[U, B] {
	return func(s State[U]) Reply[U, B] {
		r1 := p(s)
		if !r1.Ok {
			return Reply[U, B]{Consumed: r1.Consumed, Result: Result[U, B]{Ok: false, State: s, Err: r1.Err}}
		}
		r2 := f(r1.Value)(r1.State)
		merged := errors.Merge(r1.Err, r2.Err)
		consumed := r1.Consumed || r2.Consumed
		if r2.Ok {
			return Reply[U, B]{Consumed: consumed, Result: Result[U, B]{Ok: true, Value: r2.Value, State: r2.State, Err: merged}}
		}
		return Reply[U, B]{Consumed: consumed, Result: Result[U, B]{Ok: false, State: s, Err: merged}}
	}
}

// Then runs p then q, discarding p's value (Parsec's "*>").
func Then[U, A, B any](p Parser[U, A], q Parser[U, B]) Parser[U, B] {
	return Bind(p, func(A) Parser[U, B] { return q })
}

// Before runs p then q, discarding q's value (Parsec's "<*").
func Before[U, A, B any](p Parser[U, A], q Parser[U, B]) Parser[U, A] {
	return Bind(p, func(x A) Parser[U, A] {
		return Bind(q, func(B) Parser[U, A] { return Return[U, A](x) })
	})
}

// Map transforms a successful value, without affecting consumed/error
// bookkeeping (Parsec's fmap).
func Map[U, A, B any](p Parser[U, A], f func(A) B) Parser[U, B] {
	return Bind(p, func(x A) Parser[U, B] { return Return[U, B](f(x)) })
}

// Run executes parser over input, starting at line 1 column 1 of a source
// named sourceName, threading userState through GetState/PutState/
// ModifyState. It returns the parsed value, or the ParseError from wherever
// parsing finally failed.
func Run[U, A any](parser Parser[U, A], sourceName string, userState U, input stream.RuneStream) (A, error) {
	s := State[U]{
		Input:    input,
		Pos:      position.New(sourceName),
		User:     userState,
		TabWidth: position.DefaultTabWidth,
	}
	r := parser(s)
	if r.Ok {
		return r.Value, nil
	}
	var zero A
	return zero, r.Err
}

// GetState returns the current user state without consuming input.
func GetState[U any]() Parser[U, U] {
	return func(s State[U]) Reply[U, U] {
		return eok[U, U](s.User, s, errors.Unknown(s.Pos))
	}
}

// PutState replaces the user state.
func PutState[U any](u U) Parser[U, Unit] {
	return func(s State[U]) Reply[U, Unit] {
		next := s
		next.User = u
		return eok[U, Unit](Unit{}, next, errors.Unknown(s.Pos))
	}
}

// ModifyState replaces the user state with f applied to the current one.
func ModifyState[U any](f func(U) U) Parser[U, Unit] {
	return func(s State[U]) Reply[U, Unit] {
		next := s
		next.User = f(s.User)
		return eok[U, Unit](Unit{}, next, errors.Unknown(s.Pos))
	}
}

// GetPosition returns the current position without consuming input.
func GetPosition[U any]() Parser[U, position.Position] {
	return func(s State[U]) Reply[U, position.Position] {
		return eok[U, position.Position](s.Pos, s, errors.Unknown(s.Pos))
	}
}

// SetPosition overrides the current position (e.g. to synthesize a span for
// an error raised after the fact).
func SetPosition[U any](pos position.Position) Parser[U, Unit] {
	return func(s State[U]) Reply[U, Unit] {
		next := s
		next.Pos = pos
		return eok[U, Unit](Unit{}, next, errors.Unknown(pos))
	}
}

// GetInput returns the remaining input stream.
func GetInput[U any]() Parser[U, stream.RuneStream] {
	return func(s State[U]) Reply[U, stream.RuneStream] {
		return eok[U, stream.RuneStream](s.Input, s, errors.Unknown(s.Pos))
	}
}

// SetInput overrides the remaining input stream, e.g. to resume from a
// position captured earlier via GetInput.
func SetInput[U any](in stream.RuneStream) Parser[U, Unit] {
	return func(s State[U]) Reply[U, Unit] {
		next := s
		next.Input = in
		return eok[U, Unit](Unit{}, next, errors.Unknown(s.Pos))
	}
}
