package parsec

import (
	"parsec/pkg/errors"
	"parsec/pkg/position"
	"parsec/pkg/stream"
)

// NextPos is how a primitive advances position after consuming one token;
// the default (used everywhere in this module) is position.Advance keyed
// off the token's rune, but a caller parsing a non-character token stream
// could supply something else (spec §9, "token type should itself be a
// generic parameter").
type NextPos func(pos position.Position, tok stream.Rune, tabWidth int) position.Position

// DefaultNextPos advances position the normal way: newline/tab/other per
// position.Advance.
func DefaultNextPos(pos position.Position, tok stream.Rune, tabWidth int) position.Position {
	return position.Advance(pos, tok.Ch, tabWidth)
}

// TokenPrim is the engine's one atomic consumer: peek a token, and either
// accept it (advancing state, Consumed-Ok) or reject it (Empty-Error,
// state unchanged). Every other consuming primitive in this module —
// Satisfy, Char, OneOf, digit classes, and so on — is built from TokenPrim.
func TokenPrim[U, A any](show func(stream.Rune) string, nextPos NextPos, match func(stream.Rune) (A, bool)) Parser[U, A] {
	return func(s State[U]) Reply[U, A] {
		tok, rest, ok := s.Input.Uncons()
		if !ok {
			err := errors.NewMessage(s.Pos, errors.Msg{Kind: errors.Unexpected, Text: "end of input"})
			return eerr[U, A](s, err)
		}
		v, matched := match(tok)
		if !matched {
			err := errors.NewMessage(s.Pos, errors.Msg{Kind: errors.Unexpected, Text: show(tok)})
			return eerr[U, A](s, err)
		}
		newPos := nextPos(s.Pos, tok, s.TabWidth)
		next := State[U]{Input: rest, Pos: newPos, User: s.User, TabWidth: s.TabWidth}
		return cok[U, A](v, next, errors.Unknown(newPos))
	}
}

// Tokens matches a fixed sequence of runes exactly, token by token (this is
// what String is built from). A mismatch at index 0 is an Empty-Error; a
// mismatch after at least one token matched is a Consumed-Error, since
// input was already consumed (spec §4.4).
func Tokens[U any](show func(stream.Rune) string, nextPos NextPos, expected []stream.Rune) Parser[U, string] {
	expectedText := showRunes(expected)
	return func(s State[U]) Reply[U, string] {
		cur := s.Input
		pos := s.Pos
		for i, want := range expected {
			tok, rest, ok := cur.Uncons()
			if !ok || tok.Ch != want.Ch {
				unexpectedText := "end of input"
				if ok {
					unexpectedText = show(tok)
				}
				err := errors.AddMessage(
					errors.NewMessage(pos, errors.Msg{Kind: errors.Unexpected, Text: unexpectedText}),
					errors.Msg{Kind: errors.Expected, Text: expectedText},
				)
				if i == 0 {
					return eerr[U, string](s, err)
				}
				return cerr[U, string](s, err)
			}
			pos = nextPos(pos, tok, s.TabWidth)
			cur = rest
		}
		next := State[U]{Input: cur, Pos: pos, User: s.User, TabWidth: s.TabWidth}
		if len(expected) == 0 {
			return eok[U, string](expectedText, next, errors.Unknown(pos))
		}
		return cok[U, string](expectedText, next, errors.Unknown(pos))
	}
}

func showRunes(rs []stream.Rune) string {
	buf := make([]rune, len(rs))
	for i, r := range rs {
		buf[i] = r.Ch
	}
	return string(buf)
}

// Eof succeeds without consuming input when no tokens remain, and fails
// otherwise, reporting the token it saw and "end of input" as what it
// expected.
func Eof[U any]() Parser[U, Unit] {
	return func(s State[U]) Reply[U, Unit] {
		tok, _, ok := s.Input.Uncons()
		if !ok {
			return eok[U, Unit](Unit{}, s, errors.Unknown(s.Pos))
		}
		err := errors.AddMessage(
			errors.NewMessage(s.Pos, errors.Msg{Kind: errors.Unexpected, Text: string(tok.Ch)}),
			errors.Msg{Kind: errors.Expected, Text: "end of input"},
		)
		return eerr[U, Unit](s, err)
	}
}
