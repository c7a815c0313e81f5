// Package parsec is the primitive parser engine: the Parser value, its
// four-outcome (consumed/empty × ok/error) dispatch, sequencing and
// alternation, and the character-level and generic combinators built on top
// of it. It is the systems-language heart of the Parsec-lineage library this
// module implements; see SPEC_FULL.md §4.4–§4.6.
package parsec

import (
	"parsec/pkg/errors"
	"parsec/pkg/position"
	"parsec/pkg/stream"
)

// Unit stands in for "no interesting value", the way Parsec's () does.
type Unit struct{}

// State is the quadruple a parser threads through a run: the remaining
// input, the current position, a caller-chosen user value threaded
// unchanged except by GetState/PutState/ModifyState, and the tab stop width
// used to advance columns across '\t'.
type State[U any] struct {
	Input    stream.RuneStream
	Pos      position.Position
	User     U
	TabWidth int
}

// advance returns the state after consuming tok, with Pos moved by the
// engine's default rune-advance rule.
func (s State[U]) advance(tok stream.Rune, rest stream.RuneStream) State[U] {
	return State[U]{
		Input:    rest,
		Pos:      position.Advance(s.Pos, tok.Ch, s.TabWidth),
		User:     s.User,
		TabWidth: s.TabWidth,
	}
}

// Result is the value half of a Reply: either a value plus the state after
// it, or nothing (on failure, State below is always the state the run
// started at — outcomes never carry a partially-advanced state on error).
// Err is always present: on success it is a possibly-"unknown" hidden error
// accumulator that alt and bind may still merge into a later failure; on
// failure it is the failure itself.
type Result[U, A any] struct {
	Ok    bool
	Value A
	State State[U]
	Err   *errors.ParseError
}

// Reply is a primitive parser's full outcome: a Result plus whether any
// input was consumed reaching it. The four cells of spec §3 (CO/CE/EO/EE)
// are exactly the four (Consumed, Ok) combinations.
type Reply[U, A any] struct {
	Consumed bool
	Result[U, A]
}

// Parser is a value that, given a State, produces a Reply. Parsers are pure
// and reusable; running one never mutates the State passed in.
type Parser[U, A any] func(State[U]) Reply[U, A]

func cok[U, A any](v A, s State[U], err *errors.ParseError) Reply[U, A] {
	return Reply[U, A]{Consumed: true, Result: Result[U, A]{Ok: true, Value: v, State: s, Err: err}}
}

func cerr[U, A any](s State[U], err *errors.ParseError) Reply[U, A] {
	return Reply[U, A]{Consumed: true, Result: Result[U, A]{Ok: false, State: s, Err: err}}
}

func eok[U, A any](v A, s State[U], err *errors.ParseError) Reply[U, A] {
	return Reply[U, A]{Consumed: false, Result: Result[U, A]{Ok: true, Value: v, State: s, Err: err}}
}

func eerr[U, A any](s State[U], err *errors.ParseError) Reply[U, A] {
	return Reply[U, A]{Consumed: false, Result: Result[U, A]{Ok: false, State: s, Err: err}}
}
