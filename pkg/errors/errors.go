// Package errors implements Parsec-style parse errors: a position plus a
// merge-able set of Unexpected/Expected/Message entries, rendered the way
// Parsec renders them ("unexpected X\nexpecting A, B or C\n...").
//
// This package's name deliberately shadows the standard library's errors
// package, following the teacher repo's own pkg/errors convention; callers
// that also need stdlib errors.Is/As import it under an alias.
package errors

import (
	"sort"
	"strings"

	"parsec/pkg/position"
)

// Kind classifies a single error Msg.
type Kind int

const (
	// Unexpected describes what the parser actually saw.
	Unexpected Kind = iota
	// Expected describes what the parser wanted.
	Expected
	// Message is a free-form message installed via a parser's Fail.
	Message
)

// Msg is a single tagged error message.
type Msg struct {
	Kind Kind
	Text string
}

// orderedSet is a small insertion-ordered string set. Good enough for the
// handful of expectations a single parse error ever accumulates, and it
// keeps Render deterministic without a separate sort-then-dedup pass on
// every merge.
type orderedSet struct {
	order []string
	seen  map[string]struct{}
}

func (s *orderedSet) add(text string) *orderedSet {
	out := &orderedSet{seen: make(map[string]struct{}, len(s.items())+1)}
	for _, t := range s.items() {
		out.seen[t] = struct{}{}
		out.order = append(out.order, t)
	}
	if _, ok := out.seen[text]; !ok {
		out.seen[text] = struct{}{}
		out.order = append(out.order, text)
	}
	return out
}

func (s *orderedSet) union(other *orderedSet) *orderedSet {
	out := &orderedSet{seen: make(map[string]struct{})}
	for _, t := range s.items() {
		if _, ok := out.seen[t]; !ok {
			out.seen[t] = struct{}{}
			out.order = append(out.order, t)
		}
	}
	for _, t := range other.items() {
		if _, ok := out.seen[t]; !ok {
			out.seen[t] = struct{}{}
			out.order = append(out.order, t)
		}
	}
	return out
}

func (s *orderedSet) items() []string {
	if s == nil {
		return nil
	}
	return s.order
}

// ParseError is a position plus a merge-able set of messages: one optional
// Unexpected entry (last write wins) and accumulating sets of Expected and
// Message entries. ParseError values are immutable; every operation below
// returns a new value.
type ParseError struct {
	pos        position.Position
	unexpected *string
	expected   *orderedSet
	messages   *orderedSet
}

// Unknown returns an error at pos carrying no messages at all; Render will
// produce "unknown parse error" for it.
func Unknown(pos position.Position) *ParseError {
	return &ParseError{pos: pos}
}

// NewMessage returns an error at pos carrying exactly one message.
func NewMessage(pos position.Position, m Msg) *ParseError {
	return AddMessage(Unknown(pos), m)
}

// AddMessage returns err with m folded in per the merge discipline of spec
// §3: Unexpected replaces any prior Unexpected, Expected and Message
// accumulate into sets.
func AddMessage(err *ParseError, m Msg) *ParseError {
	out := &ParseError{pos: err.pos, unexpected: err.unexpected, expected: err.expected, messages: err.messages}
	switch m.Kind {
	case Unexpected:
		text := m.Text
		out.unexpected = &text
	case Expected:
		out.expected = out.expected.add(m.Text)
	case Message:
		out.messages = out.messages.add(m.Text)
	}
	return out
}

// Pos returns the error's position.
func (e *ParseError) Pos() position.Position { return e.pos }

// SetPosition returns a copy of err at a new position; messages unchanged.
func SetPosition(err *ParseError, pos position.Position) *ParseError {
	out := *err
	out.pos = pos
	return &out
}

// Relabel replaces err's Expected set with a single entry name (or clears it
// entirely if name is ""), leaving Unexpected and Message entries alone.
// This backs Label/Hidden (spec §4.4): label(p, n) rewrites only the
// Expected side of an empty outcome.
func Relabel(err *ParseError, name string) *ParseError {
	out := &ParseError{pos: err.pos, unexpected: err.unexpected, messages: err.messages}
	if name != "" {
		out.expected = (&orderedSet{seen: make(map[string]struct{})}).add(name)
	}
	return out
}

// IsUnknown reports whether err carries no messages whatsoever.
func (e *ParseError) IsUnknown() bool {
	return e.unexpected == nil && len(e.expected.items()) == 0 && len(e.messages.items()) == 0
}

// Merge implements spec §4.2's merge algebra: the error at the further
// position wins outright; at equal positions, Expected/Message sets union
// and e2's Unexpected (if any) wins, else e1's.
func Merge(e1, e2 *ParseError) *ParseError {
	if e1 == nil {
		return e2
	}
	if e2 == nil {
		return e1
	}
	switch position.Compare(e1.pos, e2.pos) {
	case 1:
		return e1
	case -1:
		return e2
	}
	out := &ParseError{
		pos:      e1.pos,
		expected: e1.expected.union(e2.expected),
		messages: e1.messages.union(e2.messages),
	}
	if e2.unexpected != nil {
		out.unexpected = e2.unexpected
	} else {
		out.unexpected = e1.unexpected
	}
	return out
}

// Render formats err as Parsec does:
//
//	unexpected X
//	expecting A, B or C
//	msg1
//	msg2
//
// with missing sections omitted, Expected entries sorted and de-duplicated,
// and "unknown parse error" if the entire body would otherwise be empty.
func (e *ParseError) Render() string {
	var lines []string

	if e.unexpected != nil && *e.unexpected != "" {
		lines = append(lines, "unexpected "+*e.unexpected)
	}

	if items := e.expected.items(); len(items) > 0 {
		sorted := append([]string(nil), items...)
		sort.Strings(sorted)
		lines = append(lines, "expecting "+joinExpecting(sorted))
	}

	lines = append(lines, e.messages.items()...)

	if len(lines) == 0 {
		return "unknown parse error"
	}
	return strings.Join(lines, "\n")
}

// joinExpecting joins items with ", " except the final pair, which is
// joined with " or ".
func joinExpecting(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " or " + items[len(items)-1]
	}
}

// Error implements the standard error interface, rendering with the
// position prefixed per the optional diagnostic string format in §6.
func (e *ParseError) Error() string {
	return e.pos.Render() + ":\n" + e.Render()
}

// Unwrap satisfies errors.Is/As interop, following the teacher's
// PaseratiError.Unwrap convention; ParseError never itself wraps another
// error, so Unwrap always returns nil.
func (e *ParseError) Unwrap() error { return nil }
