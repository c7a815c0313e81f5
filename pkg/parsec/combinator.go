package parsec

import "parsec/pkg/errors"

// Many matches p zero or more times. If p ever succeeds without consuming
// input, Many panics — that is a grammar bug (an infinite loop), reported
// out-of-band as spec §7 prescribes for programmer errors rather than as an
// input-dependent ParseError.
func Many[U, A any](p Parser[U, A]) Parser[U, []A] {
	return func(s State[U]) Reply[U, []A] {
		var values []A
		cur := s
		consumedAny := false
		accErr := errors.Unknown(s.Pos)
		for {
			r := p(cur)
			if r.Ok {
				if !r.Consumed {
					panic("parsec: many applied to a parser that can succeed without consuming input")
				}
				values = append(values, r.Value)
				cur = r.State
				accErr = r.Err
				consumedAny = true
				continue
			}
			if r.Consumed {
				return cerr[U, []A](s, r.Err)
			}
			merged := errors.Merge(accErr, r.Err)
			if consumedAny {
				return cok[U, []A](values, cur, merged)
			}
			return eok[U, []A](values, cur, merged)
		}
	}
}

// Some matches p one or more times (p *> many(p)).
func Some[U, A any](p Parser[U, A]) Parser[U, []A] {
	return Bind(p, func(first A) Parser[U, []A] {
		return Bind(Many(p), func(rest []A) Parser[U, []A] {
			return Return[U, []A](append([]A{first}, rest...))
		})
	})
}

// Option matches p, or succeeds with def without consuming input if p fails
// empty (alt(p, return(def))).
func Option[U, A any](def A, p Parser[U, A]) Parser[U, A] {
	return Alt(p, Return[U, A](def))
}

// Optional matches p for effect, discarding the value either way, and never
// fails unless p fails having consumed input.
func Optional[U, A any](p Parser[U, A]) Parser[U, Unit] {
	return Alt(Then(p, Return[U, Unit](Unit{})), Return[U, Unit](Unit{}))
}

// Between matches open, then p, then close, returning p's value.
func Between[U, O, A, C any](open Parser[U, O], close Parser[U, C], p Parser[U, A]) Parser[U, A] {
	return Then(open, Before(p, close))
}

// SepBy matches zero or more p separated by sep.
func SepBy[U, A, S any](p Parser[U, A], sep Parser[U, S]) Parser[U, []A] {
	return Alt(SepBy1(p, sep), Return[U, []A](nil))
}

// SepBy1 matches one or more p separated by sep.
func SepBy1[U, A, S any](p Parser[U, A], sep Parser[U, S]) Parser[U, []A] {
	return Bind(p, func(first A) Parser[U, []A] {
		return Bind(Many(Then(sep, p)), func(rest []A) Parser[U, []A] {
			return Return[U, []A](append([]A{first}, rest...))
		})
	})
}

// EndBy matches zero or more p, each followed by sep.
func EndBy[U, A, S any](p Parser[U, A], sep Parser[U, S]) Parser[U, []A] {
	return Many(Before(p, sep))
}

// EndBy1 matches one or more p, each followed by sep.
func EndBy1[U, A, S any](p Parser[U, A], sep Parser[U, S]) Parser[U, []A] {
	return Some(Before(p, sep))
}

// SepEndBy1 matches one or more p separated by sep, with an optional
// trailing sep.
func SepEndBy1[U, A, S any](p Parser[U, A], sep Parser[U, S]) Parser[U, []A] {
	return func(s State[U]) Reply[U, []A] {
		r0 := p(s)
		if !r0.Ok {
			return Reply[U, []A]{Consumed: r0.Consumed, Result: Result[U, []A]{Ok: false, State: r0.State, Err: r0.Err}}
		}
		values := []A{r0.Value}
		cur := r0.State
		consumedAny := r0.Consumed
		accErr := r0.Err
		for {
			rs := sep(cur)
			if !rs.Ok {
				if rs.Consumed {
					return cerr[U, []A](s, rs.Err)
				}
				merged := errors.Merge(accErr, rs.Err)
				if consumedAny {
					return cok[U, []A](values, cur, merged)
				}
				return eok[U, []A](values, cur, merged)
			}
			cur = rs.State
			consumedAny = true
			accErr = errors.Merge(accErr, rs.Err)

			rp := p(cur)
			if !rp.Ok {
				if rp.Consumed {
					return cerr[U, []A](s, rp.Err)
				}
				merged := errors.Merge(accErr, rp.Err)
				return cok[U, []A](values, cur, merged)
			}
			values = append(values, rp.Value)
			cur = rp.State
			consumedAny = true
			accErr = rp.Err
		}
	}
}

// SepEndBy matches zero or more p separated by sep, with an optional
// trailing sep.
func SepEndBy[U, A, S any](p Parser[U, A], sep Parser[U, S]) Parser[U, []A] {
	return Alt(SepEndBy1(p, sep), Return[U, []A](nil))
}

// ManyTill repeats p until end succeeds, returning the values p produced.
// end is tried first on every iteration; it is only given a chance to
// backtrack (not commit the whole combinator to failure) when it fails
// without consuming input.
func ManyTill[U, A, E any](p Parser[U, A], end Parser[U, E]) Parser[U, []A] {
	return func(s State[U]) Reply[U, []A] {
		var values []A
		cur := s
		consumedAny := false
		accErr := errors.Unknown(s.Pos)
		for {
			re := end(cur)
			if re.Ok {
				merged := errors.Merge(accErr, re.Err)
				consumed := consumedAny || re.Consumed
				if consumed {
					return cok[U, []A](values, re.State, merged)
				}
				return eok[U, []A](values, re.State, merged)
			}
			if re.Consumed {
				return cerr[U, []A](s, re.Err)
			}

			rp := p(cur)
			if !rp.Ok {
				if rp.Consumed {
					return cerr[U, []A](s, rp.Err)
				}
				merged := errors.Merge(errors.Merge(accErr, re.Err), rp.Err)
				if consumedAny {
					return cerr[U, []A](s, merged)
				}
				return eerr[U, []A](s, merged)
			}
			values = append(values, rp.Value)
			cur = rp.State
			consumedAny = consumedAny || rp.Consumed
			accErr = rp.Err
		}
	}
}

// Count matches p exactly n times, failing (with the usual
// consumed/position bookkeeping) if any of the n attempts fails.
func Count[U, A any](n int, p Parser[U, A]) Parser[U, []A] {
	return func(s State[U]) Reply[U, []A] {
		if n <= 0 {
			return eok[U, []A](nil, s, errors.Unknown(s.Pos))
		}
		values := make([]A, 0, n)
		cur := s
		consumedAny := false
		accErr := errors.Unknown(s.Pos)
		for i := 0; i < n; i++ {
			r := p(cur)
			if !r.Ok {
				merged := errors.Merge(accErr, r.Err)
				if consumedAny || r.Consumed {
					return cerr[U, []A](s, merged)
				}
				return eerr[U, []A](s, merged)
			}
			values = append(values, r.Value)
			cur = r.State
			consumedAny = consumedAny || r.Consumed
			accErr = r.Err
		}
		if consumedAny {
			return cok[U, []A](values, cur, accErr)
		}
		return eok[U, []A](values, cur, accErr)
	}
}

// SkipMany is Many with the values discarded.
func SkipMany[U, A any](p Parser[U, A]) Parser[U, Unit] {
	return Map(Many(p), func([]A) Unit { return Unit{} })
}

// SkipSome is Some with the values discarded.
func SkipSome[U, A any](p Parser[U, A]) Parser[U, Unit] {
	return Map(Some(p), func([]A) Unit { return Unit{} })
}
