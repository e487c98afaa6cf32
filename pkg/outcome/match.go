package outcome

// OptionHandlers carries one handler per Option variant.
type OptionHandlers[T any, Out any] struct {
	OnSome func(v T) Out
	OnNone func() Out
}

// ResultHandlers carries one handler per Result variant.
type ResultHandlers[T any, E any, Out any] struct {
	OnOk  func(v T) Out
	OnErr func(err E) Out
}

// Match invokes exactly one handler, chosen by the Option's variant, and
// returns its result unchanged. A nil handler for the variant actually
// taken raises a *Fault; the other handler is never touched.
//
// Match is a free function because Out cannot be a method type parameter.
func Match[T any, Out any](o Option[T], h OptionHandlers[T, Out]) Out {
	if o.present {
		if h.OnSome == nil {
			panic(NewFault("match: missing OnSome handler"))
		}
		return h.OnSome(o.value)
	}

	if h.OnNone == nil {
		panic(NewFault("match: missing OnNone handler"))
	}
	return h.OnNone()
}

// MatchResult invokes exactly one handler, chosen by the Result's
// variant, and returns its result unchanged.
func MatchResult[T any, E any, Out any](r Result[T, E], h ResultHandlers[T, E, Out]) Out {
	if r.isSuccess {
		if h.OnOk == nil {
			panic(NewFault("match: missing OnOk handler"))
		}
		return h.OnOk(r.result)
	}

	if h.OnErr == nil {
		panic(NewFault("match: missing OnErr handler"))
	}
	return h.OnErr(r.err)
}
