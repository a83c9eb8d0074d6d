package lang

// Substitute implements the substitution rule
//
//	[x -> s]t
//
// where sym names the variable x, repl is the replacement term s, and
// term is the term t in which the substitution occurs:
//
//	[x -> s]x        = s
//	[x -> s]y        = y                    if y != x
//	[x -> s](\y. t1) = \y. t1               if y = x (shadowed)
//	                 = \y. [x -> s]t1       if y != x
//	[x -> s](t1 t2)  = ([x -> s]t1 [x -> s]t2)
//
// Subterms are preserved when nothing inside them changes; new nodes
// are allocated from cxt only along the rebuilt spine.
//
// No alpha-renaming is performed, so substitution is not
// capture-avoiding: free variables of s that collide with a binder
// inside t are captured. Inputs produced by beta reduction of closed
// top-level programs never exercise this case, but shadowed open terms
// do; see the package documentation.
func Substitute(cxt *Context, sym *Symbol, repl, term Term) Term {
	switch t := term.(type) {
	case *Variable:
		if t.Sym == sym {
			return repl
		}

		return t

	case *Abstraction:
		// The binder shadows sym for the whole body.
		if t.Param.Sym == sym {
			return t
		}

		body := Substitute(cxt, sym, repl, t.Body)
		if body != t.Body {
			return cxt.Abstraction(t.Param, body)
		}

		return t

	case *Application:
		fn := Substitute(cxt, sym, repl, t.Fn)
		arg := Substitute(cxt, sym, repl, t.Arg)

		if fn != t.Fn || arg != t.Arg {
			return cxt.Application(fn, arg)
		}

		return t

	default:
		return term
	}
}
