package lang

import (
	"iter"
	"log/slog"
	"strings"
)

//go:generate go tool stringer --linecomment --type Strategy --output strategy_string.go

// Step is a one-step reduction function: it returns its input unchanged
// (pointer-identical) when the term is irreducible under the strategy,
// or a new term when progress was made.
type Step func(*Context, Term) Term

// Reduce drives step to a fixed point: it applies step repeatedly until
// a step returns its input, meaning the term is in normal form for that
// strategy.
//
// No step budget is imposed. Reducing a divergent term loops forever;
// bounding the work is the caller's responsibility (see [ReduceN]).
func Reduce(cxt *Context, term Term, step Step) Term {
	for {
		next := step(cxt, term)
		if next == term {
			return term
		}

		term = next
	}
}

// ReduceN applies step at most max times. It returns the most reduced
// term along with true when a fixed point was confirmed within the
// budget, or false when the budget ran out first.
func ReduceN(cxt *Context, term Term, step Step, max int) (Term, bool) {
	for range max {
		next := step(cxt, term)
		if next == term {
			return term, true
		}

		term = next
	}

	return term, false
}

// Reduction rules
//
// Each rule takes the environment, a node, and (where recursion is
// needed) the strategy's own stepper. A rule returns a new node on
// progress or the input node when it does not apply at this position.

// reduceVar resolves a variable against the global environment. A name
// mapped to a definition reduces to the defined term; a free variable
// is stuck and reduces to itself.
func reduceVar(cxt *Context, v *Variable) Term {
	if def := cxt.FindTerm(v.Sym); def != nil {
		return def.Value
	}

	return v
}

// reduceAppFn reduces the function position of an application one step:
//
//	   t1 --> t
//	--------------- E-App-Fn
//	t1 t2 --> t t2
func reduceAppFn(cxt *Context, app *Application, step Step) Term {
	if fn := step(cxt, app.Fn); fn != app.Fn {
		return cxt.Application(fn, app.Arg)
	}

	return app
}

// reduceAppArg reduces the argument position of an application one step:
//
//	   t2 --> t
//	--------------- E-App-Arg
//	t1 t2 --> t1 t
func reduceAppArg(cxt *Context, app *Application, step Step) Term {
	if arg := step(cxt, app.Arg); arg != app.Arg {
		return cxt.Application(app.Fn, arg)
	}

	return app
}

// reduceAppBeta contracts a redex by substituting the argument for the
// abstraction's bound variable throughout its body:
//
//	----------------------- E-App-Abs
//	(\x. t) v --> [x -> v]t
//
// The substituted body is stepped once more with the strategy's own
// stepper. When the function position is not an abstraction the rule
// does not apply.
func reduceAppBeta(cxt *Context, app *Application, step Step) Term {
	if abs, ok := app.Fn.(*Abstraction); ok {
		body := Substitute(cxt, abs.Param.Sym, app.Arg, abs.Body)

		return step(cxt, body)
	}

	return app
}

// reduceAbsBody reduces the body of an abstraction one step (normal
// order only):
//
//	    t --> u
//	--------------- E-Abs-Body
//	\x. t --> \x. u
func reduceAbsBody(cxt *Context, abs *Abstraction, step Step) Term {
	if body := step(cxt, abs.Body); body != abs.Body {
		return cxt.Abstraction(abs.Param, body)
	}

	return abs
}

// StepByValue performs a single call-by-value reduction step:
// abstractions are values; applications reduce the function position,
// then the argument position, then contract the redex.
func StepByValue(cxt *Context, term Term) Term {
	switch t := term.(type) {
	case *Variable:
		return reduceVar(cxt, t)

	case *Abstraction:
		return t

	case *Application:
		if r := reduceAppFn(cxt, t, StepByValue); r != Term(t) {
			return r
		}

		if r := reduceAppArg(cxt, t, StepByValue); r != Term(t) {
			return r
		}

		return reduceAppBeta(cxt, t, StepByValue)

	default:
		return term
	}
}

// StepByName performs a single call-by-name reduction step: like
// call-by-value, but arguments are substituted unevaluated.
func StepByName(cxt *Context, term Term) Term {
	switch t := term.(type) {
	case *Variable:
		return reduceVar(cxt, t)

	case *Abstraction:
		return t

	case *Application:
		if r := reduceAppFn(cxt, t, StepByName); r != Term(t) {
			return r
		}

		return reduceAppBeta(cxt, t, StepByName)

	default:
		return term
	}
}

// StepNormalOrder performs a single normal order reduction step:
// leftmost-outermost first, reducing under binders, so a full normal
// form is reached whenever one exists.
func StepNormalOrder(cxt *Context, term Term) Term {
	switch t := term.(type) {
	case *Variable:
		return reduceVar(cxt, t)

	case *Abstraction:
		return reduceAbsBody(cxt, t, StepNormalOrder)

	case *Application:
		// The function position is reduced by name so redexes are
		// contracted before their arguments are normalized.
		if r := reduceAppFn(cxt, t, StepByName); r != Term(t) {
			return r
		}

		if r := reduceAppArg(cxt, t, StepNormalOrder); r != Term(t) {
			return r
		}

		if _, ok := t.Fn.(*Abstraction); ok {
			return reduceAppBeta(cxt, t, StepNormalOrder)
		}

		return StepNormalOrder(cxt, t.Fn)

	default:
		return term
	}
}

// CallByValue reduces term to its call-by-value normal form.
func CallByValue(cxt *Context, term Term) Term {
	return Reduce(cxt, term, StepByValue)
}

// CallByName reduces term to its call-by-name normal form.
func CallByName(cxt *Context, term Term) Term {
	return Reduce(cxt, term, StepByName)
}

// NormalOrder reduces term to its full normal form, when one exists.
func NormalOrder(cxt *Context, term Term) Term {
	return Reduce(cxt, term, StepNormalOrder)
}

// Strategy names one of the three reduction strategies.
type Strategy int

const (
	// StrategyValue is call-by-value reduction.
	StrategyValue Strategy = iota // value

	// StrategyName is call-by-name reduction.
	StrategyName // name

	// StrategyNormal is normal order reduction.
	StrategyNormal // normal
)

// Step returns the strategy's one-step reduction function.
func (s Strategy) Step() Step {
	switch s {
	case StrategyValue:
		return StepByValue
	case StrategyName:
		return StepByName
	case StrategyNormal:
		return StepNormalOrder
	default:
		return nil
	}
}

// Strategies returns an iterator over all defined strategies in their
// conventional output order.
func Strategies() iter.Seq[Strategy] {
	return func(yield func(Strategy) bool) {
		for _, s := range []Strategy{
			StrategyValue,
			StrategyName,
			StrategyNormal,
		} {
			if !yield(s) {
				return
			}
		}
	}
}

// ParseStrategy parses a strategy name. Valid names are "value",
// "name", and "normal".
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "value":
		return StrategyValue, nil
	case "name":
		return StrategyName, nil
	case "normal":
		return StrategyNormal, nil
	default:
		return 0, ErrInvalidStrategy.With(slog.String("strategy", s))
	}
}
