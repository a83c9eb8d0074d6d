package lang

import "testing"

// substFixture builds terms by hand so pointer identities can be
// asserted directly.
type substFixture struct {
	table *Table
	cxt   *Context
	x     *Symbol
	y     *Symbol
}

func newSubstFixture() *substFixture {
	table := NewTable()

	return &substFixture{
		table: table,
		cxt:   NewContext(),
		x:     table.Put(KindIdent, "x"),
		y:     table.Put(KindIdent, "y"),
	}
}

func TestSubstituteVariable(t *testing.T) {
	f := newSubstFixture()

	repl := f.cxt.Variable(f.y)

	// [x -> y]x = y; the replacement term itself, not a copy.
	got := Substitute(f.cxt, f.x, repl, f.cxt.Variable(f.x))
	if got != Term(repl) {
		t.Error("substituting the matched variable should yield repl itself")
	}

	// [x -> y]z = z unchanged.
	z := f.cxt.Variable(f.table.Put(KindIdent, "z"))

	if got := Substitute(f.cxt, f.x, repl, z); got != Term(z) {
		t.Error("a non-matching variable should be preserved")
	}
}

func TestSubstituteShadowedBinder(t *testing.T) {
	f := newSubstFixture()

	// [x -> y](\x. x) = \x. x; the binder shadows the substituted name.
	abs := f.cxt.Abstraction(f.cxt.Variable(f.x), f.cxt.Variable(f.x))

	got := Substitute(f.cxt, f.x, f.cxt.Variable(f.y), abs)
	if got != Term(abs) {
		t.Error("substitution under a shadowing binder should preserve the term")
	}
}

func TestSubstituteUnderBinder(t *testing.T) {
	f := newSubstFixture()

	// [x -> y](\z. x) = \z. y
	z := f.table.Put(KindIdent, "z")
	abs := f.cxt.Abstraction(f.cxt.Variable(z), f.cxt.Variable(f.x))

	got := Substitute(f.cxt, f.x, f.cxt.Variable(f.y), abs)
	if got == Term(abs) {
		t.Fatal("substitution should rebuild the abstraction")
	}

	if want := "(lambda z y)"; Sexpr(got) != want {
		t.Errorf("got %q, want %q", Sexpr(got), want)
	}
}

func TestSubstituteApplication(t *testing.T) {
	f := newSubstFixture()

	// [x -> y](x x) = (y y)
	app := f.cxt.Application(f.cxt.Variable(f.x), f.cxt.Variable(f.x))

	got := Substitute(f.cxt, f.x, f.cxt.Variable(f.y), app)
	if want := "(y y)"; Sexpr(got) != want {
		t.Errorf("got %q, want %q", Sexpr(got), want)
	}
}

func TestSubstitutePreservesUntouchedSubterms(t *testing.T) {
	f := newSubstFixture()

	// In [x -> y](x (z z)), the (z z) subterm contains no occurrence of
	// x and must be shared, not rebuilt.
	z := f.table.Put(KindIdent, "z")
	inner := f.cxt.Application(f.cxt.Variable(z), f.cxt.Variable(z))
	app := f.cxt.Application(f.cxt.Variable(f.x), inner)

	got := Substitute(f.cxt, f.x, f.cxt.Variable(f.y), app)

	rebuilt, ok := got.(*Application)
	if !ok {
		t.Fatalf("got %T, want *Application", got)
	}

	if rebuilt == app {
		t.Error("spine containing an occurrence should be rebuilt")
	}

	if rebuilt.Arg != Term(inner) {
		t.Error("untouched subterm should be shared")
	}
}

func TestSubstituteCaptures(t *testing.T) {
	f := newSubstFixture()

	// Substitution is not capture-avoiding: in [x -> y](\y. x), the free
	// y of the replacement is captured by the binder.
	abs := f.cxt.Abstraction(f.cxt.Variable(f.y), f.cxt.Variable(f.x))

	got := Substitute(f.cxt, f.x, f.cxt.Variable(f.y), abs)
	if want := "(lambda y y)"; Sexpr(got) != want {
		t.Errorf("got %q, want %q", Sexpr(got), want)
	}
}
