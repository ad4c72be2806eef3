package calc

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Option is an option for tokenizing.
type Option interface {
	apply(*config)
}

type (
	funcopt struct {
		name string
		op   UnaryOp
	}
	constopt struct {
		name string
		v    float64
	}
)

// config holds the names the tokenizer resolves. It is also an Option, as
// returned by Preset.
type config struct {
	// funcs maps function names to prefix unary operators.
	funcs map[string]UnaryOp
	// consts maps constant names to values.
	consts map[string]float64
	// owned is whether the maps belong to this config alone and may be
	// modified.
	owned bool
	// changed is whether any option has been applied.
	changed bool
}

var defaultFuncs = map[string]UnaryOp{
	"lg":     Lg,
	"ln":     Ln,
	"sin":    Sin,
	"cos":    Cos,
	"tan":    Tan,
	"asin":   Asin,
	"acos":   Acos,
	"atan":   Atan,
	"arcsin": Asin,
	"arccos": Acos,
	"arctan": Atan,
}

var defaultConsts = map[string]float64{
	"pi": math.Pi,
	"e":  math.E,
}

// newConfig applies opts in order to the default names. The default maps are
// never modified.
func newConfig(opts []Option) config {
	c := config{funcs: defaultFuncs, consts: defaultConsts}
	for _, opt := range opts {
		if opt != nil {
			opt.apply(&c)
		}
	}
	return c
}

// own makes c's maps safe to modify.
func (c *config) own() {
	c.changed = true
	if c.owned {
		return
	}
	funcs := make(map[string]UnaryOp, len(c.funcs)+1)
	for k, v := range c.funcs {
		funcs[k] = v
	}
	consts := make(map[string]float64, len(c.consts)+1)
	for k, v := range c.consts {
		consts[k] = v
	}
	c.funcs, c.consts, c.owned = funcs, consts, true
}

// WithFunc sets the prefix unary operator that a function name denotes when
// it is followed by an open bracket. Passing NoUnary removes the name.
// Factorial and Neg cannot be given names.
func WithFunc(name string, op UnaryOp) Option {
	checkName(name)
	if op == Factorial || op == Neg || op < NoUnary || int(op) >= len(unaryNames) {
		panic("calc: cannot name unary operator " + op.String())
	}
	return &funcopt{name, op}
}

func (o *funcopt) apply(c *config) {
	c.own()
	if o.op == NoUnary {
		delete(c.funcs, o.name)
		return
	}
	c.funcs[o.name] = o.op
}

// WithConst defines a named constant. Names not followed by an open bracket
// resolve to constants.
func WithConst(name string, v float64) Option {
	checkName(name)
	return &constopt{name, v}
}

func (o *constopt) apply(c *config) {
	c.own()
	c.consts[o.name] = o.v
}

// checkName panics if name could never be scanned as an identifier.
func checkName(name string) {
	if name == "" {
		panic("calc: empty name")
	}
	if c := name[0]; c == '.' || '0' <= c && c <= '9' {
		panic("calc: name " + strconv.Quote(name) + " starts like a number")
	}
	if strings.ContainsAny(name, delimiters) || strings.IndexFunc(name, unicode.IsSpace) >= 0 {
		panic("calc: name " + strconv.Quote(name) + " contains a delimiter")
	}
}

// Preset creates a tokenizing preset that is more efficient when using the
// same options for many calls to Tokenize or Eval. A preset panics when
// applied after any other option, but it is safe to apply other options after
// a preset.
func Preset(opts ...Option) Option {
	c := newConfig(opts)
	return &c
}

func (o *config) apply(c *config) {
	if c.changed {
		panic("calc: preset applied to non-default config")
	}
	c.funcs, c.consts = o.funcs, o.consts
	// The preset's maps are shared by every call using it.
	c.owned = false
	c.changed = o.changed
}
