package calc_test

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zephyrtronium/calc"
)

func TestEval(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"num", "5", 5},
		{"real", "1.5", 1.5},
		{"neg", "-5", -5},
		{"prec", "2+3*4", 14},
		{"paren", "(2+3)*4", 20},
		{"square", "[2+3]*4", 20},
		{"sub-left", "2-3-4", -5},
		{"div-left", "8/4/2", 1},
		{"pow-left", "2^3^2", 64},
		{"neg-pow", "-2^2", 4},
		{"neg-paren-pow", "-(2)^2", 4},
		{"neg-paren", "-(2+3)", -5},
		{"plus-paren", "+(2+3)", 5},
		{"negneg", "--2", 2},
		{"subneg", "2--3", 5},
		{"pow-neg", "2^-1", 0.5},
		{"mod", "7%3", 1},
		{"mod-neg", "-7%3", -1},
		{"mod-real", "5.5%2", 1.5},
		{"sin", "sin(0)", 0},
		{"cos", "cos(0)", 1},
		{"tan", "tan(0)", 0},
		{"asin", "asin(0)", 0},
		{"acos", "acos(1)", 0},
		{"atan", "atan(0)", 0},
		{"ln", "ln(1)", 0},
		{"pi", "pi", math.Pi},
		{"e", "e", math.E},
		{"neg-pi", "-pi", -math.Pi},
		{"factorial", "3!", 6},
		{"factorial-zero", "0!", 1},
		{"factorial-add", "2+3!", 8},
		{"factorial-paren", "(1+2)!", 6},
		{"neg-func", "-cos(0)", -1},
		{"func-factorial", "cos(0)!", math.Cos(1)},
		{"func-factorial-paren", "(sin(0))!", 1},
		{"sign-run", strings.Repeat("-", 1000001) + "(2)", -2},
		{"spaces", " 1 +\t2 ", 3},
		{"digit-spaces", "1 0 + 1", 11},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.Eval(c.src)
			require.NoError(t, err, "evaluating %q", c.src)
			assert.Equal(t, c.r, r, "evaluating %q", c.src)
		})
	}
}

func TestEvalApprox(t *testing.T) {
	cases := []struct {
		name string
		src  string
		r    float64
	}{
		{"lg", "lg(100)", 2},
		{"lg-small", "lg(0.001)", -3},
		{"pi-digits", "pi", 3.14159265358979},
		{"asin", "asin(1)", math.Pi / 2},
		{"atan", "4*atan(1)", math.Pi},
		{"factorial-big", "10!", 3628800},
		{"factorial-half", "(-0.5)!", math.Sqrt(math.Pi)},
		{"ln-e", "ln(e)", 1},
		{"func-expr", "sin(pi/2)*2", 2},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.Eval(c.src)
			require.NoError(t, err, "evaluating %q", c.src)
			assert.InDelta(t, c.r, r, 1e-9*math.Max(1, math.Abs(c.r)), "evaluating %q", c.src)
		})
	}
}

// TestEvalNaN checks results that are NaN or infinite rather than errors.
func TestEvalNaN(t *testing.T) {
	cases := []struct {
		name string
		src  string
		inf  int
	}{
		{"mod-zero", "5%0", 0},
		{"asin-domain", "asin(2)", 0},
		{"acos-domain", "acos(-2)", 0},
		{"ln-neg", "ln(-1)", 0},
		{"lg-neg", "lg(-1)", 0},
		{"ln-zero", "ln(0)", -1},
		{"factorial-minus-one", "(-1)!", 1},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.Eval(c.src)
			require.NoError(t, err, "evaluating %q", c.src)
			if c.inf == 0 {
				assert.True(t, math.IsNaN(r), "%q gave %g, not NaN", c.src, r)
			} else {
				assert.True(t, math.IsInf(r, c.inf), "%q gave %g, not %d inf", c.src, r, c.inf)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  interface{}
	}{
		{"empty", "", new(*calc.ExpressionError)},
		{"blank", "   ", new(*calc.ExpressionError)},
		{"lone-plus", "+", new(*calc.ExpressionError)},
		{"lone-factorial", "!", new(*calc.ExpressionError)},
		{"dangling", "1+", new(*calc.ExpressionError)},
		{"two-nums", "2(3)", new(*calc.ExpressionError)},
		{"neg-nothing", "(-)", new(*calc.ExpressionError)},
		{"empty-parens", "()", new(*calc.ExpressionError)},
		{"empty-call", "sin()", new(*calc.ExpressionError)},
		{"div-zero", "5/0", new(*calc.DivideByZeroError)},
		{"div-neg-zero", "5/-0", new(*calc.DivideByZeroError)},
		{"div-zero-expr", "1/(2-2)", new(*calc.DivideByZeroError)},
		{"factorial-domain", "(-2)!", new(*calc.DomainError)},
		{"factorial-folded", "-3!", new(*calc.DomainError)},
		{"unclosed", "(2+3", new(*calc.BracketError)},
		{"unopened", "2+3)", new(*calc.BracketError)},
		{"bad-number", "1.2.3", new(*calc.ParseError)},
		{"bad-name", "foo", new(*calc.ParseError)},
		{"bad-func", "foo(1)", new(*calc.ParseError)},
		{"bad-rune", "1#2", new(*calc.ParseError)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.Eval(c.src)
			require.Error(t, err, "evaluating %q gave %g", c.src, r)
			assert.ErrorAs(t, err, c.err)
		})
	}
}

func TestEvalErrorMessages(t *testing.T) {
	cases := []struct {
		src string
		msg string
	}{
		{"", "expression error: empty expression"},
		{"+", "expression error: single + token is not a number"},
		{"1+", "expression error: not enough operands for +: have 1"},
		{"2(3)", "expression error: 2 values left after evaluating"},
		{"5/0", "divide by zero: 5 / 0"},
		{"(-2)!", "math domain error: -2 outside domain of !"},
		{"(2+3", "1: bracket mismatch: open bracket with no close bracket"},
		{"2+3)", "4: bracket mismatch: close bracket with no open bracket"},
		{"1.2.3", `1: parse error: malformed number "1.2.3"`},
		{"1+foo", `3: parse error: unknown constant "foo"`},
		{"foo(1)", `1: parse error: unknown function "foo"`},
		{"1,2", `2: parse error: invalid token ","`},
	}
	for _, c := range cases {
		_, err := calc.Eval(c.src)
		if assert.Error(t, err, "evaluating %q", c.src) {
			assert.Equal(t, c.msg, err.Error(), "evaluating %q", c.src)
		}
	}
}

func TestEvalPostfix(t *testing.T) {
	num, bin, un := calc.NumberToken, calc.BinaryToken, calc.UnaryToken
	cases := []struct {
		name string
		toks []calc.Token
		r    float64
	}{
		{"num", []calc.Token{num(7)}, 7},
		{"add", []calc.Token{num(2), num(3), bin(calc.Add)}, 5},
		{"sub-order", []calc.Token{num(2), num(3), bin(calc.Sub)}, -1},
		{"div-order", []calc.Token{num(1), num(4), bin(calc.Div)}, 0.25},
		{"pow-order", []calc.Token{num(2), num(10), bin(calc.Pow)}, 1024},
		{"unary", []calc.Token{num(4), un(calc.Factorial)}, 24},
		{"neg", []calc.Token{num(4), un(calc.Neg)}, -4},
		{"deep", []calc.Token{num(1), num(2), num(3), num(4), bin(calc.Mul), bin(calc.Mul), bin(calc.Mul)}, 24},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := calc.NewPostfix(c.toks...)
			r, err := calc.EvalPostfix(p)
			require.NoError(t, err, "evaluating %v", p)
			assert.Equal(t, c.r, r, "evaluating %v", p)
		})
	}
}

func TestEvalPostfixErrors(t *testing.T) {
	num, bin, un := calc.NumberToken, calc.BinaryToken, calc.UnaryToken
	lb := calc.BracketToken(calc.LeftBracket)
	cases := []struct {
		name string
		p    *calc.Postfix
	}{
		{"nil", nil},
		{"empty", calc.NewPostfix()},
		{"single-op", calc.NewPostfix(bin(calc.Add))},
		{"single-bracket", calc.NewPostfix(lb)},
		{"single-zero", calc.NewPostfix(calc.Token{})},
		{"short-binary", calc.NewPostfix(num(1), bin(calc.Add), num(2))},
		{"short-unary", calc.NewPostfix(un(calc.Sin), num(1))},
		{"leftover", calc.NewPostfix(num(1), num(2), num(3), bin(calc.Add))},
		{"bracket", calc.NewPostfix(num(1), lb, num(2), bin(calc.Add))},
		{"zero-token", calc.NewPostfix(num(1), calc.Token{})},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := c.p.Eval()
			require.Error(t, err, "evaluating %v gave %g", c.p, r)
			var eerr *calc.ExpressionError
			assert.ErrorAs(t, err, &eerr)
		})
	}
}

func TestEvalIdempotent(t *testing.T) {
	srcs := []string{"2+3*4", "-(1)", "sin(pi/6)", "3!", "5%0", "(-"}
	for _, src := range srcs {
		r0, err0 := calc.Eval(src)
		for i := 0; i < 5; i++ {
			r, err := calc.Eval(src)
			assert.Equal(t, err0, err, "evaluating %q", src)
			if math.IsNaN(r0) {
				assert.True(t, math.IsNaN(r), "evaluating %q", src)
				continue
			}
			assert.Equal(t, r0, r, "evaluating %q", src)
		}
	}
}

func TestPostfixReuse(t *testing.T) {
	in, err := calc.Tokenize("x*x-1", calc.WithConst("x", 3))
	require.NoError(t, err)
	p, err := calc.ToPostfix(in)
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < cap(errs); i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				r, err := p.Eval()
				if err != nil {
					errs <- err
					return
				}
				if r != 8 {
					errs <- fmt.Errorf("got %g", r)
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}

func BenchmarkEval(b *testing.B) {
	b.Run("string", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			calc.Eval("2+3*4-sin(pi/2)^2")
		}
	})
	b.Run("postfix", func(b *testing.B) {
		in, err := calc.Tokenize("2+3*4-sin(pi/2)^2")
		if err != nil {
			b.Fatal(err)
		}
		p, err := calc.ToPostfix(in)
		if err != nil {
			b.Fatal(err)
		}
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			p.Eval()
		}
	})
}
