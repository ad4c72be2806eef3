package calc

import "strconv"

// Eval evaluates a postfix sequence with a value stack and returns the
// result. Errors are *ExpressionError for sequences that do not reduce to
// exactly one value, *DivideByZeroError, and *DomainError.
func (p *Postfix) Eval() (float64, error) {
	if p == nil || len(p.toks) == 0 {
		return 0, &ExpressionError{Reason: "empty expression"}
	}
	if len(p.toks) == 1 {
		t := p.toks[0]
		if t.kind != KindNumber {
			return 0, &ExpressionError{Reason: "single " + t.String() + " token is not a number"}
		}
		return t.num, nil
	}
	stack := make([]float64, 0, len(p.toks))
	for _, t := range p.toks {
		switch t.kind {
		case KindNumber:
			stack = append(stack, t.num)
		case KindBinary:
			if len(stack) < 2 {
				return 0, operands(t, len(stack))
			}
			r := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			// The left operand stays on the stack and is replaced by the
			// result.
			l := &stack[len(stack)-1]
			v, err := t.bin.apply(*l, r)
			if err != nil {
				return 0, err
			}
			*l = v
		case KindUnary:
			if len(stack) < 1 {
				return 0, operands(t, 0)
			}
			x := &stack[len(stack)-1]
			v, err := t.un.apply(*x)
			if err != nil {
				return 0, err
			}
			*x = v
		case KindBracket:
			return 0, &ExpressionError{Reason: "bracket " + t.String() + " in postfix expression"}
		default:
			return 0, &ExpressionError{Reason: "invalid token in postfix expression"}
		}
	}
	if len(stack) != 1 {
		return 0, &ExpressionError{Reason: strconv.Itoa(len(stack)) + " values left after evaluating"}
	}
	return stack[0], nil
}

// operands creates the error for an operator that found too few values.
func operands(t Token, have int) error {
	return &ExpressionError{Reason: "not enough operands for " + t.String() + ": have " + strconv.Itoa(have)}
}

// EvalPostfix evaluates a postfix sequence. It is the same as p.Eval().
func EvalPostfix(p *Postfix) (float64, error) {
	return p.Eval()
}

// Eval tokenizes text, converts it to postfix, and evaluates it. Errors from
// each stage are returned unchanged.
func Eval(text string, opts ...Option) (float64, error) {
	in, err := Tokenize(text, opts...)
	if err != nil {
		return 0, err
	}
	p, err := ToPostfix(in)
	if err != nil {
		return 0, err
	}
	return p.Eval()
}
