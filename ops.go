package calc

import "math"

// apply computes l op r.
func (op BinaryOp) apply(l, r float64) (float64, error) {
	switch op {
	case Add:
		return l + r, nil
	case Sub:
		return l - r, nil
	case Mul:
		return l * r, nil
	case Div:
		// Only exact zero. Tiny divisors give large or infinite quotients.
		if r == 0 {
			return 0, &DivideByZeroError{X: l}
		}
		return l / r, nil
	case Mod:
		return math.Mod(l, r), nil
	case Pow:
		return math.Pow(l, r), nil
	default:
		return 0, &ExpressionError{Reason: "unknown binary operator " + op.String()}
	}
}

// apply computes op x. Functions outside their domain give NaN, except for
// factorial, which fails below -1.
func (op UnaryOp) apply(x float64) (float64, error) {
	switch op {
	case Factorial:
		if x < -1 {
			return 0, &DomainError{X: x, Func: "!"}
		}
		return math.Gamma(x + 1), nil
	case Lg:
		return math.Log10(x), nil
	case Ln:
		return math.Log(x), nil
	case Sin:
		return math.Sin(x), nil
	case Cos:
		return math.Cos(x), nil
	case Tan:
		return math.Tan(x), nil
	case Asin:
		return math.Asin(x), nil
	case Acos:
		return math.Acos(x), nil
	case Atan:
		return math.Atan(x), nil
	case Neg:
		return -x, nil
	default:
		return 0, &ExpressionError{Reason: "unknown unary operator " + op.String()}
	}
}
