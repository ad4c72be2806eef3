package calc

import (
	"strconv"
	"strings"
)

// Token is one element of an infix or postfix sequence. It is exactly one of
// a number, a binary operator, a unary operator, or a bracket, as reported by
// Kind. The zero Token has KindNone and is never produced by Tokenize.
type Token struct {
	kind Kind
	num  float64
	bin  BinaryOp
	un   UnaryOp
	side Side
	// pos is the column of the token in the source text, or 0 for tokens
	// built by callers.
	pos int
}

// Kind is the variant of a Token.
type Kind int8

const (
	KindNone Kind = iota
	// KindNumber is a literal or named constant.
	KindNumber
	// KindBinary is an operator of two operands.
	KindBinary
	// KindUnary is an operator of one operand, either a prefix function or
	// postfix factorial.
	KindUnary
	// KindBracket is a grouping bracket. Brackets never appear in postfix
	// sequences.
	KindBracket
)

var kindNames = [...]string{"None", "Number", "Binary", "Unary", "Bracket"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// BinaryOp is the operation of a binary operator token.
type BinaryOp int8

const (
	NoBinary BinaryOp = iota
	Add
	Sub
	Mul
	Div
	Mod
	Pow
)

var binaryNames = [...]string{"", "+", "-", "*", "/", "%", "^"}

func (op BinaryOp) String() string {
	if op <= NoBinary || int(op) >= len(binaryNames) {
		return "BinaryOp(" + strconv.Itoa(int(op)) + ")"
	}
	return binaryNames[op]
}

// prec is the binding strength of op. Higher binds tighter. Every unary
// operator outranks every binary operator.
func (op BinaryOp) prec() int {
	switch op {
	case Add, Sub:
		return 1
	case Mul, Div, Mod:
		return 2
	case Pow:
		return 3
	default:
		return 0
	}
}

// UnaryOp is the operation of a unary operator token.
type UnaryOp int8

const (
	NoUnary UnaryOp = iota
	// Factorial is the postfix !, computed as Γ(x+1).
	Factorial
	Lg
	Ln
	Sin
	Cos
	Tan
	Asin
	Acos
	Atan
	// Neg is prefix negation of a term that is not a plain number, as in
	// -(x) or -sin(x).
	Neg
)

var unaryNames = [...]string{"", "!", "lg", "ln", "sin", "cos", "tan", "asin", "acos", "atan", "neg"}

func (op UnaryOp) String() string {
	if op <= NoUnary || int(op) >= len(unaryNames) {
		return "UnaryOp(" + strconv.Itoa(int(op)) + ")"
	}
	return unaryNames[op]
}

// postfix reports whether op follows its operand in infix notation.
func (op UnaryOp) postfix() bool {
	return op == Factorial
}

// Side distinguishes opening and closing brackets.
type Side int8

const (
	LeftBracket Side = iota + 1
	RightBracket
)

func (s Side) String() string {
	switch s {
	case LeftBracket:
		return "("
	case RightBracket:
		return ")"
	default:
		return "Side(" + strconv.Itoa(int(s)) + ")"
	}
}

// NumberToken creates a number token.
func NumberToken(v float64) Token {
	return Token{kind: KindNumber, num: v}
}

// BinaryToken creates a binary operator token. Panics if op is not one of
// the defined operators.
func BinaryToken(op BinaryOp) Token {
	if op <= NoBinary || int(op) >= len(binaryNames) {
		panic("calc: invalid binary operator " + op.String())
	}
	return Token{kind: KindBinary, bin: op}
}

// UnaryToken creates a unary operator token. Panics if op is not one of the
// defined operators.
func UnaryToken(op UnaryOp) Token {
	if op <= NoUnary || int(op) >= len(unaryNames) {
		panic("calc: invalid unary operator " + op.String())
	}
	return Token{kind: KindUnary, un: op}
}

// BracketToken creates a bracket token.
func BracketToken(s Side) Token {
	if s != LeftBracket && s != RightBracket {
		panic("calc: invalid bracket side " + s.String())
	}
	return Token{kind: KindBracket, side: s}
}

// Kind returns the variant of t.
func (t Token) Kind() Kind {
	return t.kind
}

// Value returns the value of a number token, or 0 for other kinds.
func (t Token) Value() float64 {
	return t.num
}

// Binary returns the operation of a binary operator token, or NoBinary.
func (t Token) Binary() BinaryOp {
	return t.bin
}

// Unary returns the operation of a unary operator token, or NoUnary.
func (t Token) Unary() UnaryOp {
	return t.un
}

// Side returns the side of a bracket token, or 0.
func (t Token) Side() Side {
	return t.side
}

// Pos returns the 1-based column of the token in the text it was scanned
// from, counting runes of the original input, or 0 if the token was not
// produced by Tokenize.
func (t Token) Pos() int {
	return t.pos
}

func (t Token) String() string {
	switch t.kind {
	case KindNumber:
		return strconv.FormatFloat(t.num, 'g', -1, 64)
	case KindBinary:
		return t.bin.String()
	case KindUnary:
		return t.un.String()
	case KindBracket:
		return t.side.String()
	default:
		return "<invalid>"
	}
}

// join renders a token sequence separated by spaces.
func join(toks []Token) string {
	var b strings.Builder
	for i, t := range toks {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(t.String())
	}
	return b.String()
}
