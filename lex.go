package calc

import (
	"errors"
	"strconv"
	"strings"
	"unicode"
)

// delimiters contains the runes which end numbers and identifiers.
const delimiters = "+-*/%^!,()[]"

// Infix is a token sequence in infix order, as produced by Tokenize. It is
// consumed by ToPostfix.
type Infix struct {
	toks     []Token
	consumed bool
}

// Len returns the number of tokens in the sequence.
func (in *Infix) Len() int {
	return len(in.toks)
}

// Tokens returns a copy of the tokens in the sequence.
func (in *Infix) Tokens() []Token {
	return append([]Token(nil), in.toks...)
}

// Consumed reports whether the sequence has been converted to postfix.
func (in *Infix) Consumed() bool {
	return in.consumed
}

func (in *Infix) String() string {
	return join(in.toks)
}

type lexer struct {
	// src is the input with whitespace removed.
	src []rune
	// cols holds the column in the original input of each rune of src.
	cols []int
	pos  int
	out  []Token
	cfg  *config
}

// Tokenize scans text into an infix token sequence. Whitespace is ignored
// everywhere, including between the digits of a number. The given options
// are applied in order.
func Tokenize(text string, opts ...Option) (*Infix, error) {
	cfg := newConfig(opts)
	l := lexer{cfg: &cfg}
	col := 0
	for _, r := range text {
		col++
		if unicode.IsSpace(r) {
			continue
		}
		l.src = append(l.src, r)
		l.cols = append(l.cols, col)
	}
	l.out = make([]Token, 0, len(l.src))
	for l.pos < len(l.src) {
		if err := l.item(l.signable()); err != nil {
			return nil, err
		}
	}
	return &Infix{toks: l.out}, nil
}

// emit appends a token scanned at src index i.
func (l *lexer) emit(t Token, i int) {
	t.pos = l.cols[i]
	l.out = append(l.out, t)
}

// signable reports whether a + or - at the current position is a sign rather
// than a binary operator, which is the case at the start of the input, after
// an open bracket, and after any operator that expects an operand to follow.
func (l *lexer) signable() bool {
	if len(l.out) == 0 {
		return true
	}
	t := l.out[len(l.out)-1]
	switch t.kind {
	case KindBracket:
		return t.side == LeftBracket
	case KindBinary:
		return true
	case KindUnary:
		return !t.un.postfix()
	default:
		return false
	}
}

// item scans one item starting at the current position. An item is usually
// one token, but a sign may add a Neg token before the item it applies to.
// signed tells whether + and - are signs here.
func (l *lexer) item(signed bool) error {
	i := l.pos
	r := l.src[i]
	switch r {
	case '(', '[':
		l.pos++
		l.emit(BracketToken(LeftBracket), i)
	case ')', ']':
		l.pos++
		l.emit(BracketToken(RightBracket), i)
	case '+', '-':
		if signed {
			return l.sign(r == '-')
		}
		l.pos++
		l.emit(BinaryToken(binop(r)), i)
	case '*', '/', '%', '^':
		l.pos++
		l.emit(BinaryToken(binop(r)), i)
	case '!':
		l.pos++
		l.emit(UnaryToken(Factorial), i)
	case ',':
		return &ParseError{Col: l.cols[i], Text: ","}
	default:
		if r == '.' || '0' <= r && r <= '9' {
			text, ok := l.number()
			if ok {
				v, err := strconv.ParseFloat(text, 64)
				if err != nil && !errors.Is(err, strconv.ErrRange) {
					return &ParseError{Col: l.cols[i], Text: text, Kind: "number"}
				}
				l.emit(NumberToken(v), i)
				return nil
			}
			// Names never start with a digit or dot, so the whole run is a
			// bad number.
			return &ParseError{Col: l.cols[i], Text: l.ident(i), Kind: "number"}
		}
		return l.name(i)
	}
	return nil
}

// sign scans a run of signs and the item it applies to. Only the parity of
// the run matters. A sign on a number is folded into its value. A net minus on
// anything else becomes one Neg operator, and a net plus is dropped. A run at
// the end of the input leaves its last sign as a binary operator missing its
// operands.
func (l *lexer) sign(neg bool) error {
	i := l.pos
	l.pos++
	if l.pos == len(l.src) {
		l.emit(BinaryToken(binop(l.src[i])), i)
		return nil
	}
	// The last rune of the input is never taken as a sign, so a trailing run
	// still ends with an operator.
	for l.pos+1 < len(l.src) && (l.src[l.pos] == '+' || l.src[l.pos] == '-') {
		if l.src[l.pos] == '-' {
			neg = !neg
		}
		l.pos++
	}
	at := len(l.out)
	if err := l.item(false); err != nil {
		return err
	}
	if len(l.out) == at+1 && l.out[at].kind == KindNumber {
		if neg {
			l.out[at].num = -l.out[at].num
		}
		l.out[at].pos = l.cols[i]
		return nil
	}
	if neg {
		// item emits at most one token, so this moves at most one.
		l.out = append(l.out, Token{})
		copy(l.out[at+1:], l.out[at:])
		l.out[at] = UnaryToken(Neg)
		l.out[at].pos = l.cols[i]
	}
	return nil
}

// number scans a run of digits and dots. The result is the text of the run
// and whether it is well-formed, i.e. has at most one dot and ends at a
// delimiter or the end of the input.
func (l *lexer) number() (string, bool) {
	start := l.pos
	dot := false
	for ; l.pos < len(l.src); l.pos++ {
		r := l.src[l.pos]
		if r == '.' {
			if dot {
				return string(l.src[start:l.pos]), false
			}
			dot = true
			continue
		}
		if r < '0' || '9' < r {
			break
		}
	}
	text := string(l.src[start:l.pos])
	if l.pos == len(l.src) {
		return text, true
	}
	return text, strings.ContainsRune(delimiters, l.src[l.pos])
}

// ident advances past the end of a name and returns its text, which begins
// at src index start.
func (l *lexer) ident(start int) string {
	for l.pos < len(l.src) && !strings.ContainsRune(delimiters, l.src[l.pos]) {
		l.pos++
	}
	return string(l.src[start:l.pos])
}

// name scans a function or constant name beginning at src index start. A name
// directly followed by an open parenthesis is a function; anything else is a
// constant.
func (l *lexer) name(start int) error {
	text := l.ident(start)
	if l.pos < len(l.src) && l.src[l.pos] == '(' {
		op, ok := l.cfg.funcs[text]
		if !ok {
			return &ParseError{Col: l.cols[start], Text: text, Kind: "function"}
		}
		l.emit(UnaryToken(op), start)
		return nil
	}
	v, ok := l.cfg.consts[text]
	if !ok {
		return &ParseError{Col: l.cols[start], Text: text, Kind: "constant"}
	}
	l.emit(NumberToken(v), start)
	return nil
}

// binop gets the binary operator for an operator rune.
func binop(r rune) BinaryOp {
	switch r {
	case '+':
		return Add
	case '-':
		return Sub
	case '*':
		return Mul
	case '/':
		return Div
	case '%':
		return Mod
	case '^':
		return Pow
	default:
		return NoBinary
	}
}
