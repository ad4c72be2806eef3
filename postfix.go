package calc

// Postfix is a token sequence in postfix order, ready for evaluation. A
// Postfix is never modified after creation, so it is safe to evaluate it any
// number of times from any number of goroutines.
type Postfix struct {
	toks []Token
}

// NewPostfix creates a postfix sequence from tokens built by the caller. The
// tokens are copied. The sequence is not checked until it is evaluated.
func NewPostfix(toks ...Token) *Postfix {
	return &Postfix{toks: append([]Token(nil), toks...)}
}

// Len returns the number of tokens in the sequence.
func (p *Postfix) Len() int {
	return len(p.toks)
}

// Tokens returns a copy of the tokens in the sequence.
func (p *Postfix) Tokens() []Token {
	return append([]Token(nil), p.toks...)
}

func (p *Postfix) String() string {
	return join(p.toks)
}

// ToPostfix converts an infix sequence to postfix order using the
// shunting-yard algorithm. The tokens of in are moved into the result, so in
// is empty afterward, whether or not the conversion succeeds. Converting an
// already consumed sequence returns ErrConsumed.
//
// Binary operators of equal precedence group to the left, including ^, so
// 2^3^2 is (2^3)^2. Unary operators bind tighter than any binary operator.
func ToPostfix(in *Infix) (*Postfix, error) {
	if in == nil || in.consumed {
		return nil, ErrConsumed
	}
	toks := in.toks
	in.toks, in.consumed = nil, true

	out := make([]Token, 0, len(toks))
	var stack []Token
	for _, tok := range toks {
		switch tok.kind {
		case KindNumber:
			out = append(out, tok)
		case KindBracket:
			if tok.side == LeftBracket {
				stack = append(stack, tok)
				continue
			}
			for {
				if len(stack) == 0 {
					return nil, &BracketError{Col: tok.pos, Side: RightBracket}
				}
				top := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if top.kind == KindBracket {
					break
				}
				out = append(out, top)
			}
		case KindUnary:
			stack = append(stack, tok)
		case KindBinary:
			for len(stack) > 0 {
				top := stack[len(stack)-1]
				if top.kind == KindBracket {
					break
				}
				if top.kind == KindBinary && tok.bin.prec() > top.bin.prec() {
					break
				}
				out = append(out, top)
				stack = stack[:len(stack)-1]
			}
			stack = append(stack, tok)
		default:
			panic("calc: invalid token in infix sequence: " + tok.String())
		}
	}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if top.kind == KindBracket {
			return nil, &BracketError{Col: top.pos, Side: LeftBracket}
		}
		out = append(out, top)
	}
	return &Postfix{toks: out}, nil
}
