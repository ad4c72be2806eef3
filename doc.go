// Package calc implements a floating-point calculator for arithmetic
// expressions.
//
// Evaluation happens in three stages. Tokenize scans text into an infix
// sequence of numbers, operators, and brackets. ToPostfix rewrites that
// sequence into postfix order with the shunting-yard algorithm. Postfix.Eval
// reduces the postfix sequence to a single float64 with a value stack. Eval
// does all three at once.
//
// Expressions use the binary operators + - * / % ^, where % is the
// floating-point remainder and ^ is exponentiation, the postfix factorial !,
// and the functions lg (base 10), ln, sin, cos, tan, asin, acos, and atan,
// which must be followed by an open parenthesis. The names pi and e are
// constants. Square brackets group the same way as parentheses. Whitespace
// is ignored everywhere.
//
// All binary operators group to the left, including ^: "2^3^2" is 64.
// Multiplicative operators bind tighter than + and -, ^ binds tighter than
// those, and unary operators bind tighter than everything. A sign directly
// on a number is part of that number, so "-2^2" is 4. A minus sign on
// anything else negates the term it precedes, so "-(2)^2" is also 4. Runs of
// signs reduce to their net sign.
//
// A factorial directly after a function call applies to the call's argument
// rather than its result: "sin(0)!" is sin(1). Bracket the call to take the
// factorial of the result, as in "(sin(0))!".
//
package calc
