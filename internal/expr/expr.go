// Package expr evaluates the arithmetic expressions allowed inside calc()
// clauses of relative-color syntax: + - * / with the usual precedence,
// parentheses, numeric literals, percentage literals (taken as fractions),
// and bare identifiers resolved against the enclosing color's components.
package expr

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Resolver maps a bare identifier to its numeric value. It is supplied by
// the caller, typically closing over a color's component values.
type Resolver func(name string) (float64, error)

type tokenKind int

const (
	tokenNumber tokenKind = iota
	tokenIdent
	tokenOperator
	tokenLeftParen
	tokenRightParen
)

type token struct {
	kind tokenKind
	text string
	num  float64
}

var precedence = map[string]int{"+": 1, "-": 1, "*": 2, "/": 2}

// Evaluate parses and evaluates one expression. Division by zero follows
// IEEE float semantics rather than erroring.
func Evaluate(input string, resolve Resolver) (float64, error) {
	tokens, err := tokenize(input)
	if err != nil {
		return 0, err
	}
	if len(tokens) == 0 {
		return 0, fmt.Errorf("empty expression")
	}
	postfix, err := toPostfix(tokens)
	if err != nil {
		return 0, err
	}
	return evalPostfix(postfix, resolve)
}

func tokenize(input string) ([]token, error) {
	var tokens []token
	runes := []rune(input)
	for i := 0; i < len(runes); {
		r := runes[i]
		switch {
		case unicode.IsSpace(r):
			i++
		case r == '(':
			tokens = append(tokens, token{kind: tokenLeftParen})
			i++
		case r == ')':
			tokens = append(tokens, token{kind: tokenRightParen})
			i++
		case r == '+' || r == '-' || r == '*' || r == '/':
			tokens = append(tokens, token{kind: tokenOperator, text: string(r)})
			i++
		case unicode.IsDigit(r) || r == '.':
			j := i
			for j < len(runes) && (unicode.IsDigit(runes[j]) || runes[j] == '.') {
				j++
			}
			text := string(runes[i:j])
			n, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, fmt.Errorf("bad number %q", text)
			}
			if j < len(runes) && runes[j] == '%' {
				n /= 100.0
				j++
			}
			tokens = append(tokens, token{kind: tokenNumber, num: n})
			i = j
		case unicode.IsLetter(r):
			j := i
			for j < len(runes) && unicode.IsLetter(runes[j]) {
				j++
			}
			tokens = append(tokens, token{kind: tokenIdent, text: string(runes[i:j])})
			i = j
		default:
			return nil, fmt.Errorf("unexpected character %q", string(r))
		}
	}
	return tokens, nil
}

// toPostfix runs the shunting-yard algorithm over the token stream.
func toPostfix(tokens []token) ([]token, error) {
	var out []token
	var ops []token
	for _, t := range tokens {
		switch t.kind {
		case tokenNumber, tokenIdent:
			out = append(out, t)
		case tokenOperator:
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				if top.kind != tokenOperator || precedence[top.text] < precedence[t.text] {
					break
				}
				out = append(out, top)
				ops = ops[:len(ops)-1]
			}
			ops = append(ops, t)
		case tokenLeftParen:
			ops = append(ops, t)
		case tokenRightParen:
			matched := false
			for len(ops) > 0 {
				top := ops[len(ops)-1]
				ops = ops[:len(ops)-1]
				if top.kind == tokenLeftParen {
					matched = true
					break
				}
				out = append(out, top)
			}
			if !matched {
				return nil, fmt.Errorf("unbalanced parenthesis")
			}
		}
	}
	for len(ops) > 0 {
		top := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		if top.kind == tokenLeftParen {
			return nil, fmt.Errorf("unbalanced parenthesis")
		}
		out = append(out, top)
	}
	return out, nil
}

func evalPostfix(postfix []token, resolve Resolver) (float64, error) {
	var stack []float64
	for _, t := range postfix {
		switch t.kind {
		case tokenNumber:
			stack = append(stack, t.num)
		case tokenIdent:
			if resolve == nil {
				return 0, fmt.Errorf("unknown identifier %q", t.text)
			}
			v, err := resolve(strings.ToLower(t.text))
			if err != nil {
				return 0, err
			}
			stack = append(stack, v)
		case tokenOperator:
			if len(stack) < 2 {
				return 0, fmt.Errorf("operator %q missing operand", t.text)
			}
			b := stack[len(stack)-1]
			a := stack[len(stack)-2]
			stack = stack[:len(stack)-2]
			var v float64
			switch t.text {
			case "+":
				v = a + b
			case "-":
				v = a - b
			case "*":
				v = a * b
			case "/":
				v = a / b
			}
			stack = append(stack, v)
		}
	}
	if len(stack) != 1 {
		return 0, fmt.Errorf("malformed expression")
	}
	return stack[0], nil
}
