package parser

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/client9/symkernel/core"
)

// Parser is a recursive-descent parser over the shared token stream,
// precedence-ordered per spec §4.3: equals < comma < sum < product <
// unary < power < application < atom. Grounded on the teacher's
// Pratt-style parser.go (two-token lookahead, an errors slice,
// nextToken advancing current/peek together).
type Parser struct {
	lexer   *Lexer
	cur     Token
	peek    Token
	dialect Dialect
}

func functionArityLookup(name string) ([]int, bool) {
	arities, ok := core.FunctionArity[name]
	return arities, ok
}

// Parse parses input under the given dialect (Auto resolves via Detect)
// and returns the resulting expression or a *core.KernelError.
func Parse(input string, dialect Dialect) (core.Expr, error) {
	if dialect == Auto {
		dialect = Detect(input)
	}
	p := &Parser{lexer: NewLexer(input), dialect: dialect}
	p.next()
	p.next()
	expr, err := p.parseEquation()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != EOF {
		return nil, core.NewErrorAt(core.ErrUnexpectedToken, p.cur.Offset, "unexpected token %q", p.cur.Literal)
	}
	return expr, nil
}

func (p *Parser) next() {
	p.cur = p.peek
	p.peek = p.lexer.NextToken()
}

func (p *Parser) parseEquation() (core.Expr, error) {
	lhs, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.cur.Type == EQUALS {
		p.next()
		rhs, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		return core.Equation(lhs, rhs), nil
	}
	return lhs, nil
}

func (p *Parser) parseSum() (core.Expr, error) {
	left, err := p.parseProduct()
	if err != nil {
		return nil, err
	}
	for p.cur.Type == PLUS || p.cur.Type == MINUS {
		op := p.cur.Type
		p.next()
		right, err := p.parseProduct()
		if err != nil {
			return nil, err
		}
		if op == PLUS {
			left = core.Add(left, right)
		} else {
			left = core.Add(left, core.Neg(right))
		}
	}
	return left, nil
}

func (p *Parser) parseProduct() (core.Expr, error) {
	left, err := p.parseUnary()
	if err != nil {
		return nil, err
	}
	for {
		switch p.cur.Type {
		case STAR:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = core.Mul(left, right)
			continue
		case SLASH:
			p.next()
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			if core.IsNumericExpr(right) {
				if inv, ok := core.NumericPow(right, core.Integer(-1)); ok {
					left = core.Mul(left, inv)
					continue
				}
			}
			left = core.Mul(left, core.Pow(right, core.Integer(-1)))
			continue
		case INT, FLOAT, IDENT, COMMAND, LPAREN:
			// implicit multiplication (spec §4.3): literal/ident/paren/
			// command directly follows a completed factor.
			right, err := p.parseUnary()
			if err != nil {
				return nil, err
			}
			left = core.Mul(left, right)
			continue
		}
		break
	}
	return left, nil
}

func (p *Parser) parseUnary() (core.Expr, error) {
	if p.cur.Type == MINUS {
		p.next()
		operand, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return core.Neg(operand), nil
	}
	if p.cur.Type == PLUS {
		p.next()
		return p.parseUnary()
	}
	return p.parsePower()
}

func (p *Parser) parsePower() (core.Expr, error) {
	base, err := p.parsePostfix()
	if err != nil {
		return nil, err
	}
	if p.cur.Type == CARET {
		p.next()
		// right-associative, and the exponent may itself carry a unary sign
		exp, err := p.parseUnary()
		if err != nil {
			return nil, err
		}
		return core.Pow(base, exp), nil
	}
	return base, nil
}

// parsePostfix handles LaTeX subscripts (x_1, x_{1}) attached to a
// just-parsed identifier, per spec §4.3.
func (p *Parser) parsePostfix() (core.Expr, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if sym, ok := atom.(core.SymbolExpr); ok && p.cur.Type == UNDERSCORE {
		p.next()
		sub, err := p.parseSubscriptText()
		if err != nil {
			return nil, err
		}
		return core.Symbol(sym.Name + "_" + sub), nil
	}
	return atom, nil
}

func (p *Parser) parseSubscriptText() (string, error) {
	if p.cur.Type == LBRACE {
		p.next()
		var parts []string
		for p.cur.Type != RBRACE {
			if p.cur.Type == EOF {
				return "", core.NewErrorAt(core.ErrUnbalancedBracket, p.cur.Offset, "unterminated subscript group")
			}
			parts = append(parts, p.cur.Literal)
			p.next()
		}
		p.next() // consume }
		return strings.Join(parts, ""), nil
	}
	lit := p.cur.Literal
	p.next()
	return lit, nil
}

func (p *Parser) parseAtom() (core.Expr, error) {
	switch p.cur.Type {
	case ILLEGAL:
		return nil, core.NewErrorAt(core.ErrLexError, p.cur.Offset, "unrecognized character %q", p.cur.Literal)
	case INT:
		lit := p.cur.Literal
		p.next()
		n, ok := new(big.Int).SetString(lit, 10)
		if !ok {
			return nil, core.NewError(core.ErrInvalidArgument, "invalid integer literal %q", lit)
		}
		return core.IntegerBig(core.IntFromBig(n)), nil
	case FLOAT:
		lit := p.cur.Literal
		p.next()
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, core.NewError(core.ErrInvalidArgument, "invalid float literal %q", lit)
		}
		return core.Float(f)
	case IDENT:
		return p.parseIdentOrCall()
	case COMMAND:
		return p.parseCommand()
	case LPAREN:
		p.next()
		inner, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		if p.cur.Type != RPAREN {
			return nil, core.NewErrorAt(core.ErrUnbalancedBracket, p.cur.Offset, "expected ')'")
		}
		p.next()
		return inner, nil
	}
	return nil, core.NewErrorAt(core.ErrUnexpectedToken, p.cur.Offset, "unexpected token %q", p.cur.Literal)
}

func (p *Parser) parseIdentOrCall() (core.Expr, error) {
	name := p.cur.Literal
	p.next()

	isCall := false
	fname := name
	if p.dialect == Wolfram && p.cur.Type == LBRACKET {
		isCall = true
		if mapped, ok := wolframHeadNames[name]; ok {
			fname = mapped
		} else {
			fname = strings.ToLower(name[:1]) + name[1:]
		}
	} else if p.cur.Type == LPAREN {
		if _, known := functionArityLookup(strings.ToLower(name)); known {
			isCall = true
			fname = strings.ToLower(name)
		}
	}

	if isCall {
		open := LPAREN
		closeT := RPAREN
		if p.dialect == Wolfram {
			open, closeT = LBRACKET, RBRACKET
		}
		if p.cur.Type != open {
			return nil, core.NewErrorAt(core.ErrUnexpectedToken, p.cur.Offset, "expected function call arguments")
		}
		args, err := p.parseArgList(closeT)
		if err != nil {
			return nil, err
		}
		fn, err := core.Function(fname, args...)
		if err != nil {
			return nil, err
		}
		return fn, nil
	}
	return core.Symbol(name), nil
}

func (p *Parser) parseArgList(closeT TokenType) ([]core.Expr, error) {
	p.next() // consume opening bracket
	var args []core.Expr
	if p.cur.Type == closeT {
		p.next()
		return args, nil
	}
	for {
		arg, err := p.parseSum()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
		if p.cur.Type == COMMA {
			p.next()
			continue
		}
		break
	}
	if p.cur.Type != closeT {
		return nil, core.NewErrorAt(core.ErrUnbalancedBracket, p.cur.Offset, "expected %q", closeT)
	}
	p.next()
	return args, nil
}

// parseCommand handles LaTeX \frac, \sqrt and \name function commands.
func (p *Parser) parseCommand() (core.Expr, error) {
	cmd := p.cur.Literal
	offset := p.cur.Offset
	p.next()

	switch cmd {
	case "\\frac":
		num, err := p.parseBraceGroup()
		if err != nil {
			return nil, err
		}
		den, err := p.parseBraceGroup()
		if err != nil {
			return nil, err
		}
		return core.Mul(num, core.Pow(den, core.Integer(-1))), nil
	case "\\sqrt":
		arg, err := p.parseBraceGroup()
		if err != nil {
			return nil, err
		}
		return core.MustFunction("sqrt", arg), nil
	}

	if fname, ok := latexFunctionNames[cmd]; ok {
		arg, err := p.parseFunctionArgument()
		if err != nil {
			return nil, err
		}
		return core.MustFunction(fname, arg), nil
	}
	return nil, core.NewErrorAt(core.ErrUnknownFunction, offset, "unknown LaTeX command %q", cmd)
}

func (p *Parser) parseBraceGroup() (core.Expr, error) {
	if p.cur.Type != LBRACE {
		return nil, core.NewErrorAt(core.ErrUnbalancedBracket, p.cur.Offset, "expected '{'")
	}
	p.next()
	inner, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if p.cur.Type != RBRACE {
		return nil, core.NewErrorAt(core.ErrUnbalancedBracket, p.cur.Offset, "expected '}'")
	}
	p.next()
	return inner, nil
}

// parseFunctionArgument accepts either a brace group (\sin{x}), a
// parenthesized group (\sin(x)), or a single following unary term
// (\sin x), matching common LaTeX usage.
func (p *Parser) parseFunctionArgument() (core.Expr, error) {
	if p.cur.Type == LBRACE {
		return p.parseBraceGroup()
	}
	return p.parseUnary()
}
