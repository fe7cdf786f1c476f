// Package parser implements jink's parser using Pratt parsing for the
// postfix operators — member access, call, and type instantiation — the
// same prefix/infix function-table shape as the teacher's internal/parser,
// cut down to jink's much smaller grammar: no binary operators, so there is
// only one meaningful precedence band above LOWEST.
package parser

import (
	"fmt"

	"github.com/jink-lang/jink/internal/errs"
	"github.com/jink-lang/jink/internal/instruction"
	"github.com/jink-lang/jink/internal/lexer"
	"github.com/jink-lang/jink/internal/value"
	"github.com/jink-lang/jink/pkg/token"
)

// Precedence levels. jink has no infix arithmetic in the core grammar, so
// only LOWEST and POSTFIX (member access, call, instantiation) are needed.
const (
	_ int = iota
	LOWEST
	POSTFIX
)

var precedences = map[token.Type]int{
	token.DOT:    POSTFIX,
	token.LPAREN: POSTFIX,
	token.LBRACE: POSTFIX,
}

type prefixParseFn func() instruction.Node
type infixParseFn func(instruction.Node) instruction.Node

// directiveNames is the fixed set of interpreter instructions recognized
// after "@". Anything else is a parse-time error.
var directiveNames = map[string]instruction.Directive{
	"dump":  instruction.DirectiveDump,
	"quit":  instruction.DirectiveQuit,
	"ir":    instruction.DirectiveIr,
	"error": instruction.DirectiveError,
}

// Parser is jink's recursive-descent/Pratt parser over a token stream.
type Parser struct {
	l *lexer.Lexer

	curToken  token.Token
	peekToken token.Token

	errors []*errs.Error

	prefixFns map[token.Type]prefixParseFn
	infixFns  map[token.Type]infixParseFn
}

// New builds a Parser reading from l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l}

	p.prefixFns = map[token.Type]prefixParseFn{
		token.INT:    p.parseIntLiteral,
		token.FLOAT:  p.parseFloatLiteral,
		token.STRING: p.parseStringLiteral,
		token.CHAR:   p.parseCharLiteral,
		token.TRUE:   p.parseBoolLiteral,
		token.FALSE:  p.parseBoolLiteral,
		token.IDENT:  p.parseIdentifier,
		token.LPAREN: p.parseGroupedExpression,
	}
	p.infixFns = map[token.Type]infixParseFn{
		token.DOT:    p.parseFieldAccess,
		token.LPAREN: p.parseCallArgs,
		token.LBRACE: p.parseTypeInstantiation,
	}

	p.nextToken()
	p.nextToken()
	return p
}

// Errors returns every parse-time diagnostic accumulated so far.
func (p *Parser) Errors() []*errs.Error { return p.errors }

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.Type) bool  { return p.curToken.Type == t }
func (p *Parser) peekTokenIs(t token.Type) bool { return p.peekToken.Type == t }

func (p *Parser) expectPeek(t token.Type) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

func (p *Parser) peekError(t token.Type) {
	p.errorf("expected next token to be %s, got %s instead", t, p.peekToken.Type)
}

func (p *Parser) errorf(format string, args ...any) {
	e := errs.Newf(errs.Parsing, p.curToken.Literal, format, args...)
	e.WithPos(p.curToken.Pos.Line, p.curToken.Pos.Column, p.curToken.Literal)
	p.errors = append(p.errors, e)
}

// validIdent reports a parse error and returns false if name is not a
// well-formed identifier (value.IsValidIdentifier): at least one alphabetic
// character, no reserved keyword spelling. Reserved spellings never arrive
// as an IDENT token — the lexer already classifies them under their own
// keyword token types — but several callers take the name from whatever
// token is current, so this catches both names like "_123" that are all
// digits and underscores and keyword spellings in a name position.
func (p *Parser) validIdent(name string) bool {
	if value.IsValidIdentifier(name) {
		return true
	}
	p.errorf("invalid identifier: %q", name)
	return false
}

func (p *Parser) peekPrecedence() int {
	if pr, ok := precedences[p.peekToken.Type]; ok {
		return pr
	}
	return LOWEST
}

// ParseProgram parses a full top-level program: a sequence of
// declarations and statements until EOF.
func (p *Parser) ParseProgram() []instruction.Node {
	var nodes []instruction.Node
	for !p.curTokenIs(token.EOF) {
		n := p.parseStatement()
		if n != nil {
			nodes = append(nodes, n)
		}
		p.nextToken()
	}
	return nodes
}

// Factory implements include.Parser: it parses an included file's source
// as a standalone sequence of top-level instructions, the same grammar
// ParseProgram uses, so an included file is not required to wrap its
// declarations in any extra syntax. Factory is stateless — a fresh Parser
// is built per call — so a single zero-value Factory serves every include.
type Factory struct{}

func (Factory) ParseInstructions(source string) ([]instruction.Node, []*errs.Error) {
	p := New(lexer.New(source))
	nodes := p.ParseProgram()
	return nodes, p.Errors()
}

func (p *Parser) parseStatement() instruction.Node {
	switch p.curToken.Type {
	case token.TYPE:
		return p.parseTypeDecl()
	case token.FUNC:
		return p.parseFuncDecl()
	case token.INCL:
		return p.parseInclude()
	case token.RETURN:
		return p.parseReturn()
	case token.AT:
		return p.parseDirective()
	case token.MUT:
		return p.parseVarAssign(true)
	case token.IDENT:
		if p.peekTokenIs(token.ASSIGN) {
			return p.parseVarAssign(false)
		}
		return p.parseExpressionStatement()
	case token.SEMI:
		return nil
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseExpressionStatement() instruction.Node {
	expr := p.parseExpression(LOWEST)
	if p.peekTokenIs(token.SEMI) {
		p.nextToken()
	}
	return expr
}

func (p *Parser) parseExpression(precedence int) instruction.Node {
	prefix, ok := p.prefixFns[p.curToken.Type]
	if !ok {
		p.errorf("no expression can start with %s", p.curToken.Type)
		return nil
	}
	left := prefix()

	for !p.peekTokenIs(token.SEMI) && precedence < p.peekPrecedence() {
		infix, ok := p.infixFns[p.peekToken.Type]
		if !ok {
			return left
		}
		p.nextToken()
		left = infix(left)
	}
	return left
}

func (p *Parser) parseIntLiteral() instruction.Node {
	var n int64
	neg := false
	lit := p.curToken.Literal
	if len(lit) > 0 && lit[0] == '-' {
		neg = true
		lit = lit[1:]
	}
	for _, r := range lit {
		n = n*10 + int64(r-'0')
	}
	if neg {
		n = -n
	}
	return instruction.NewIntConstant(n, p.curToken.Literal)
}

func (p *Parser) parseFloatLiteral() instruction.Node {
	var f float64
	fmt.Sscanf(p.curToken.Literal, "%g", &f)
	return instruction.NewFloatConstant(f, p.curToken.Literal)
}

func (p *Parser) parseStringLiteral() instruction.Node {
	return instruction.NewStringConstant(p.curToken.Literal, p.curToken.Literal)
}

func (p *Parser) parseCharLiteral() instruction.Node {
	r := []rune(p.curToken.Literal)[0]
	return instruction.NewCharConstant(r, p.curToken.Literal)
}

func (p *Parser) parseBoolLiteral() instruction.Node {
	return instruction.NewBoolConstant(p.curTokenIs(token.TRUE), p.curToken.Literal)
}

func (p *Parser) parseIdentifier() instruction.Node {
	return instruction.NewVarOrEmptyType(p.curToken.Literal)
}

func (p *Parser) parseGroupedExpression() instruction.Node {
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return expr
}

func (p *Parser) parseFieldAccess(left instruction.Node) instruction.Node {
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	return instruction.NewFieldAccess(left, p.curToken.Literal)
}

// calleeName extracts the bare identifier a call or instantiation applies
// to. The parser only ever reaches these infix handlers with a
// VarOrEmptyType on the left, since that is the only prefix production for
// a bare name.
func calleeName(left instruction.Node) (string, bool) {
	v, ok := left.(*instruction.VarOrEmptyType)
	if !ok {
		return "", false
	}
	return v.Name, true
}

func (p *Parser) parseCallArgs(left instruction.Node) instruction.Node {
	name, ok := calleeName(left)
	if !ok {
		p.errorf("function call target must be a bare name")
		return nil
	}

	var args []instruction.Node
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return instruction.NewFunctionCall(name, args)
	}

	p.nextToken()
	args = append(args, p.parseExpression(LOWEST))
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		p.nextToken()
		args = append(args, p.parseExpression(LOWEST))
	}

	if !p.expectPeek(token.RPAREN) {
		return nil
	}
	return instruction.NewFunctionCall(name, args)
}

func (p *Parser) parseTypeInstantiation(left instruction.Node) instruction.Node {
	name, ok := calleeName(left)
	if !ok {
		p.errorf("type instantiation target must be a bare name")
		return nil
	}

	typ := value.NewTypeId(name)

	var fields []instruction.FieldInit
	if p.peekTokenIs(token.RBRACE) {
		p.nextToken()
		return instruction.NewTypeInstantiation(&typ, fields)
	}

	field := func() instruction.FieldInit {
		p.nextToken()
		fieldName := p.curToken.Literal
		p.validIdent(fieldName)
		if !p.expectPeek(token.ASSIGN) {
			return instruction.FieldInit{}
		}
		p.nextToken()
		return instruction.FieldInit{Name: fieldName, Value: p.parseExpression(LOWEST)}
	}

	fields = append(fields, field())
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		fields = append(fields, field())
	}

	if !p.expectPeek(token.RBRACE) {
		return nil
	}
	return instruction.NewTypeInstantiation(&typ, fields)
}

func (p *Parser) parseVarAssign(mutable bool) instruction.Node {
	if mutable {
		p.nextToken() // consume "mut"
	}
	name := p.curToken.Literal
	p.validIdent(name)
	if !p.expectPeek(token.ASSIGN) {
		return nil
	}
	p.nextToken()
	value := p.parseExpression(LOWEST)
	if p.peekTokenIs(token.SEMI) {
		p.nextToken()
	}
	return instruction.NewVarAssign(name, mutable, value)
}

func (p *Parser) parseReturn() instruction.Node {
	if p.peekTokenIs(token.SEMI) {
		p.nextToken()
		return instruction.NewReturn(nil)
	}
	p.nextToken()
	expr := p.parseExpression(LOWEST)
	if p.peekTokenIs(token.SEMI) {
		p.nextToken()
	}
	return instruction.NewReturn(expr)
}

func (p *Parser) parseInclude() instruction.Node {
	if !p.expectPeek(token.STRING) {
		return nil
	}
	path := p.curToken.Literal
	alias := ""
	if p.peekTokenIs(token.AS) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		alias = p.curToken.Literal
		p.validIdent(alias)
	}
	if p.peekTokenIs(token.SEMI) {
		p.nextToken()
	}
	return instruction.NewInclude(path, alias)
}

func (p *Parser) parseDirective() instruction.Node {
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name, ok := directiveNames[p.curToken.Literal]
	if !ok {
		p.errorf("unknown interpreter directive: %s", p.curToken.Literal)
		return nil
	}

	var args []instruction.Node
	if p.peekTokenIs(token.LPAREN) {
		p.nextToken()
		if p.peekTokenIs(token.RPAREN) {
			p.nextToken()
		} else {
			p.nextToken()
			args = append(args, p.parseExpression(LOWEST))
			for p.peekTokenIs(token.COMMA) {
				p.nextToken()
				p.nextToken()
				args = append(args, p.parseExpression(LOWEST))
			}
			if !p.expectPeek(token.RPAREN) {
				return nil
			}
		}
	}

	if p.peekTokenIs(token.SEMI) {
		p.nextToken()
	}
	return instruction.NewJkInst(name, args)
}

func (p *Parser) parseDecArgs() []value.DecArg {
	var args []value.DecArg
	if p.peekTokenIs(token.RPAREN) {
		p.nextToken()
		return args
	}

	parseOne := func() value.DecArg {
		p.nextToken()
		name := p.curToken.Literal
		p.validIdent(name)
		p.expectPeek(token.COLON)
		p.nextToken()
		typ := value.NewTypeId(p.curToken.Literal)
		return value.NewDecArg(name, typ)
	}

	args = append(args, parseOne())
	for p.peekTokenIs(token.COMMA) {
		p.nextToken()
		args = append(args, parseOne())
	}
	p.expectPeek(token.RPAREN)
	return args
}

func (p *Parser) parseTypeDecl() instruction.Node {
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	p.validIdent(name)
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	fields := p.parseDecArgs()
	if p.peekTokenIs(token.SEMI) {
		p.nextToken()
	}
	return instruction.NewTypeDecl(value.NewTypeDec(name, fields))
}

func (p *Parser) parseFuncDecl() instruction.Node {
	if !p.expectPeek(token.IDENT) {
		return nil
	}
	name := p.curToken.Literal
	p.validIdent(name)
	if !p.expectPeek(token.LPAREN) {
		return nil
	}
	params := p.parseDecArgs()

	var ret *value.TypeId
	if p.peekTokenIs(token.ARROW) {
		p.nextToken()
		if !p.expectPeek(token.IDENT) {
			return nil
		}
		t := value.NewTypeId(p.curToken.Literal)
		ret = &t
	}

	if !p.expectPeek(token.LBRACE) {
		return nil
	}
	body := p.parseBlock()
	return instruction.NewFuncDecl(instruction.NewFunctionDec(name, params, ret, body))
}

func (p *Parser) parseBlock() *instruction.Block {
	var instrs []instruction.Node
	p.nextToken()
	for !p.curTokenIs(token.RBRACE) && !p.curTokenIs(token.EOF) {
		n := p.parseStatement()
		if n != nil {
			instrs = append(instrs, n)
		}
		p.nextToken()
	}
	return instruction.NewBlock(instrs)
}
