package lexer

import (
	"testing"

	"github.com/jink-lang/jink/pkg/token"
)

func TestNextTokenDeclarations(t *testing.T) {
	input := `type Point(x: int, y: int);
b = Point { x = 15, y = 14 };
b.x`

	tests := []struct {
		expectedLiteral string
		expectedType    token.Type
	}{
		{"type", token.TYPE},
		{"Point", token.IDENT},
		{"(", token.LPAREN},
		{"x", token.IDENT},
		{":", token.COLON},
		{"int", token.IDENT},
		{",", token.COMMA},
		{"y", token.IDENT},
		{":", token.COLON},
		{"int", token.IDENT},
		{")", token.RPAREN},
		{";", token.SEMI},
		{"b", token.IDENT},
		{"=", token.ASSIGN},
		{"Point", token.IDENT},
		{"{", token.LBRACE},
		{"x", token.IDENT},
		{"=", token.ASSIGN},
		{"15", token.INT},
		{",", token.COMMA},
		{"y", token.IDENT},
		{"=", token.ASSIGN},
		{"14", token.INT},
		{"}", token.RBRACE},
		{";", token.SEMI},
		{"b", token.IDENT},
		{".", token.DOT},
		{"x", token.IDENT},
		{"", token.EOF},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - type wrong. expected=%q, got=%q (literal=%q)", i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestNextTokenKeywordsAndFunc(t *testing.T) {
	input := `func add(a: int, b: int) -> int { mut total = a; return total; } incl "math" as m @dump true false`

	tests := []struct {
		expectedLiteral string
		expectedType    token.Type
	}{
		{"func", token.FUNC},
		{"add", token.IDENT},
		{"(", token.LPAREN},
		{"a", token.IDENT},
		{":", token.COLON},
		{"int", token.IDENT},
		{",", token.COMMA},
		{"b", token.IDENT},
		{":", token.COLON},
		{"int", token.IDENT},
		{")", token.RPAREN},
		{"->", token.ARROW},
		{"int", token.IDENT},
		{"{", token.LBRACE},
		{"mut", token.MUT},
		{"total", token.IDENT},
		{"=", token.ASSIGN},
		{"a", token.IDENT},
		{";", token.SEMI},
		{"return", token.RETURN},
		{"total", token.IDENT},
		{";", token.SEMI},
		{"}", token.RBRACE},
		{"incl", token.INCL},
		{"math", token.STRING},
		{"as", token.AS},
		{"m", token.IDENT},
		{"@", token.AT},
		{"dump", token.IDENT},
		{"true", token.TRUE},
		{"false", token.FALSE},
		{"", token.EOF},
	}

	l := New(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - type wrong. expected=%q, got=%q (literal=%q)", i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.expectedLiteral, tok.Literal)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	l := New(`"a\nb\t\"c\"\\d"`)
	tok := l.NextToken()
	if tok.Type != token.STRING {
		t.Fatalf("expected STRING, got %s", tok.Type)
	}
	want := "a\nb\t\"c\"\\d"
	if tok.Literal != want {
		t.Fatalf("expected %q, got %q", want, tok.Literal)
	}
}

func TestCharLiteral(t *testing.T) {
	l := New(`'x' '\n'`)
	tok := l.NextToken()
	if tok.Type != token.CHAR || tok.Literal != "x" {
		t.Fatalf("expected CHAR 'x', got %s %q", tok.Type, tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != token.CHAR || tok.Literal != "\n" {
		t.Fatalf("expected CHAR newline, got %s %q", tok.Type, tok.Literal)
	}
}

func TestFloatLiteral(t *testing.T) {
	l := New(`3.14`)
	tok := l.NextToken()
	if tok.Type != token.FLOAT || tok.Literal != "3.14" {
		t.Fatalf("expected FLOAT 3.14, got %s %q", tok.Type, tok.Literal)
	}
}

func TestNegativeIntLiteral(t *testing.T) {
	l := New(`-5`)
	tok := l.NextToken()
	if tok.Type != token.INT || tok.Literal != "-5" {
		t.Fatalf("expected INT -5, got %s %q", tok.Type, tok.Literal)
	}
}

func TestNegativeFloatLiteral(t *testing.T) {
	l := New(`-3.14`)
	tok := l.NextToken()
	if tok.Type != token.FLOAT || tok.Literal != "-3.14" {
		t.Fatalf("expected FLOAT -3.14, got %s %q", tok.Type, tok.Literal)
	}
}

func TestArrowStillLexedOverNegativeNumber(t *testing.T) {
	l := New(`->`)
	tok := l.NextToken()
	if tok.Type != token.ARROW || tok.Literal != "->" {
		t.Fatalf("expected ARROW, got %s %q", tok.Type, tok.Literal)
	}
}

func TestLineCommentSkipped(t *testing.T) {
	l := New("// a comment\nx")
	tok := l.NextToken()
	if tok.Type != token.IDENT || tok.Literal != "x" {
		t.Fatalf("expected IDENT x after comment, got %s %q", tok.Type, tok.Literal)
	}
}

func TestIllegalCharacterRecorded(t *testing.T) {
	l := New("$")
	tok := l.NextToken()
	if tok.Type != token.ILLEGAL {
		t.Fatalf("expected ILLEGAL, got %s", tok.Type)
	}
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 lex error, got %d", len(l.Errors()))
	}
}

func TestUnterminatedStringRecordsError(t *testing.T) {
	l := New(`"abc`)
	l.NextToken()
	if len(l.Errors()) != 1 {
		t.Fatalf("expected 1 lex error, got %d", len(l.Errors()))
	}
}
