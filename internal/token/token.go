package token

import "fmt"

type TokenType string

type Token struct {
	Type    TokenType
	Lexeme  string
	Literal interface{} // int64 for INT, string for STRING and IDENT, message for ILLEGAL
	Line    int
	Column  int
}

func (t Token) String() string {
	switch t.Type {
	case EOF:
		return "end of input"
	case IDENT:
		return fmt.Sprintf("identifier %q", t.Lexeme)
	case INT:
		return "integer " + t.Lexeme
	case STRING:
		return "string " + t.Lexeme
	}
	return fmt.Sprintf("'%s'", t.Lexeme)
}

const (
	ILLEGAL TokenType = "ILLEGAL"
	EOF     TokenType = "EOF"

	// Identifiers + literals
	IDENT  TokenType = "IDENT"
	INT    TokenType = "INT"
	STRING TokenType = "STRING"

	// Operators
	ASSIGN   TokenType = "="
	PLUS     TokenType = "+"
	MINUS    TokenType = "-"
	ASTERISK TokenType = "*"
	SLASH    TokenType = "/"
	PERCENT  TokenType = "%"
	LT       TokenType = "<"
	GT       TokenType = ">"
	EQ       TokenType = "=="

	// Delimiters
	COMMA     TokenType = ","
	SEMICOLON TokenType = ";"
	LPAREN    TokenType = "("
	RPAREN    TokenType = ")"
	LBRACE    TokenType = "{"
	RBRACE    TokenType = "}"

	// Keywords
	FUNCTION TokenType = "FUNCTION"
	IF       TokenType = "IF"
	ELSE     TokenType = "ELSE"
	WHILE    TokenType = "WHILE"
	RETURN   TokenType = "RETURN"
)

var keywords = map[string]TokenType{
	"function": FUNCTION,
	"if":       IF,
	"else":     ELSE,
	"while":    WHILE,
	"return":   RETURN,
}

// LookupIdent reclassifies an identifier as a keyword when it matches one exactly.
func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// KeywordName returns the source spelling of a keyword token type.
func KeywordName(t TokenType) string {
	for name, kw := range keywords {
		if kw == t {
			return name
		}
	}
	return ""
}

// IsKeyword reports whether the name is reserved.
func IsKeyword(name string) bool {
	_, ok := keywords[name]
	return ok
}
