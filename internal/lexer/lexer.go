package lexer

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/funvibe/sim/internal/diagnostics"
	"github.com/funvibe/sim/internal/token"
)

type Lexer struct {
	input        string
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           byte // current char under examination
	line         int  // current line number
	column       int  // current column number
}

func New(input string) *Lexer {
	l := &Lexer{input: input, line: 1, column: 0}
	l.readChar()
	return l
}

// Tokenize scans the whole input. The returned slice always ends with a
// single EOF token. Scanning stops at the first illegal token.
func Tokenize(input string) ([]token.Token, error) {
	l := New(input)
	var tokens []token.Token
	for {
		tok := l.NextToken()
		if tok.Type == token.ILLEGAL {
			msg, _ := tok.Literal.(string)
			return nil, diagnostics.NewError(diagnostics.ErrL001, tok, msg)
		}
		tokens = append(tokens, tok)
		if tok.Type == token.EOF {
			return tokens, nil
		}
	}
}

func (l *Lexer) readChar() {
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}

	if l.readPosition >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPosition]
	}
	l.position = l.readPosition
	l.readPosition++
	l.column++
}

func (l *Lexer) peekChar() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) atEnd() bool {
	return l.position >= len(l.input)
}

func (l *Lexer) NextToken() token.Token {
	var tok token.Token

	l.skipWhitespace()

	switch l.ch {
	case '=':
		// == must win over =
		if l.peekChar() == '=' {
			line, col := l.line, l.column
			l.readChar()
			tok = token.Token{Type: token.EQ, Lexeme: "==", Literal: "==", Line: line, Column: col}
		} else {
			tok = newToken(token.ASSIGN, l.ch, l.line, l.column)
		}
	case '+':
		tok = newToken(token.PLUS, l.ch, l.line, l.column)
	case '-':
		tok = newToken(token.MINUS, l.ch, l.line, l.column)
	case '*':
		tok = newToken(token.ASTERISK, l.ch, l.line, l.column)
	case '/':
		tok = newToken(token.SLASH, l.ch, l.line, l.column)
	case '%':
		tok = newToken(token.PERCENT, l.ch, l.line, l.column)
	case '<':
		tok = newToken(token.LT, l.ch, l.line, l.column)
	case '>':
		tok = newToken(token.GT, l.ch, l.line, l.column)
	case ',':
		tok = newToken(token.COMMA, l.ch, l.line, l.column)
	case ';':
		tok = newToken(token.SEMICOLON, l.ch, l.line, l.column)
	case '(':
		tok = newToken(token.LPAREN, l.ch, l.line, l.column)
	case ')':
		tok = newToken(token.RPAREN, l.ch, l.line, l.column)
	case '{':
		tok = newToken(token.LBRACE, l.ch, l.line, l.column)
	case '}':
		tok = newToken(token.RBRACE, l.ch, l.line, l.column)
	case '"':
		return l.readString()
	case 0:
		if l.atEnd() {
			return token.Token{Type: token.EOF, Lexeme: "", Line: l.line, Column: l.column}
		}
		tok = illegal(fmt.Sprintf("unexpected character %q", l.ch), string(l.ch), l.line, l.column)
	default:
		if isLetter(l.ch) {
			line, col := l.line, l.column
			lexeme := l.readIdentifier()
			return token.Token{Type: token.LookupIdent(lexeme), Lexeme: lexeme, Literal: lexeme, Line: line, Column: col}
		} else if isDigit(l.ch) {
			return l.readNumber()
		}
		r, _ := utf8.DecodeRuneInString(l.input[l.position:])
		tok = illegal(fmt.Sprintf("unexpected character %q", r), string(r), l.line, l.column)
	}

	l.readChar()
	return tok
}

// readString reads a double-quoted literal. There are no escape sequences;
// the quotes are not part of the value.
func (l *Lexer) readString() token.Token {
	line, col := l.line, l.column
	start := l.position
	for {
		l.readChar()
		if l.ch == '"' {
			break
		}
		if l.atEnd() {
			return illegal("unterminated string literal", l.input[start:], line, col)
		}
	}
	value := l.input[start+1 : l.position]
	lexeme := l.input[start : l.position+1]
	l.readChar() // closing quote
	return token.Token{Type: token.STRING, Lexeme: lexeme, Literal: value, Line: line, Column: col}
}

func (l *Lexer) readIdentifier() string {
	position := l.position
	for isLetter(l.ch) || isDigit(l.ch) {
		l.readChar()
	}
	return l.input[position:l.position]
}

func (l *Lexer) readNumber() token.Token {
	line, col := l.line, l.column
	position := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	lexeme := l.input[position:l.position]

	val, err := strconv.ParseInt(lexeme, 10, 64)
	if err != nil {
		return illegal(fmt.Sprintf("integer literal %s does not fit in 64 bits", lexeme), lexeme, line, col)
	}
	return token.Token{Type: token.INT, Lexeme: lexeme, Literal: val, Line: line, Column: col}
}

func (l *Lexer) skipWhitespace() {
	for {
		for l.ch == ' ' || l.ch == '\t' || l.ch == '\r' || l.ch == '\n' {
			l.readChar()
		}
		if l.ch == '/' && l.peekChar() == '/' {
			for l.ch != '\n' && !l.atEnd() {
				l.readChar()
			}
			continue
		}
		break
	}
}

func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func newToken(tokenType token.TokenType, ch byte, line, col int) token.Token {
	literal := string(ch)
	return token.Token{Type: tokenType, Lexeme: literal, Literal: literal, Line: line, Column: col}
}

func illegal(msg, lexeme string, line, col int) token.Token {
	return token.Token{Type: token.ILLEGAL, Lexeme: lexeme, Literal: msg, Line: line, Column: col}
}
