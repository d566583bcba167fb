// Package scanner turns Lox source text into a token stream.
package scanner

import (
	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/token"
)

// Scanner turns a source string into a slice of Tokens, reporting lexical
// errors through a diag.Sink instead of a package-global flag.
type Scanner struct {
	src  string
	sink *diag.Sink

	start, current int
	line           int

	tokens []token.Token
}

// New returns a Scanner over src that reports errors to sink.
func New(src string, sink *diag.Sink) *Scanner {
	return &Scanner{src: src, sink: sink, line: 1}
}

// ScanTokens scans the whole source and returns the resulting tokens,
// always terminated by a single EOF token.
func (s *Scanner) ScanTokens() []token.Token {
	for !s.atEnd() {
		s.start = s.current
		s.scanToken()
	}
	s.tokens = append(s.tokens, token.Token{Kind: token.EOF, Line: s.line})
	return s.tokens
}

func (s *Scanner) atEnd() bool { return s.current >= len(s.src) }

func (s *Scanner) advance() byte {
	c := s.src[s.current]
	s.current++
	return c
}

func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.src) {
		return 0
	}
	return s.src[s.current+1]
}

func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.src[s.current] != expected {
		return false
	}
	s.current++
	return true
}

func (s *Scanner) scanToken() {
	c := s.advance()
	switch c {
	case '(':
		s.addToken(token.LeftParen)
	case ')':
		s.addToken(token.RightParen)
	case '{':
		s.addToken(token.LeftBrace)
	case '}':
		s.addToken(token.RightBrace)
	case ',':
		s.addToken(token.Comma)
	case '.':
		s.addToken(token.Dot)
	case '-':
		s.addToken(token.Minus)
	case '+':
		s.addToken(token.Plus)
	case ';':
		s.addToken(token.Semicolon)
	case '*':
		s.addToken(token.Star)
	case '!':
		s.addToken(s.twoChar('=', token.BangEqual, token.Bang))
	case '=':
		s.addToken(s.twoChar('=', token.EqualEqual, token.Equal))
	case '<':
		s.addToken(s.twoChar('=', token.LessEqual, token.Less))
	case '>':
		s.addToken(s.twoChar('=', token.GreaterEqual, token.Greater))
	case '/':
		s.slashOrComment()
	case ' ', '\r', '\t':
		// ignore whitespace
	case '\n':
		s.line++
	case '"':
		s.scanString()
	default:
		switch {
		case isDigit(c):
			s.scanNumber()
		case isAlpha(c):
			s.scanIdentifier()
		default:
			s.sink.Error(s.line, "Unexpected character.")
		}
	}
}

func (s *Scanner) twoChar(second byte, ifMatch, otherwise token.Kind) token.Kind {
	if s.match(second) {
		return ifMatch
	}
	return otherwise
}

func (s *Scanner) slashOrComment() {
	switch {
	case s.match('/'):
		for s.peek() != '\n' && !s.atEnd() {
			s.advance()
		}
	case s.match('*'):
		s.scanBlockComment()
	default:
		s.addToken(token.Slash)
	}
}

// scanBlockComment consumes a non-nesting /* ... */ comment. Lox's block
// comments have one quirk preserved from the original implementation: once
// the closing "*/" is found, only spaces or tabs may follow it before the
// next newline (or end of input); anything else is still reported as
// "Unterminated block comment." even though a terminator was found.
func (s *Scanner) scanBlockComment() {
	for {
		if s.atEnd() {
			s.sink.Error(s.line, "Unterminated block comment.")
			return
		}
		if s.peek() == '\n' {
			s.line++
			s.advance()
			continue
		}
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance()
			s.advance()
			break
		}
		s.advance()
	}

	for s.peek() == ' ' || s.peek() == '\t' {
		s.advance()
	}
	if !s.atEnd() && s.peek() != '\n' {
		s.sink.Error(s.line, "Unterminated block comment.")
	}
}

func (s *Scanner) addToken(kind token.Kind) {
	s.addTokenLiteral(kind, nil)
}

func (s *Scanner) addTokenLiteral(kind token.Kind, literal any) {
	lexeme := s.src[s.start:s.current]
	s.tokens = append(s.tokens, token.Token{Kind: kind, Lexeme: lexeme, Literal: literal, Line: s.line})
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool { return isAlpha(c) || isDigit(c) }
