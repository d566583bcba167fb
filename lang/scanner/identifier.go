package scanner

import "github.com/mna/lox/lang/token"

func (s *Scanner) scanIdentifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}
	lexeme := s.src[s.start:s.current]
	if kind, ok := token.Keywords[lexeme]; ok {
		s.addToken(kind)
		return
	}
	s.addToken(token.Identifier)
}
