package scanner

import (
	"strconv"

	"github.com/mna/lox/lang/token"
)

func (s *Scanner) scanNumber() {
	for isDigit(s.peek()) {
		s.advance()
	}
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()
		for isDigit(s.peek()) {
			s.advance()
		}
	}

	lexeme := s.src[s.start:s.current]
	v, err := strconv.ParseFloat(lexeme, 64)
	if err != nil {
		s.sink.Error(s.line, "Invalid number literal.")
		return
	}
	s.addTokenLiteral(token.Number, v)
}
