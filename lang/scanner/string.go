package scanner

import "github.com/mna/lox/lang/token"

func (s *Scanner) scanString() {
	startLine := s.line
	for s.peek() != '"' && !s.atEnd() {
		if s.peek() == '\n' {
			s.line++
		}
		s.advance()
	}
	if s.atEnd() {
		s.sink.Error(startLine, "Unterminated string.")
		return
	}
	s.advance() // closing quote

	value := s.src[s.start+1 : s.current-1]
	s.addTokenLiteral(token.String, value)
}
