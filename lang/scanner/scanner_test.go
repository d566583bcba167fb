package scanner_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/scanner"
	"github.com/mna/lox/lang/token"
)

func scan(t *testing.T, src string) ([]token.Token, *diag.Sink) {
	t.Helper()
	var buf bytes.Buffer
	sink := diag.New(&buf)
	toks := scanner.New(src, sink).ScanTokens()
	if sink.HadError {
		t.Logf("scanner errors:\n%s", buf.String())
	}
	return toks, sink
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func TestPunctuationAndOperators(t *testing.T) {
	toks, sink := scan(t, "(){},.-+;*! != = == < <= > >=")
	require.False(t, sink.HadError)
	assert.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon, token.Star,
		token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Less, token.LessEqual, token.Greater, token.GreaterEqual,
		token.EOF,
	}, kinds(toks))
}

func TestLineComment(t *testing.T) {
	toks, sink := scan(t, "// a comment\nvar")
	require.False(t, sink.HadError)
	require.Len(t, toks, 2)
	assert.Equal(t, token.Var, toks[0].Kind)
	assert.Equal(t, 2, toks[0].Line)
}

func TestBlockCommentTerminated(t *testing.T) {
	toks, sink := scan(t, "/* hello\nworld */ \nvar")
	require.False(t, sink.HadError)
	require.Len(t, toks, 2)
	assert.Equal(t, token.Var, toks[0].Kind)
	assert.Equal(t, 3, toks[0].Line)
}

func TestBlockCommentUnterminated(t *testing.T) {
	var buf bytes.Buffer
	sink := diag.New(&buf)
	scanner.New("/*\n *hello\n *", sink).ScanTokens()
	assert.True(t, sink.HadError)
	assert.Equal(t, "[line 3] Error : Unterminated block comment.\n", buf.String())
}

func TestBlockCommentTrailingGarbage(t *testing.T) {
	var buf bytes.Buffer
	sink := diag.New(&buf)
	scanner.New("/* hi */x", sink).ScanTokens()
	assert.True(t, sink.HadError)
}

func TestStringLiteral(t *testing.T) {
	toks, sink := scan(t, `"hi there"`)
	require.False(t, sink.HadError)
	require.Len(t, toks, 2)
	assert.Equal(t, token.String, toks[0].Kind)
	assert.Equal(t, "hi there", toks[0].Literal)
}

func TestUnterminatedString(t *testing.T) {
	var buf bytes.Buffer
	sink := diag.New(&buf)
	scanner.New(`"unterminated`, sink).ScanTokens()
	assert.True(t, sink.HadError)
	assert.Contains(t, buf.String(), "Unterminated string.")
}

func TestNumberLiteral(t *testing.T) {
	toks, sink := scan(t, "12.5 7")
	require.False(t, sink.HadError)
	require.Len(t, toks, 3)
	assert.Equal(t, 12.5, toks[0].Literal)
	assert.Equal(t, float64(7), toks[1].Literal)
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks, sink := scan(t, "class fun super this and myVar")
	require.False(t, sink.HadError)
	assert.Equal(t, []token.Kind{
		token.Class, token.Fun, token.Super, token.This, token.And, token.Identifier, token.EOF,
	}, kinds(toks))
}

func TestUnexpectedCharacter(t *testing.T) {
	var buf bytes.Buffer
	sink := diag.New(&buf)
	scanner.New("@", sink).ScanTokens()
	assert.True(t, sink.HadError)
	assert.Equal(t, "[line 1] Error : Unexpected character.\n", buf.String())
}
