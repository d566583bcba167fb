package interpreter_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mna/lox/lang/diag"
	"github.com/mna/lox/lang/interpreter"
	"github.com/mna/lox/lang/parser"
	"github.com/mna/lox/lang/resolver"
	"github.com/mna/lox/lang/scanner"
)

func run(t *testing.T, src string) (string, error, *diag.Sink) {
	t.Helper()
	var out bytes.Buffer
	var diagBuf bytes.Buffer
	sink := diag.New(&diagBuf)

	toks := scanner.New(src, sink).ScanTokens()
	require.False(t, sink.HadError, "scan errors: %s", diagBuf.String())
	stmts := parser.New(toks, sink).Parse()
	require.False(t, sink.HadError, "parse errors: %s", diagBuf.String())
	locals := resolver.New(sink).Resolve(stmts)
	require.False(t, sink.HadError, "resolve errors: %s", diagBuf.String())

	in := interpreter.New(&out)
	in.SetLocals(locals)
	err := in.Interpret(stmts)
	return out.String(), err, sink
}

func TestArithmeticAndComparison(t *testing.T) {
	out, err, _ := run(t, `print 8*9*9 == 0;`)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestUnaryMinusOnNonNumberIsRuntimeError(t *testing.T) {
	_, err, _ := run(t, `-"hello";`)
	require.Error(t, err)
	assert.Equal(t, "Operand must be a number.", err.Error())
}

func TestBlockScopingShadowsOuterVariable(t *testing.T) {
	out, err, _ := run(t, `var a=1; { var a=2; print a; } print a;`)
	require.NoError(t, err)
	assert.Equal(t, "2\n1\n", out)
}

func TestClosureCapturesMutableUpvalue(t *testing.T) {
	out, err, _ := run(t, `
fun counter() {
  var i = 0;
  fun inc() { i = i + 1; return i; }
  return inc;
}
var c = counter();
print c();
print c();
`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n", out)
}

func TestSingleInheritanceAndSuper(t *testing.T) {
	out, err, _ := run(t, `
class A { m() { print "A.m"; } }
class B < A { m() { super.m(); print "B.m"; } }
B().m();
`)
	require.NoError(t, err)
	assert.Equal(t, "A.m\nB.m\n", out)
}

func TestInitializerSetsFields(t *testing.T) {
	out, err, _ := run(t, `
class P { init(x) { this.x = x; } }
var p = P(7);
print p.x;
`)
	require.NoError(t, err)
	assert.Equal(t, "7\n", out)
}

func TestStringConcatenation(t *testing.T) {
	out, err, _ := run(t, `print "foo" + "bar";`)
	require.NoError(t, err)
	assert.Equal(t, "foobar\n", out)
}

func TestMixedPlusIsRuntimeError(t *testing.T) {
	_, err, _ := run(t, `print "foo" + 1;`)
	require.Error(t, err)
	assert.Equal(t, "Operands must be two numbers or two strings.", err.Error())
}

func TestCallArityMismatchIsRuntimeError(t *testing.T) {
	_, err, _ := run(t, `fun f(a, b) { return a + b; } f(1);`)
	require.Error(t, err)
	assert.Equal(t, "Expected 2 arguments but got 1.", err.Error())
}

func TestLogicalOperatorsShortCircuit(t *testing.T) {
	out, err, _ := run(t, `print false and (1/0 == 1); print true or (1/0 == 1);`)
	require.NoError(t, err)
	assert.Equal(t, "false\ntrue\n", out)
}

func TestUndefinedPropertyIsRuntimeError(t *testing.T) {
	_, err, _ := run(t, `class A {} A().missing;`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Undefined property 'missing'.")
}
