package host_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mna/lox/internal/filetest"
	"github.com/mna/lox/lang/host"
)

func runSource(src string) string {
	var buf bytes.Buffer
	h := host.New(&buf)
	h.Run(src)
	return buf.String()
}

func TestEqualityOfArithmeticExpressions(t *testing.T) {
	filetest.AssertEqual(t, "stdout", "false\n", runSource(`print 8*9*9 == 0;`))
}

func TestUnaryMinusOnStringReportsRuntimeError(t *testing.T) {
	var buf bytes.Buffer
	h := host.New(&buf)
	h.Run(`-"hello";`)
	assert.True(t, h.Sink.HadRuntimeError)
	filetest.AssertEqual(t, "stdout", "Operand must be a number.\n[line 1]\n", buf.String())
}

func TestBlockScopeShadowing(t *testing.T) {
	filetest.AssertEqual(t, "stdout", "2\n1\n", runSource(`var a=1; { var a=2; print a; } print a;`))
}

func TestClosureOverMutableUpvalue(t *testing.T) {
	src := `
fun counter(){ var i=0; fun inc(){ i=i+1; return i; } return inc; }
var c=counter();
print c();
print c();
`
	filetest.AssertEqual(t, "stdout", "1\n2\n", runSource(src))
}

func TestInheritanceAndSuperCall(t *testing.T) {
	src := `
class A{ m(){ print "A.m"; } }
class B<A{ m(){ super.m(); print "B.m"; } }
B().m();
`
	filetest.AssertEqual(t, "stdout", "A.m\nB.m\n", runSource(src))
}

func TestInitializerAssignsFields(t *testing.T) {
	src := `class P{ init(x){ this.x=x; } } var p=P(7); print p.x;`
	filetest.AssertEqual(t, "stdout", "7\n", runSource(src))
}

func TestUnterminatedBlockCommentReportsCompileError(t *testing.T) {
	var buf bytes.Buffer
	h := host.New(&buf)
	h.Run("/*\n *hello\n *")
	assert.True(t, h.Sink.HadError)
	filetest.AssertEqual(t, "stdout", "[line 3] Error : Unterminated block comment.\n", buf.String())
}

func TestRuntimeErrorStopsRemainingStatements(t *testing.T) {
	var buf bytes.Buffer
	h := host.New(&buf)
	h.Run(`print "before"; -"oops"; print "after";`)
	assert.True(t, h.Sink.HadRuntimeError)
	assert.Contains(t, buf.String(), "before")
	assert.NotContains(t, buf.String(), "after")
}

func TestCompileErrorNeverInvokesInterpreter(t *testing.T) {
	var buf bytes.Buffer
	h := host.New(&buf)
	h.Run(`print ;`)
	assert.True(t, h.Sink.HadError)
	assert.False(t, h.Sink.HadRuntimeError)
}
