package interpreter

// signalKind distinguishes ordinary statement completion from a "return"
// in flight. This is the idiomatic-Go substitute for propagating a return
// by panicking: a return statement executing is not an exceptional event,
// so it is threaded as an explicit value instead (see SPEC_FULL's design
// note on this).
type signalKind int

const (
	signalNone signalKind = iota
	signalReturn
)

type signal struct {
	kind  signalKind
	value Value
}

var noSignal = signal{kind: signalNone}
