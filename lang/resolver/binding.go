package resolver

// functionType tracks what kind of function body the resolver is currently
// inside, so "return" statements can be validated contextually.
type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionInitializer
	functionMethod
)

// classType tracks whether the resolver is inside a class body, and
// whether that class has a superclass, so "this"/"super" can be validated.
type classType int

const (
	classNone classType = iota
	classClass
	classSubclass
)

// scope maps a name declared in a block to whether its initializer has
// finished resolving yet. A name present but mapped to false is "declared
// but not yet defined" -- referencing it in that window is the classic
// "var a = a;" self-reference error.
type scope map[string]bool
