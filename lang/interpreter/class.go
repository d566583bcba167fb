package interpreter

import "fmt"

// Class is a Lox class: a name, an optional superclass, and its own
// method table (lookup walks the superclass chain on miss).
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

var _ Callable = (*Class)(nil)

func (c *Class) String() string { return c.Name }
func (c *Class) Type() string   { return "class" }
func (c *Class) Truthy() bool   { return true }

// FindMethod looks up name on c, falling back to the superclass chain.
func (c *Class) FindMethod(name string) (*Function, bool) {
	if m, ok := c.Methods[name]; ok {
		return m, true
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil, false
}

// Arity is the arity of "init", or 0 if the class has none.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new instance, running "init" if one is defined.
func (c *Class) Call(in *Interpreter, args []Value) (Value, error) {
	instance := &Instance{Class: c, Fields: map[string]Value{}}
	if init, ok := c.FindMethod("init"); ok {
		if _, err := init.Bind(instance).Call(in, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

// Instance is a runtime object produced by calling a Class.
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

var _ Value = (*Instance)(nil)

func (i *Instance) String() string { return fmt.Sprintf("%s instance", i.Class.Name) }
func (i *Instance) Type() string   { return "instance" }
func (i *Instance) Truthy() bool   { return true }

// Get reads a field, then falls back to a bound method.
func (i *Instance) Get(name string) (Value, bool) {
	if v, ok := i.Fields[name]; ok {
		return v, true
	}
	if m, ok := i.Class.FindMethod(name); ok {
		return m.Bind(i), true
	}
	return nil, false
}

// Set assigns a field, creating it if absent.
func (i *Instance) Set(name string, value Value) {
	i.Fields[name] = value
}
