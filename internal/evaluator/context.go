package evaluator

import (
	"github.com/google/uuid"
)

// Context is the state of one program run: the function table and the
// stack of variable scopes. It is owned by a single evaluation at a time.
type Context struct {
	// ID identifies the run in diagnostics.
	ID uuid.UUID

	Functions map[string]*Function
	Builtins  map[string]*Builtin
	scopes    []*Environment
}

// NewContext returns a context holding just the top-level scope.
func NewContext() *Context {
	return &Context{
		ID:        uuid.New(),
		Functions: make(map[string]*Function),
		Builtins:  make(map[string]*Builtin),
		scopes:    []*Environment{NewEnvironment()},
	}
}

func (c *Context) PushScope() {
	c.scopes = append(c.scopes, NewEnvironment())
}

// PopScope drops the innermost scope. The top-level scope is never removed.
func (c *Context) PopScope() {
	if len(c.scopes) > 1 {
		c.scopes = c.scopes[:len(c.scopes)-1]
	}
}

// Depth is the number of live scopes, 1 at top level.
func (c *Context) Depth() int {
	return len(c.scopes)
}

// Get searches from the innermost scope outwards.
func (c *Context) Get(name string) (Object, bool) {
	for i := len(c.scopes) - 1; i >= 0; i-- {
		if obj, ok := c.scopes[i].Get(name); ok {
			return obj, true
		}
	}
	return nil, false
}

// Set always binds in the innermost scope, even if an outer scope
// already has the name.
func (c *Context) Set(name string, val Object) {
	c.Current().Set(name, val)
}

// Current returns the innermost scope.
func (c *Context) Current() *Environment {
	return c.scopes[len(c.scopes)-1]
}

// DefineFunction registers fn, replacing any earlier definition of the name.
func (c *Context) DefineFunction(fn *Function) {
	c.Functions[fn.Name] = fn
}

func (c *Context) Function(name string) (*Function, bool) {
	fn, ok := c.Functions[name]
	return fn, ok
}

// DefineBuiltin registers a host function, replacing any earlier one.
func (c *Context) DefineBuiltin(b *Builtin) {
	c.Builtins[b.Name] = b
}

func (c *Context) Builtin(name string) (*Builtin, bool) {
	b, ok := c.Builtins[name]
	return b, ok
}
