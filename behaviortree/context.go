package behaviortree

import (
	"github.com/joeycumines/content-bt/reactive"
	"github.com/joeycumines/content-bt/value"
)

// Context is the capability set passed to every Tick: the payload
// Condition leaves evaluate against, the Logger PrintLog writes through,
// and the Reactive service action nodes register asynchronous work with.
type Context struct {
	Payload  value.Payload
	Logger   Logger
	Reactive *reactive.Service
}

// logger returns ctx.Logger, falling back to DefaultLogger when unset so
// callers may construct a zero-value Context for simple ticks.
func (c *Context) logger() Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return DefaultLogger()
}
