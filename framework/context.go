package framework

import (
	"context"
	"fmt"
	"runtime/debug"
)

// Runner invokes test cases one at a time and records exactly one outcome per invocation.
type Runner struct {
	ctx        context.Context
	recorder   *Recorder
	filter     Filter
	testLogger TestLogger
}

// Context is passed to each test case. It is similar to Go's *testing.T in that it identifies
// the test and collects its debug output, but failures are reported by returning a Verdict.
type Context struct {
	ctx         context.Context
	name        string
	debugLogger CapturingLogger
}

// NewRunner creates a Runner. A nil filter runs every test; a nil testLogger discards
// start/skip notifications (outcomes are still reported through the Recorder's own logger).
func NewRunner(ctx context.Context, recorder *Recorder, filter Filter, testLogger TestLogger) *Runner {
	if ctx == nil {
		ctx = context.Background()
	}
	if testLogger == nil {
		testLogger = NullTestLogger()
	}
	return &Runner{
		ctx:        ctx,
		recorder:   recorder,
		filter:     filter,
		testLogger: testLogger,
	}
}

// Run invokes action as the test case called name, unless the filter excludes it. The outcome
// is recorded even if action panics.
func (r *Runner) Run(name string, action func(*Context) Verdict) {
	r.testLogger.TestStarted(name)
	if r.filter != nil && !r.filter(name) {
		r.testLogger.TestSkipped(name, "excluded by filter parameters")
		return
	}
	c := &Context{ctx: r.ctx, name: name}
	v := c.run(action)
	r.recorder.record(name, v, c.debugLogger.Output())
}

func (c *Context) run(action func(*Context) Verdict) (v Verdict) {
	defer func() {
		if p := recover(); p != nil {
			v = Fail(fmt.Sprintf("unexpected panic in test: %+v", p), string(debug.Stack()))
		}
	}()
	return action(c)
}

func (c *Context) Name() string {
	return c.name
}

// Context returns the context.Context that HTTP requests made by this test should use.
func (c *Context) Context() context.Context {
	return c.ctx
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() Logger {
	return &c.debugLogger
}
