package main

import (
	"fmt"
	"io"

	"github.com/mateomaralcantara/aipma/framework"

	"github.com/fatih/color"
)

// ConsoleTestLogger prints one line per outcome as the suite runs.
type ConsoleTestLogger struct {
	Out                  io.Writer
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

var (
	passColor = color.New(color.FgGreen)
	failColor = color.New(color.FgRed)
	skipColor = color.New(color.FgYellow)
)

func (c *ConsoleTestLogger) TestStarted(name string) {
	if c.DebugOutputOnSuccess {
		fmt.Fprintf(c.Out, "🔍 %s\n", name)
	}
}

func (c *ConsoleTestLogger) TestFinished(outcome framework.Outcome, debugOutput framework.CapturedOutput) {
	if outcome.Success {
		passColor.Fprintf(c.Out, "✅ %s: %s\n", outcome.TestName, outcome.Message)
	} else {
		failColor.Fprintf(c.Out, "❌ %s: %s\n", outcome.TestName, outcome.Message)
		if outcome.Details != "" {
			fmt.Fprintf(c.Out, "   Details: %s\n", outcome.Details)
		}
	}
	if len(debugOutput) > 0 &&
		((!outcome.Success && c.DebugOutputOnFailure) || (outcome.Success && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(c.Out, "    DEBUG ")
	}
}

func (c *ConsoleTestLogger) TestSkipped(name string, reason string) {
	if reason == "" {
		skipColor.Fprintf(c.Out, "⏭  SKIPPED: %s\n", name)
	} else {
		skipColor.Fprintf(c.Out, "⏭  SKIPPED: %s (%s)\n", name, reason)
	}
}
