package framework

// TestLogger receives notifications about each test as the suite runs. The console
// implementation lives in the main package.
type TestLogger interface {
	TestStarted(name string)
	TestFinished(outcome Outcome, debugOutput CapturedOutput)
	TestSkipped(name string, reason string)
}

type nullTestLogger struct{}

func (n nullTestLogger) TestStarted(string)                  {}
func (n nullTestLogger) TestFinished(Outcome, CapturedOutput) {}
func (n nullTestLogger) TestSkipped(string, string)          {}

func NullTestLogger() TestLogger { return nullTestLogger{} }
