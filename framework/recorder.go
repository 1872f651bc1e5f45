package framework

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
)

const (
	unnamedTest    = "(unnamed test)"
	missingMessage = "(no message)"
)

var summaryRule = strings.Repeat("=", 80)

// Recorder accumulates test outcomes in the order they were recorded and renders the final
// report. It is a sink for failures; it has no error conditions of its own.
type Recorder struct {
	outcomes   []Outcome
	testLogger TestLogger
	now        func() time.Time
	lock       sync.Mutex
}

// NewRecorder creates a Recorder that reports each outcome to testLogger as soon as it is
// recorded. A nil testLogger discards those notifications.
func NewRecorder(testLogger TestLogger) *Recorder {
	if testLogger == nil {
		testLogger = NullTestLogger()
	}
	return &Recorder{testLogger: testLogger, now: time.Now}
}

// Record adds one outcome, timestamped now, and reports it to the test logger.
func (r *Recorder) Record(testName string, success bool, message string, details string) Outcome {
	return r.record(testName, Verdict{Success: success, Message: message, Details: details}, nil)
}

func (r *Recorder) record(testName string, v Verdict, debugOutput CapturedOutput) Outcome {
	if testName == "" {
		testName = unnamedTest
	}
	if v.Message == "" {
		v.Message = missingMessage
	}
	o := Outcome{
		TestName:  testName,
		Success:   v.Success,
		Message:   v.Message,
		Details:   v.Details,
		Timestamp: r.now(),
	}
	r.lock.Lock()
	r.outcomes = append(r.outcomes, o)
	r.lock.Unlock()

	r.testLogger.TestFinished(o, debugOutput)
	return o
}

// Outcomes returns a copy of everything recorded so far.
func (r *Recorder) Outcomes() []Outcome {
	r.lock.Lock()
	defer r.lock.Unlock()
	return append([]Outcome(nil), r.outcomes...)
}

func (r *Recorder) Summary() Summary {
	return Summarize(r.Outcomes())
}

// Summarize writes the summary block to w and returns true if the run succeeded: at least one
// outcome and no failures. It does not modify the Recorder, so repeated calls are identical.
func (r *Recorder) Summarize(w io.Writer) bool {
	s := r.Summary()
	PrintSummary(w, s)
	return s.OK()
}

// PrintSummary renders s in the console report format.
func PrintSummary(w io.Writer, s Summary) {
	heading := color.New(color.Bold)
	passed := color.New(color.FgGreen)
	failed := color.New(color.FgRed)

	fmt.Fprintln(w)
	fmt.Fprintln(w, summaryRule)
	heading.Fprintln(w, "📊 TEST SUMMARY")
	fmt.Fprintln(w, summaryRule)
	passed.Fprintf(w, "✅ Passed: %d\n", s.Passed)
	failed.Fprintf(w, "❌ Failed: %d\n", s.Failed)
	fmt.Fprintf(w, "📈 Success Rate: %d/%d (%.1f%%)\n", s.Passed, s.Total, s.SuccessRate()*100.0)

	if len(s.FailedTests) > 0 {
		fmt.Fprintln(w)
		failed.Fprintln(w, "❌ FAILED TESTS:")
		for _, name := range s.FailedTests {
			fmt.Fprintf(w, "   - %s\n", name)
		}
	}

	if len(s.PassedTests) > 0 {
		fmt.Fprintln(w)
		passed.Fprintln(w, "✅ PASSED TESTS:")
		for _, name := range s.PassedTests {
			fmt.Fprintf(w, "   - %s\n", name)
		}
	}
}
