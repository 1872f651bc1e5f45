package framework

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

type recordingTestLogger struct {
	started  []string
	finished []Outcome
	skipped  []string
}

func (l *recordingTestLogger) TestStarted(name string) {
	l.started = append(l.started, name)
}

func (l *recordingTestLogger) TestFinished(outcome Outcome, debugOutput CapturedOutput) {
	l.finished = append(l.finished, outcome)
}

func (l *recordingTestLogger) TestSkipped(name string, reason string) {
	l.skipped = append(l.skipped, name)
}

func fixedTime() time.Time {
	return time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
}

func newTestRecorder(logger TestLogger) *Recorder {
	r := NewRecorder(logger)
	r.now = fixedTime
	return r
}

func TestRecordAppendsInOrderAndNotifiesLogger(t *testing.T) {
	logger := &recordingTestLogger{}
	r := newTestRecorder(logger)

	r.Record("first", true, "ok", "")
	r.Record("second", false, "HTTP 500", "Error interno del servidor")

	outcomes := r.Outcomes()
	require.Len(t, outcomes, 2)
	assert.Equal(t, Outcome{TestName: "first", Success: true, Message: "ok", Timestamp: fixedTime()}, outcomes[0])
	assert.Equal(t, "second", outcomes[1].TestName)
	assert.Equal(t, "Error interno del servidor", outcomes[1].Details)
	assert.Equal(t, outcomes, logger.finished)
}

func TestRecordReplacesEmptyNameAndMessage(t *testing.T) {
	r := newTestRecorder(nil)

	o := r.Record("", false, "", "")
	assert.Equal(t, "(unnamed test)", o.TestName)
	assert.Equal(t, "(no message)", o.Message)
}

func TestOutcomesReturnsCopy(t *testing.T) {
	r := newTestRecorder(nil)
	r.Record("a", true, "ok", "")

	outcomes := r.Outcomes()
	outcomes[0].TestName = "changed"
	assert.Equal(t, "a", r.Outcomes()[0].TestName)
}

func TestSummarizeEmptyRunIsNotSuccess(t *testing.T) {
	r := newTestRecorder(nil)
	var buf bytes.Buffer

	assert.False(t, r.Summarize(&buf))
	assert.Contains(t, buf.String(), "📈 Success Rate: 0/0 (0.0%)")
	assert.NotContains(t, buf.String(), "FAILED TESTS")
}

func TestSummarizeAllPassed(t *testing.T) {
	r := newTestRecorder(nil)
	r.Record("a", true, "ok", "")
	r.Record("b", true, "ok", "")
	var buf bytes.Buffer

	assert.True(t, r.Summarize(&buf))
	out := buf.String()
	assert.Contains(t, out, "✅ Passed: 2")
	assert.Contains(t, out, "❌ Failed: 0")
	assert.Contains(t, out, "📈 Success Rate: 2/2 (100.0%)")
	assert.Contains(t, out, "✅ PASSED TESTS:\n   - a\n   - b\n")
	assert.NotContains(t, out, "FAILED TESTS")
}

func TestSummarizeWithFailuresListsFailedFirst(t *testing.T) {
	r := newTestRecorder(nil)
	r.Record("a", true, "ok", "")
	r.Record("b", false, "broken", "")
	r.Record("c", true, "ok", "")
	var buf bytes.Buffer

	assert.False(t, r.Summarize(&buf))
	out := buf.String()
	assert.Contains(t, out, "📊 TEST SUMMARY")
	assert.Contains(t, out, strings.Repeat("=", 80))
	assert.Contains(t, out, "📈 Success Rate: 2/3 (66.7%)")
	failedAt := strings.Index(out, "❌ FAILED TESTS:\n   - b\n")
	passedAt := strings.Index(out, "✅ PASSED TESTS:\n   - a\n   - c\n")
	require.True(t, failedAt >= 0)
	require.True(t, passedAt >= 0)
	assert.True(t, failedAt < passedAt)
}

func TestSummarizeIsIdempotent(t *testing.T) {
	r := newTestRecorder(nil)
	r.Record("a", true, "ok", "")
	r.Record("b", false, "broken", "details")

	var first, second bytes.Buffer
	ok1 := r.Summarize(&first)
	ok2 := r.Summarize(&second)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first.String(), second.String())
	assert.Len(t, r.Outcomes(), 2)
}

func TestSummaryCounts(t *testing.T) {
	s := Summarize([]Outcome{
		{TestName: "a", Success: true},
		{TestName: "b", Success: false},
		{TestName: "c", Success: false},
	})
	assert.Equal(t, 3, s.Total)
	assert.Equal(t, 1, s.Passed)
	assert.Equal(t, 2, s.Failed)
	assert.Equal(t, []string{"a"}, s.PassedTests)
	assert.Equal(t, []string{"b", "c"}, s.FailedTests)
	assert.InDelta(t, 1.0/3.0, s.SuccessRate(), 0.0001)
	assert.False(t, s.OK())
}
