package framework

import (
	"time"
)

// Outcome is the immutable record produced by one test case invocation.
type Outcome struct {
	TestName  string    `yaml:"test"`
	Success   bool      `yaml:"success"`
	Message   string    `yaml:"message"`
	Details   string    `yaml:"details,omitempty"`
	Timestamp time.Time `yaml:"timestamp"`
}

// Summary is computed on demand from a list of outcomes; it is never stored.
type Summary struct {
	Total       int
	Passed      int
	Failed      int
	PassedTests []string
	FailedTests []string
}

// Summarize computes a Summary over outcomes, preserving their order.
func Summarize(outcomes []Outcome) Summary {
	s := Summary{Total: len(outcomes)}
	for _, o := range outcomes {
		if o.Success {
			s.Passed++
			s.PassedTests = append(s.PassedTests, o.TestName)
		} else {
			s.Failed++
			s.FailedTests = append(s.FailedTests, o.TestName)
		}
	}
	return s
}

// SuccessRate returns passed/total as a fraction, or 0 for an empty run.
func (s Summary) SuccessRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Passed) / float64(s.Total)
}

// OK is true if at least one test ran and none of them failed. An empty run is not a pass.
func (s Summary) OK() bool {
	return s.Total > 0 && s.Failed == 0
}
