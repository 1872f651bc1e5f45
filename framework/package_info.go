// Package framework contains the reusable parts of the contract test harness: running test
// cases, recording their outcomes, talking to the API under test, and the validation rules
// that tests apply to JSON responses.
//
// The general model is:
//
// 1. The harness sends plain HTTP requests to the API under test. Each request has a bounded
// timeout and is never retried.
//
// 2. A Runner invokes test cases strictly one after another. A test case reports its result by
// returning a Verdict; errors from harness and validation steps are converted with FailWith,
// and a panic is converted at the runner boundary, so every invocation records exactly one
// Outcome.
//
// 3. The Recorder prints each Outcome as it is recorded and computes the final Summary, whose OK
// method decides the process exit code.
//
// The domain-specific code that knows which endpoints exist and what their responses must look
// like is in a separate package.
package framework
