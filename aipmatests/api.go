package aipmatests

import (
	"fmt"
	"net/http"

	"github.com/mateomaralcantara/aipma/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// T represents one test case in the AIPMA test suite.
//
// It wraps the lower-level framework.Context, which identifies the test and captures its debug
// output, together with the harness used to reach the API. Requests made through T are logged
// to the test's debug output and use the test's context.
type T struct {
	context *framework.Context
	harness *framework.TestHarness
}

func newTestScope(context *framework.Context, harness *framework.TestHarness) *T {
	return &T{context: context, harness: harness}
}

func (t *T) Name() string {
	return t.context.Name()
}

// Debug logs some debug output for the test. It is shown only if the console logger asks for it.
func (t *T) Debug(format string, args ...interface{}) {
	t.context.Debug(format, args...)
}

func (t *T) Get(path string) (*framework.Response, error) {
	return t.harness.Get(t.context.Context(), path, t.context.DebugLogger())
}

func (t *T) PostJSON(path string, body interface{}) (*framework.Response, error) {
	return t.harness.PostJSON(t.context.Context(), path, body, t.context.DebugLogger())
}

// GetObject sends a GET request and requires a 200 response whose body is a JSON object.
func (t *T) GetObject(path string) (ldvalue.Value, error) {
	resp, err := t.Get(path)
	if err != nil {
		return ldvalue.Null(), err
	}
	return requireOKObject(resp)
}

// PostObject sends body as JSON and requires a 200 response whose body is a JSON object.
func (t *T) PostObject(path string, body interface{}) (ldvalue.Value, error) {
	resp, err := t.PostJSON(path, body)
	if err != nil {
		return ldvalue.Null(), err
	}
	return requireOKObject(resp)
}

func requireOKObject(resp *framework.Response) (ldvalue.Value, error) {
	if err := resp.RequireStatus(http.StatusOK); err != nil {
		return ldvalue.Null(), err
	}
	return resp.JSONObject()
}

// requireSuccessWith checks the envelope used by every POST endpoint: a boolean true "success"
// property alongside the named field.
func requireSuccessWith(body ldvalue.Value, field string) error {
	success := body.GetByKey("success")
	if success.Type() == ldvalue.BoolType && success.BoolValue() && framework.HasField(body, field) {
		return nil
	}
	return &framework.Failure{
		Message: "Invalid response structure",
		Details: fmt.Sprintf("Expected success=true and %s, got: %s", field, body.JSONString()),
	}
}
