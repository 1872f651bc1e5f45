package framework

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DefaultRequestTimeout bounds every request made by the harness.
const DefaultRequestTimeout = time.Second * 10

// TestHarness sends requests to the API under test. It does not retry: each call either
// returns a response or an error.
type TestHarness struct {
	apiBaseURL string
	client     *http.Client
	logger     Logger
}

// Response is a fully-read HTTP response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// NewTestHarness creates a TestHarness for the API rooted at apiBaseURL (for instance
// http://localhost:3000/api). A zero timeout means DefaultRequestTimeout.
func NewTestHarness(apiBaseURL string, timeout time.Duration, debugLogger Logger) *TestHarness {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	if debugLogger == nil {
		debugLogger = NullLogger()
	}
	return &TestHarness{
		apiBaseURL: strings.TrimSuffix(apiBaseURL, "/"),
		client:     &http.Client{Timeout: timeout},
		logger:     debugLogger,
	}
}

func (h *TestHarness) APIBaseURL() string {
	return h.apiBaseURL
}

// URL returns the absolute URL for a path relative to the API base, such as "/noticias".
func (h *TestHarness) URL(path string) string {
	return h.apiBaseURL + path
}

// Get sends a GET request. Request and response are written to logger, or to the harness's
// own debug logger if logger is nil.
func (h *TestHarness) Get(ctx context.Context, path string, logger Logger) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.URL(path), nil)
	if err != nil {
		return nil, err
	}
	return h.do(req, nil, logger)
}

// PostJSON sends body, marshaled as JSON, with a JSON content type.
func (h *TestHarness) PostJSON(ctx context.Context, path string, body interface{}, logger Logger) (*Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("could not encode request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.URL(path), bytes.NewBuffer(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return h.do(req, data, logger)
}

func (h *TestHarness) do(req *http.Request, body []byte, logger Logger) (*Response, error) {
	if logger == nil {
		logger = h.logger
	}
	reqLogger := WithFields(logger, logrus.Fields{"method": req.Method, "url": req.URL.String()})
	if body == nil {
		reqLogger.Printf("Request")
	} else {
		reqLogger.Printf("Request with body: %s", string(body))
	}
	resp, err := h.client.Do(req)
	if err != nil {
		reqLogger.Printf("Request error: %s", err)
		return nil, err
	}
	defer resp.Body.Close()
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}
	WithFields(reqLogger, logrus.Fields{"status": resp.StatusCode}).Printf("Response: %s", string(data))
	return &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

// Text returns the body as a string, truncated to limit characters if limit is positive. The
// cut never splits a multi-byte character.
func (r *Response) Text(limit int) string {
	if limit <= 0 || len(r.Body) <= limit {
		return string(r.Body)
	}
	count := 0
	for i := range string(r.Body) {
		if count == limit {
			return string(r.Body[:i])
		}
		count++
	}
	return string(r.Body)
}

// RequireStatus returns a *Failure unless the response has one of the given status codes.
func (r *Response) RequireStatus(statuses ...int) error {
	for _, s := range statuses {
		if r.StatusCode == s {
			return nil
		}
	}
	return &Failure{Message: fmt.Sprintf("HTTP %d", r.StatusCode), Details: r.Text(0)}
}

// JSON parses the body.
func (r *Response) JSON() (ldvalue.Value, error) {
	var v ldvalue.Value
	if err := json.Unmarshal(r.Body, &v); err != nil {
		return ldvalue.Null(), &Failure{
			Message: fmt.Sprintf("Invalid JSON response: %s", err),
			Details: r.Text(200),
		}
	}
	return v, nil
}

// JSONObject parses the body and requires it to be a JSON object.
func (r *Response) JSONObject() (ldvalue.Value, error) {
	v, err := r.JSON()
	if err != nil {
		return v, err
	}
	if v.Type() != ldvalue.ObjectType {
		return v, &Failure{
			Message: "Invalid response structure",
			Details: fmt.Sprintf("Expected a JSON object, got: %s", v.Type()),
		}
	}
	return v, nil
}
