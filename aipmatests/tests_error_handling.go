package aipmatests

import (
	"fmt"
	"net/http"

	"github.com/mateomaralcantara/aipma/framework"
)

const (
	invalidEndpointPath = "/invalid-endpoint"
	bodyPreviewLength   = 200
)

// Any of these is an acceptable answer to a contact submission with none of the expected
// fields. The API does not define whether it validates input, so the test does not decide.
var malformedRequestStatuses = []int{http.StatusOK, http.StatusBadRequest, http.StatusUnprocessableEntity}

// DoInvalidEndpointTest expects unknown paths to be routed to the API info page rather than 404.
func DoInvalidEndpointTest(t *T) framework.Verdict {
	resp, err := t.Get(invalidEndpointPath)
	if err != nil {
		return framework.FailWith(err)
	}
	if resp.StatusCode != http.StatusOK {
		return framework.Fail(fmt.Sprintf("Unexpected status code: %d", resp.StatusCode), resp.Text(0))
	}
	body, err := resp.JSON()
	if err != nil {
		return framework.FailWith(err)
	}
	if !isInfoBody(body) {
		return framework.Fail("Invalid endpoint response structure incorrect",
			fmt.Sprintf("Response: %s", body.JSONString()))
	}
	return framework.Pass("Invalid endpoint returns API info correctly",
		"Response: "+displayString(body.GetByKey("message")))
}

func DoMalformedRequestTest(t *T) framework.Verdict {
	resp, err := t.PostJSON(contactPath, malformedContactPayload())
	if err != nil {
		return framework.FailWith(err)
	}
	for _, s := range malformedRequestStatuses {
		if resp.StatusCode == s {
			details := resp.Text(bodyPreviewLength)
			if details == "" {
				details = "No response body"
			}
			return framework.Pass(
				fmt.Sprintf("Malformed request handled appropriately (HTTP %d)", resp.StatusCode), details)
		}
	}
	return framework.Fail(
		fmt.Sprintf("Unexpected status code for malformed request: %d", resp.StatusCode), resp.Text(0))
}
