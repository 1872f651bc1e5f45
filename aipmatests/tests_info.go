package aipmatests

import (
	"fmt"

	"github.com/mateomaralcantara/aipma/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// ExpectedEndpoints must all be listed by the API info endpoint.
var ExpectedEndpoints = []string{"/api/noticias", "/api/eventos", "/api/miembros", "/api/contacto"}

func DoAPIInfoTest(t *T) framework.Verdict {
	body, err := t.GetObject("/")
	if err != nil {
		return framework.FailWith(err)
	}
	if !framework.HasField(body, "message") || !framework.HasField(body, "endpoints") {
		return framework.Fail("Response missing required fields (message, endpoints)",
			fmt.Sprintf("Response: %s", body.JSONString()))
	}

	actual := framework.StringElements(body.GetByKey("endpoints"))
	listed := make(map[string]bool, len(actual))
	for _, ep := range actual {
		listed[ep] = true
	}
	var missing []string
	for _, ep := range ExpectedEndpoints {
		if !listed[ep] {
			missing = append(missing, ep)
		}
	}
	if len(missing) > 0 {
		return framework.Fail(fmt.Sprintf("Missing expected endpoints: %v", missing),
			fmt.Sprintf("Expected: %v, Got: %s", ExpectedEndpoints, body.GetByKey("endpoints").JSONString()))
	}
	return framework.Pass("API info endpoint working correctly",
		fmt.Sprintf("Message: %s, Endpoints: %v", displayString(body.GetByKey("message")), actual))
}

// isInfoBody is true for the body shape served by the API root: a message and a list of endpoints.
func isInfoBody(body ldvalue.Value) bool {
	return framework.HasField(body, "message") && body.GetByKey("endpoints").Type() == ldvalue.ArrayType
}

// displayString renders a JSON value for messages: strings without quotes, anything else as JSON.
func displayString(v ldvalue.Value) string {
	if v.Type() == ldvalue.StringType {
		return v.StringValue()
	}
	return v.JSONString()
}
