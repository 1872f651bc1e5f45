package aipmatests

import (
	"fmt"
	"strings"
	"time"

	"github.com/mateomaralcantara/aipma/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DoCreateTest posts the resource's fixture and checks that the created resource echoes every
// field we sent, plus a UUID id and a creation timestamp.
func DoCreateTest(kind resourceKind) func(*T) framework.Verdict {
	return func(t *T) framework.Verdict {
		payload := kind.fixture(time.Now())
		body, err := t.PostObject(kind.path, payload)
		if err != nil {
			return framework.FailWith(err)
		}
		if err := requireSuccessWith(body, kind.itemField); err != nil {
			return framework.FailWith(err)
		}
		created := body.GetByKey(kind.itemField)
		if created.Type() != ldvalue.ObjectType {
			return framework.Fail("Invalid response structure",
				fmt.Sprintf("Expected %s to be an object, got: %s", kind.itemField, created.Type()))
		}

		var issues []string
		id := created.GetByKey("id")
		if !framework.ValidUUID(id.StringValue()) {
			issues = append(issues, "Invalid UUID format")
		}
		if missing := framework.MissingFields(created, expectedCreatedFields(payload)); len(missing) > 0 {
			issues = append(issues, fmt.Sprintf("Missing fields: %v", missing))
		}
		if len(issues) > 0 {
			return framework.Fail("Data validation issues: "+strings.Join(issues, ", "),
				fmt.Sprintf("Created %s: %s", kind.singular, created.JSONString()))
		}

		return framework.Pass(
			fmt.Sprintf("Created %s successfully with proper UUID and all required fields", kind.singular),
			fmt.Sprintf("Created %s ID: %s, %s", kind.singular, id.StringValue(), sampleDetails(kind, created)))
	}
}

// expectedCreatedFields is the id, every payload field in sorted order, and the creation timestamp.
func expectedCreatedFields(payload ldvalue.Value) []string {
	fields := []string{"id"}
	fields = append(fields, framework.FieldNames(payload)...)
	return append(fields, CreationTimestampField)
}
