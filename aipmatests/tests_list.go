package aipmatests

import (
	"fmt"
	"strings"

	"github.com/mateomaralcantara/aipma/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// DoListTest checks a GET list endpoint against pre-seeded data. Only the first item is
// inspected in detail.
func DoListTest(kind resourceKind) func(*T) framework.Verdict {
	return func(t *T) framework.Verdict {
		list, err := t.requireNonEmptyList(kind)
		if err != nil {
			return framework.FailWith(err)
		}
		first := list.GetByIndex(0)
		if first.Type() != ldvalue.ObjectType {
			return framework.Fail("Invalid response structure",
				fmt.Sprintf("Expected %s items to be objects, got: %s", kind.listField, first.Type()))
		}
		if missing := framework.MissingFields(first, kind.requiredFields); len(missing) > 0 {
			return framework.Fail(fmt.Sprintf("Missing required fields: %v", missing),
				fmt.Sprintf("Available fields: %v", framework.FieldNames(first)))
		}

		var checked, issues []string
		if kind.languageFields != nil {
			checked = append(checked, "proper Spanish content")
			text := framework.ConcatenateText(first, kind.languageFields)
			if !framework.ContainsAnyIndicator(text, kind.languageIndicators) {
				issues = append(issues, "Spanish content not detected")
			}
		}
		checked = append(checked, "UUID format")
		if !framework.ValidUUID(first.GetByKey("id").StringValue()) {
			issues = append(issues, "Invalid UUID format")
		}
		if kind.dateField != "" {
			checked = append(checked, "valid dates")
			if !framework.ValidISOTimestamp(first.GetByKey(kind.dateField)) {
				issues = append(issues, "Invalid date format")
			}
		}

		if len(issues) > 0 {
			return framework.Fail("Data validation issues: "+strings.Join(issues, ", "),
				fmt.Sprintf("ID: %s, %s", first.GetByKey("id").JSONString(), sampleDetails(kind, first)))
		}
		return framework.Pass(
			fmt.Sprintf("Retrieved %d %s with %s", list.Count(), kind.noun, joinPhrases(checked)),
			sampleDetails(kind, first))
	}
}

func (t *T) requireNonEmptyList(kind resourceKind) (ldvalue.Value, error) {
	body, err := t.GetObject(kind.path)
	if err != nil {
		return ldvalue.Null(), err
	}
	list := body.GetByKey(kind.listField)
	if list.Type() != ldvalue.ArrayType {
		return list, &framework.Failure{
			Message: "Invalid response structure",
			Details: fmt.Sprintf("Expected '%s' array, got: %s", kind.listField, list.Type()),
		}
	}
	if list.Count() == 0 {
		return list, &framework.Failure{
			Message: kind.emptyList,
			Details: fmt.Sprintf("Empty %s array", kind.listField),
		}
	}
	t.Debug("%s returned %d items", kind.path, list.Count())
	return list, nil
}

func sampleDetails(kind resourceKind, item ldvalue.Value) string {
	details := fmt.Sprintf("Sample %s: %s", kind.sampleField, displayString(item.GetByKey(kind.sampleField)))
	if kind.dateField != "" {
		details += fmt.Sprintf(", Date: %s", displayString(item.GetByKey(kind.dateField)))
	}
	return details
}

// joinPhrases joins phrases as English prose: "a", "a and b", "a, b, and c".
func joinPhrases(phrases []string) string {
	switch len(phrases) {
	case 0:
		return ""
	case 1:
		return phrases[0]
	case 2:
		return phrases[0] + " and " + phrases[1]
	}
	return strings.Join(phrases[:len(phrases)-1], ", ") + ", and " + phrases[len(phrases)-1]
}
