package framework

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const canonicalUUIDLength = 36

// Layouts accepted by ParseISOTimestamp once a trailing "Z" has become "+00:00". These are the
// extended and basic ISO-8601 forms: date only, or date and time to the hour, minute or second
// with optional fractional seconds, separated by "T" or a space, with an optional "+HH:MM" or
// "+HHMM" offset. Week dates, ordinal dates and hour-only offsets are not accepted.
var isoTimestampLayouts = func() []string {
	var layouts []string
	for _, date := range []string{"2006-01-02", "20060102"} {
		for _, sep := range []string{"T", " "} {
			for _, clock := range []string{"15:04:05.999999999", "15:04", "15", "150405.999999999", "1504"} {
				for _, zone := range []string{"Z07:00", "-0700", ""} {
					layouts = append(layouts, date+sep+clock+zone)
				}
			}
		}
		layouts = append(layouts, date)
	}
	return layouts
}()

var errNotISOTimestamp = errors.New("not an ISO-8601 timestamp")

// ValidUUID reports whether s is a UUID of any version in canonical hyphenated hex form.
func ValidUUID(s string) bool {
	if len(s) != canonicalUUIDLength {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// ParseISOTimestamp parses an ISO-8601 date or date-time in one of the forms listed for
// isoTimestampLayouts. A trailing "Z" is accepted as the UTC designator.
func ParseISOTimestamp(s string) (time.Time, error) {
	if strings.HasSuffix(s, "Z") {
		s = strings.TrimSuffix(s, "Z") + "+00:00"
	}
	for _, layout := range isoTimestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errNotISOTimestamp
}

// ValidISOTimestamp is true if v is a string that ParseISOTimestamp accepts.
func ValidISOTimestamp(v ldvalue.Value) bool {
	if v.Type() != ldvalue.StringType {
		return false
	}
	_, err := ParseISOTimestamp(v.StringValue())
	return err == nil
}

// MissingFields returns the names in fields that are not keys of obj, in the order given.
func MissingFields(obj ldvalue.Value, fields []string) []string {
	present := make(map[string]bool)
	for _, k := range obj.Keys() {
		present[k] = true
	}
	var missing []string
	for _, f := range fields {
		if !present[f] {
			missing = append(missing, f)
		}
	}
	return missing
}

// HasField is true if obj is a JSON object containing key.
func HasField(obj ldvalue.Value, key string) bool {
	return len(MissingFields(obj, []string{key})) == 0
}

// FieldNames returns the keys of obj in sorted order.
func FieldNames(obj ldvalue.Value) []string {
	keys := obj.Keys()
	sort.Strings(keys)
	return keys
}

// ConcatenateText joins the string values of the named fields with spaces, lowercased.
// Non-string fields contribute their JSON representation.
func ConcatenateText(obj ldvalue.Value, fields []string) string {
	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		v := obj.GetByKey(f)
		if v.Type() == ldvalue.StringType {
			parts = append(parts, v.StringValue())
		} else {
			parts = append(parts, v.JSONString())
		}
	}
	return strings.ToLower(strings.Join(parts, " "))
}

// ContainsAnyIndicator is a keyword heuristic: it is true if any of the indicators occurs in
// text. It is not a language detector.
func ContainsAnyIndicator(text string, indicators []string) bool {
	for _, ind := range indicators {
		if strings.Contains(text, strings.ToLower(ind)) {
			return true
		}
	}
	return false
}

// StringElements returns the string members of a JSON array, skipping other types. It returns
// nil if v is not an array.
func StringElements(v ldvalue.Value) []string {
	if v.Type() != ldvalue.ArrayType {
		return nil
	}
	ret := make([]string, 0, v.Count())
	for i := 0; i < v.Count(); i++ {
		if e := v.GetByIndex(i); e.Type() == ldvalue.StringType {
			ret = append(ret, e.StringValue())
		}
	}
	return ret
}
