package schema

import (
	"encoding/json"
	"fmt"
	"strconv"
	"unicode/utf8"
)

func checkString(rule fieldRule, value interface{}) (interface{}, string) {
	str, ok := value.(string)
	if !ok {
		return nil, "expected a text value"
	}

	if v := rule.def.Validation; v != nil {
		length := utf8.RuneCountInString(str)
		if v.Min != nil && length < int(*v.Min) {
			return nil, fmt.Sprintf("must be at least %d characters", int(*v.Min))
		}
		if v.Max != nil && length > int(*v.Max) {
			return nil, fmt.Sprintf("must be at most %d characters", int(*v.Max))
		}
	}
	if rule.pattern != nil && !rule.pattern.MatchString(str) {
		return nil, "does not match the expected format"
	}

	return str, ""
}

// checkLooseString backs fields whose declared type is unknown: any string
// passes, constraints are not applied.
func checkLooseString(_ fieldRule, value interface{}) (interface{}, string) {
	str, ok := value.(string)
	if !ok {
		return nil, "expected a text value"
	}
	return str, ""
}

// checkNumber coerces JSON numbers, Go ints and numeric strings (form input
// arrives as strings) into float64 before applying the range constraints.
func checkNumber(rule fieldRule, value interface{}) (interface{}, string) {
	num, ok := coerceNumber(value)
	if !ok {
		return nil, "expected a number"
	}

	if v := rule.def.Validation; v != nil {
		if v.Min != nil && num < *v.Min {
			return nil, fmt.Sprintf("must be at least %v", *v.Min)
		}
		if v.Max != nil && num > *v.Max {
			return nil, fmt.Sprintf("must be at most %v", *v.Max)
		}
	}

	return num, ""
}

func coerceNumber(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case json.Number:
		num, err := v.Float64()
		return num, err == nil
	case string:
		num, err := strconv.ParseFloat(v, 64)
		return num, err == nil
	default:
		return 0, false
	}
}

func checkBoolean(_ fieldRule, value interface{}) (interface{}, string) {
	b, ok := value.(bool)
	if !ok {
		return nil, "expected true or false"
	}
	return b, ""
}
