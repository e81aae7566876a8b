package engine

import (
	"strconv"
	"strings"

	"statq/domain/logic"
	"statq/domain/survey"
)

// EvaluateCondition decides one atomic condition against an answer value.
//
// Empty answers short-circuit: an empty answer makes is_empty true and every
// other operator false, including is_not_empty. Non-empty answers are
// unwrapped to a scalar or array before the operator applies.
func EvaluateCondition(op logic.Operator, answer survey.AnswerValue, comparison interface{}) bool {
	if answer.IsEmpty() {
		return op == logic.OpIsEmpty
	}
	return evaluateOperator(op, answer.Unwrap(), comparison)
}

func evaluateOperator(op logic.Operator, value, comparison interface{}) bool {
	switch op {
	case logic.OpEquals:
		return looseEqual(value, comparison)
	case logic.OpNotEquals:
		return !looseEqual(value, comparison)
	case logic.OpContains:
		return containsValue(value, comparison)
	case logic.OpNotContains:
		return !containsValue(value, comparison)
	case logic.OpGreaterThan:
		return ordered(value, comparison, false)
	case logic.OpLessThan:
		return ordered(value, comparison, true)
	case logic.OpIsEmpty:
		// The empty fast path already answered this; a non-empty value is
		// never empty here.
		return false
	case logic.OpIsNotEmpty:
		return true
	}
	return false
}

// looseEqual implements the equality contract: two arrays compare as
// unordered sets of equal size with full containment; an array against a
// scalar is equal iff the array is exactly the singleton {scalar}; scalars
// compare numerically when both sides coerce, else by string form.
func looseEqual(a, b interface{}) bool {
	aArr, aIsArr := toStringSlice(a)
	bArr, bIsArr := toStringSlice(b)

	switch {
	case aIsArr && bIsArr:
		if len(aArr) != len(bArr) {
			return false
		}
		set := make(map[string]bool, len(aArr))
		for _, s := range aArr {
			set[s] = true
		}
		for _, s := range bArr {
			if !set[s] {
				return false
			}
		}
		return true
	case aIsArr:
		return len(aArr) == 1 && aArr[0] == scalarString(b)
	case bIsArr:
		return len(bArr) == 1 && bArr[0] == scalarString(a)
	}

	if af, aok := toFloat(a); aok {
		if bf, bok := toFloat(b); bok {
			return af == bf
		}
	}
	return scalarString(a) == scalarString(b)
}

// containsValue is a case-insensitive substring test for strings and a
// membership test for arrays. Any other shape pairing is not containable and
// yields false (not_contains therefore yields true).
func containsValue(value, comparison interface{}) bool {
	if arr, ok := toStringSlice(value); ok {
		needle := scalarString(comparison)
		for _, s := range arr {
			if s == needle {
				return true
			}
		}
		return false
	}
	vs, vok := asString(value)
	cs, cok := asString(comparison)
	if vok && cok {
		return strings.Contains(strings.ToLower(vs), strings.ToLower(cs))
	}
	return false
}

// ordered compares numerically when both sides coerce to numbers, falling
// back to lexicographic comparison when both are strings. Any other pairing
// is unordered and yields false.
func ordered(value, comparison interface{}, less bool) bool {
	if vf, vok := toFloat(value); vok {
		if cf, cok := toFloat(comparison); cok {
			if less {
				return vf < cf
			}
			return vf > cf
		}
	}
	vs, vok := asString(value)
	cs, cok := asString(comparison)
	if vok && cok {
		if less {
			return vs < cs
		}
		return vs > cs
	}
	return false
}

func toStringSlice(v interface{}) ([]string, bool) {
	switch t := v.(type) {
	case []string:
		return t, true
	case []interface{}:
		out := make([]string, len(t))
		for i, e := range t {
			out[i] = scalarString(e)
		}
		return out, true
	}
	return nil, false
}

func asString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func toFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}

func scalarString(v interface{}) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'f', -1, 32)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case nil:
		return ""
	}
	return ""
}
