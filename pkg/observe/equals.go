package observe

import "reflect"

// equalValues is the null-safe equality used for change suppression.
// Builtin scalar types compare with ==; everything else falls back to
// reflect.DeepEqual, which treats two nil pointers or interfaces as equal.
func equalValues[T any](a, b T) bool {
	switch av := any(a).(type) {
	case int:
		return av == any(b).(int)
	case int8:
		return av == any(b).(int8)
	case int16:
		return av == any(b).(int16)
	case int32:
		return av == any(b).(int32)
	case int64:
		return av == any(b).(int64)
	case uint:
		return av == any(b).(uint)
	case uint8:
		return av == any(b).(uint8)
	case uint16:
		return av == any(b).(uint16)
	case uint32:
		return av == any(b).(uint32)
	case uint64:
		return av == any(b).(uint64)
	case float32:
		return av == any(b).(float32)
	case float64:
		return av == any(b).(float64)
	case string:
		return av == any(b).(string)
	case bool:
		return av == any(b).(bool)
	default:
		return reflect.DeepEqual(a, b)
	}
}

// Equal exposes the package's default equality for callers that layer
// their own change detection on top of the helper.
func Equal[T any](a, b T) bool {
	return equalValues(a, b)
}
