package helpers

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FirstSet returns the value of the first key whose value is set, skipping
// nil, empty strings and zero numbers.
func FirstSet(doc map[string]interface{}, keys ...string) (interface{}, bool) {
	for _, k := range keys {
		v, ok := doc[k]
		if ok && !isBlank(v) {
			return v, true
		}
	}
	return nil, false
}

// String returns the first set key rendered as a string, or "".
func String(doc map[string]interface{}, keys ...string) string {
	v, ok := FirstSet(doc, keys...)
	if !ok {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// Time returns the first set key that holds a timestamp.
func Time(doc map[string]interface{}, keys ...string) *time.Time {
	v, ok := FirstSet(doc, keys...)
	if !ok {
		return nil
	}
	var t time.Time
	switch ts := v.(type) {
	case primitive.DateTime:
		t = ts.Time()
	case time.Time:
		t = ts
	case primitive.Timestamp:
		t = time.Unix(int64(ts.T), 0)
	default:
		return nil
	}
	t = t.UTC()
	return &t
}

// Int returns the first set key as an int, or def.
func Int(doc map[string]interface{}, def int, keys ...string) int {
	v, ok := FirstSet(doc, keys...)
	if !ok {
		return def
	}
	switch n := v.(type) {
	case int:
		return n
	case int32:
		return int(n)
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return def
}

// AsMap accepts the shapes a nested document can decode into.
func AsMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case bson.M:
		return m, true
	case map[string]interface{}:
		return m, true
	case bson.D:
		return m.Map(), true
	}
	return nil, false
}

// AsSlice accepts the shapes a nested array can decode into.
func AsSlice(v interface{}) ([]interface{}, bool) {
	switch a := v.(type) {
	case bson.A:
		return a, true
	case []interface{}:
		return a, true
	}
	return nil, false
}

func isBlank(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return true
	case string:
		return x == ""
	case int:
		return x == 0
	case int32:
		return x == 0
	case int64:
		return x == 0
	case float64:
		return x == 0
	case bool:
		return !x
	}
	return false
}
