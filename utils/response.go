package utils

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/gin-gonic/gin"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONFieldErrors reports client-side style validation failures as a map of
// field -> message so forms can surface per-field errors.
func JSONFieldErrors(c *gin.Context, code int, fields map[string]string) {
	c.JSON(code, gin.H{"success": false, "errors": fields})
}

// ExtractErrorMessage normalizes the several error body shapes the API and
// older deployments emit into one display string. Fallback order:
//
//	literal string -> non_field_errors[0] -> detail/error string -> first
//	key's first array element -> stringified object
//
// It never fails; unrecognizable bodies come back verbatim.
func ExtractErrorMessage(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var asString string
	if err := json.Unmarshal(body, &asString); err == nil {
		return asString
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(body, &obj); err != nil {
		// Not JSON at all; show it as-is.
		return trimmed
	}

	if msg := firstOfArray(obj["non_field_errors"]); msg != "" {
		return msg
	}
	for _, key := range []string{"detail", "error"} {
		if raw, ok := obj[key]; ok {
			var msg string
			if err := json.Unmarshal(raw, &msg); err == nil && msg != "" {
				return msg
			}
		}
	}

	// First object key's first array element, in stable key order.
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if msg := firstOfArray(obj[k]); msg != "" {
			return msg
		}
	}

	return trimmed
}

func firstOfArray(raw json.RawMessage) string {
	if raw == nil {
		return ""
	}
	var arr []string
	if err := json.Unmarshal(raw, &arr); err == nil && len(arr) > 0 {
		return arr[0]
	}
	return ""
}
