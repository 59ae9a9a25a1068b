package render

import (
	"fmt"
	"html/template"
	"strings"
)

func getString(data map[string]interface{}, key string) string {
	if data == nil {
		return ""
	}
	if value, ok := data[key]; ok {
		if str, ok := value.(string); ok {
			return str
		}
	}
	return ""
}

func getInt(data map[string]interface{}, key string, fallback int) int {
	if data == nil {
		return fallback
	}
	switch v := data[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case float32:
		return int(v)
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return fallback
		}
		var parsed int
		if _, err := fmt.Sscanf(trimmed, "%d", &parsed); err == nil {
			return parsed
		}
		return fallback
	default:
		return fallback
	}
}

func escape(value string) string {
	return template.HTMLEscapeString(value)
}

func escapeAttr(value string) string {
	return template.HTMLEscapeString(value)
}

func classes(prefix, suffix string) string {
	if prefix == "" {
		prefix = "page"
	}
	return prefix + "__" + suffix
}
