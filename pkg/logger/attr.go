package logger

import "log/slog"

// Error records err under "error"; nil yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ContextID records a validation context identifier under "context_id".
func ContextID(id string) slog.Attr {
	return slog.String("context_id", id)
}

// Field records a field name under "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Fields records several field names under "fields".
func Fields(names []string) slog.Attr {
	return slog.Any("fields", names)
}

// Path records a message path under "path".
func Path(p string) slog.Attr {
	return slog.String("path", p)
}

// State records a rule or chain state under "state".
func State(s any) slog.Attr {
	return slog.Any("state", s)
}

// Count records a count under "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Component records the component name under "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}
