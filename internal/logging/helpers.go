package logging

import (
	"maps"

	"github.com/goliatone/go-tags/pkg/interfaces"
)

// WithFields attaches structured fields, such as the page path or tag name
// under processing, when the logger supports the FieldsLogger extension.
// Loggers without the extension are returned unchanged, so pipeline code
// never branches on provider capability. Nil or empty maps are a no-op.
func WithFields(logger interfaces.Logger, fields map[string]any) interfaces.Logger {
	if logger == nil || len(fields) == 0 {
		return logger
	}

	if fieldsLogger, ok := logger.(interfaces.FieldsLogger); ok {
		copied := make(map[string]any, len(fields))
		maps.Copy(copied, fields)
		return fieldsLogger.WithFields(copied)
	}

	return logger
}
