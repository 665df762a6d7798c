package interfaces

import "context"

// Logger is the leveled logging contract the plugin writes its scan,
// render, and lifecycle diagnostics through. The method set mirrors
// github.com/goliatone/go-logger, so a host build already using that
// package hands its logger straight in; anything else adapts behind
// LoggerProvider. A plugin constructed without a provider logs nothing.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out loggers by namespace. The plugin asks for
// "tags", "tags.frontmatter", "tags.render", and so on; a provider may
// scope children per name or return one shared instance for all of them.
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is an optional extension for attaching persistent structured
// fields, such as the page path under scan. Providers supporting it should
// return a new logger carrying the fields on every subsequent entry.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
