// Package ports defines the interfaces that decouple the pipeline from its
// adapters: logging, file access, rendering, frame sources, video encoders,
// and the debug sink.
package ports

// LogLevel is the severity of a log message.
type LogLevel int

const (
	// LevelDebug is for per-frame and per-component detail.
	LevelDebug LogLevel = iota
	// LevelInfo is for job-level progress.
	LevelInfo
	// LevelWarn is for recoverable problems, like an effect that did not
	// apply or a secondary clip shorter than its transition window.
	LevelWarn
	// LevelError is for problems that abort the job.
	LevelError
	// LevelQuiet suppresses all output.
	LevelQuiet
)

// String returns the level name as accepted on the command line.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelQuiet:
		return "quiet"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a level name; unknown names fall back to info.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	case "quiet":
		return LevelQuiet
	default:
		return LevelInfo
	}
}

// Logger abstracts logging. The msg parameter is a translatable message
// key; args are fmt-style format arguments.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger that prefixes messages with the
	// component name. Stages use this to tag their output.
	WithComponent(component string) Logger
}
