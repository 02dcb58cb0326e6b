package dispatch

// Config defines a set of configuration values that dictate how the dispatch
// handler behaves at a global level.
type Config struct {
	ProblemDetailsTypePrefix string
	DebuggingEnabled         bool
	BodyContentLengthLimit   int64
}
