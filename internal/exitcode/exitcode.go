// Package exitcode defines the process exit codes.
package exitcode

const (
	// Success indicates the session ended normally.
	Success = 0

	// Failure indicates a runtime error, such as an unreadable data file.
	Failure = 1

	// Usage indicates bad flags or configuration values.
	Usage = 2
)
