// Package exitcode defines process exit codes.
package exitcode

const (
	// Success indicates successful completion. The command loop always
	// exits with Success; the other codes cover startup failures.
	Success = 0

	// UserError indicates bad command-line arguments.
	UserError = 1

	// ConfigError indicates an unusable configuration.
	ConfigError = 2

	// StorageError indicates the task store could not be opened or read.
	StorageError = 3
)
