package cli

import clierrors "github.com/wildbearsoftware/wikify/internal/errors"

// Exit codes for the wikify CLI
// These codes let release scripts tell bad input from missing files
const (
	// ExitSuccess indicates the page was written completely
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure such as a closed stdout
	ExitFailure = 1

	// ExitInvalidArguments indicates invalid command arguments
	ExitInvalidArguments = 3

	// ExitMissingInput indicates a release file or NEWS could not be read
	ExitMissingInput = 4

	// ExitConfigError indicates invalid configuration
	ExitConfigError = 6
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if cliErr := clierrors.AsCLIError(err); cliErr != nil {
		switch cliErr.Category {
		case clierrors.Argument:
			return ExitInvalidArguments
		case clierrors.Prerequisite:
			return ExitMissingInput
		case clierrors.Configuration:
			return ExitConfigError
		}
	}
	return ExitFailure
}
