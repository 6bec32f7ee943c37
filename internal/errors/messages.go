package errors

import "fmt"

// Usage is the command synopsis shown with argument errors.
const Usage = "wikify <version>"

// MissingVersion creates an error for a missing version argument.
func MissingVersion() *CLIError {
	return NewArgumentErrorWithUsage(
		"version is required",
		Usage,
		"Pass the version being released as the only argument",
		"Example: wikify 1.2.3",
	)
}

// TooManyArguments creates an error when more than one argument is given.
func TooManyArguments(n int) *CLIError {
	return NewArgumentErrorWithUsage(
		fmt.Sprintf("expected exactly one version argument, got %d", n),
		Usage,
		"Quote the version if it contains spaces",
	)
}

// ReleaseFileMissing creates an error for a release file that cannot be read.
func ReleaseFileMissing(name, dir string, err error) *CLIError {
	return WrapWithMessage(err, Prerequisite,
		fmt.Sprintf("release file %s could not be read", name),
		"Build the release files before generating the page",
		fmt.Sprintf("Check that %s exists in %s", name, dir),
		"Or point at the release directory with: wikify -C <dir> <version>",
	)
}

// NewsFileMissing creates an error for a NEWS file that cannot be read.
func NewsFileMissing(name, dir string, err error) *CLIError {
	return WrapWithMessage(err, Prerequisite,
		fmt.Sprintf("%s could not be read", name),
		fmt.Sprintf("Check that %s exists in %s", name, dir),
		"Or set news_file in .wikify.yml",
	)
}

// ConfigError creates an error for configuration that failed to load or validate.
func ConfigError(err error) *CLIError {
	return WrapWithMessage(err, Configuration,
		"invalid configuration",
		"Check .wikify.yml and WIKIFY_* environment variables",
		"Show the effective configuration with: wikify config show",
	)
}

// OutputFailed creates an error when the page cannot be written.
func OutputFailed(err error) *CLIError {
	return WrapWithMessage(err, Runtime, "writing release page")
}
