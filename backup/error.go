package backup

import "github.com/pkg/errors"

// NotStartedExitCode mirrors what a shell reports when it cannot run a command.
const NotStartedExitCode = 127

type CommandFailedError struct {
	error
	ExitCode int
}

func NewCommandFailedError(exitCode int, cause error) CommandFailedError {
	if cause == nil {
		cause = errors.Errorf("exit status %d", exitCode)
	}
	return CommandFailedError{
		error:    errors.Wrapf(cause, "influx backup failed with exit code %d", exitCode),
		ExitCode: exitCode,
	}
}

func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	switch err := errors.Cause(err).(type) {
	case CommandFailedError:
		return err.ExitCode
	case *CommandFailedError:
		return err.ExitCode
	default:
		return 1
	}
}
