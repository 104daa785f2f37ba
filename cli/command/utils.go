package command

import (
	"github.com/marketfeed/influx-backup/backup"
	"github.com/mgutz/ansi"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

// exitError hands a failed influx backup's exit code back to the shell. The
// child has already written its own diagnostics, so the message is empty.
func exitError(err error) error {
	if err == nil {
		return nil
	}

	if _, ok := errors.Cause(err).(backup.CommandFailedError); ok {
		return cli.NewExitError("", backup.ExitCode(err))
	}

	return redCliError(err)
}

func redCliError(err error) *cli.ExitError {
	return cli.NewExitError(ansi.Color(err.Error(), "red"), 1)
}
