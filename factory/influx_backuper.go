package factory

import (
	"os"

	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/marketfeed/influx-backup/backup"
)

func BuildInfluxBackuper(debug bool) *backup.Invoker {
	logger := BuildLogger(debug)

	// The runner logs full command lines at debug level, which would expose the token.
	runnerLogger := BuildLogger(false)

	return backup.NewInvoker(
		boshsys.NewExecCmdRunner(runnerLogger),
		os.Stdout,
		os.Stderr,
		logger,
	)
}
