package factory

import (
	"io"
	"os"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

// Logs go to stderr so stdout only carries the status lines.
var ApplicationLoggerOutput io.Writer = os.Stderr

func BuildLogger(debug bool) boshlog.Logger {
	return BuildLoggerWithCustomWriter(ApplicationLoggerOutput, debug)
}

func BuildLoggerWithCustomWriter(w io.Writer, debug bool) boshlog.Logger {
	if debug {
		return boshlog.NewWriterLogger(boshlog.LevelDebug, w)
	}
	return boshlog.NewWriterLogger(boshlog.LevelInfo, w)
}
