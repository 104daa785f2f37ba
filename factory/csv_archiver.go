package factory

import (
	"code.cloudfoundry.org/clock"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/marketfeed/influx-backup/archive"
)

func BuildCSVArchiver(debug bool) archive.Archiver {
	logger := BuildLogger(debug)

	return archive.NewArchiver(boshsys.NewOsFileSystem(logger), clock.NewClock(), logger)
}
