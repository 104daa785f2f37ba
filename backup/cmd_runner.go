package backup

import boshsys "github.com/cloudfoundry/bosh-utils/system"

//go:generate counterfeiter -o fakes/fake_cmd_runner.go . CmdRunner
type CmdRunner interface {
	RunComplexCommand(cmd boshsys.Command) (stdout, stderr string, exitStatus int, err error)
}
