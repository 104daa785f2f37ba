package backup

import (
	"fmt"
	"io"

	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

const (
	ContainerName   = "influxdb"
	DestinationPath = "./backups"

	StartMessage      = "Starting InfluxDB backup..."
	CompletionMessage = "InfluxDB backup completed in " + DestinationPath

	logTag = "influx-backup"
)

type Invoker struct {
	runner CmdRunner
	stdout io.Writer
	stderr io.Writer
	logger Logger
}

func NewInvoker(runner CmdRunner, stdout, stderr io.Writer, logger Logger) *Invoker {
	return &Invoker{
		runner: runner,
		stdout: stdout,
		stderr: stderr,
		logger: logger,
	}
}

func (i *Invoker) Command(token string) boshsys.Command {
	return boshsys.Command{
		Name: "docker",
		Args: []string{
			"exec", ContainerName,
			"influx", "backup", DestinationPath,
			"--token", token,
		},
		Stdout: i.stdout,
		Stderr: i.stderr,

		// Stay in the caller's process group so a terminal interrupt reaches docker too.
		KeepAttached: true,
	}
}

// Backup blocks until the containerised influx client exits. A non-zero exit
// is returned as a CommandFailedError and the completion message is skipped.
func (i *Invoker) Backup(token string) error {
	fmt.Fprintln(i.stdout, StartMessage)

	i.logger.Debug(logTag, "Running 'docker exec %s influx backup %s --token %s'", ContainerName, DestinationPath, MaskToken(token))
	_, _, exitStatus, err := i.runner.RunComplexCommand(i.Command(token))
	if exitStatus < 0 {
		i.logger.Error(logTag, "Could not start docker: %s", err)
		return NewCommandFailedError(NotStartedExitCode, err)
	}
	if exitStatus != 0 {
		i.logger.Debug(logTag, "influx backup exited with status %d", exitStatus)
		return NewCommandFailedError(exitStatus, err)
	}
	if err != nil {
		return NewCommandFailedError(1, err)
	}

	fmt.Fprintln(i.stdout, CompletionMessage)
	return nil
}

// Run resolves the token from the environment and performs the backup.
func (i *Invoker) Run(lookup LookupEnvFunc) error {
	token, usedDefault := ResolveToken(lookup)
	if usedDefault {
		i.logger.Warn(logTag, "%s is not set; using the built-in default token", TokenEnvVar)
	}

	return i.Backup(token)
}
