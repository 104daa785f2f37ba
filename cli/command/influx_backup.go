package command

import (
	"os"

	"github.com/marketfeed/influx-backup/backup"
	"github.com/marketfeed/influx-backup/factory"
	"github.com/urfave/cli"
)

type InfluxBackupCommand struct {
}

func NewInfluxBackupCommand() InfluxBackupCommand {
	return InfluxBackupCommand{}
}

func (i InfluxBackupCommand) Cli() cli.Command {
	return cli.Command{
		Name:    "influx",
		Aliases: []string{"i"},
		Usage:   "Backup InfluxDB from the '" + backup.ContainerName + "' container into " + backup.DestinationPath + " using $" + backup.TokenEnvVar,
		Action:  i.Action,
	}
}

func (i InfluxBackupCommand) Action(c *cli.Context) error {
	invoker := factory.BuildInfluxBackuper(c.GlobalBool("debug"))

	return exitError(invoker.Run(os.LookupEnv))
}
