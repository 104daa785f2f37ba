package main

import (
	"os"

	"github.com/marketfeed/influx-backup/cli/command"
	"github.com/urfave/cli"
)

var version string

func main() {
	cli.AppHelpTemplate = helpTextTemplate

	influxBackupCommand := command.NewInfluxBackupCommand()

	app := cli.NewApp()

	app.Version = version

	app.Name = "InfluxDB Backup"
	app.HelpName = "influx-backup"
	app.Usage = "Backup the market data InfluxDB and CSV mirror"

	app.Flags = availableFlags()

	app.Action = influxBackupCommand.Action

	app.Commands = []cli.Command{
		influxBackupCommand.Cli(),
		command.NewCSVBackupCommand().Cli(),
		{
			Name:  "version",
			Usage: "Print the influx-backup version",
			Action: func(c *cli.Context) error {
				cli.ShowVersion(c)
				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func availableFlags() []cli.Flag {
	return []cli.Flag{
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logs",
		},
	}
}
