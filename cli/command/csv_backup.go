package command

import (
	"fmt"

	"github.com/marketfeed/influx-backup/archive"
	"github.com/marketfeed/influx-backup/cli/flags"
	"github.com/marketfeed/influx-backup/factory"
	"github.com/urfave/cli"
)

type CSVBackupCommand struct {
}

func NewCSVBackupCommand() CSVBackupCommand {
	return CSVBackupCommand{}
}

func (b CSVBackupCommand) Cli() cli.Command {
	return cli.Command{
		Name:    "csv",
		Aliases: []string{"c"},
		Usage:   "Archive the CSV mirror into a dated zip file",
		Action:  b.Action,
		Before:  b.Before,
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:   "source, s",
				Value:  archive.DefaultSourceDir,
				EnvVar: "CSV_SOURCE_DIR",
				Usage:  "Directory of CSV files to archive",
			},
			cli.StringFlag{
				Name:   "destination, d",
				Value:  archive.DefaultDestinationDir,
				EnvVar: "BACKUP_DIR",
				Usage:  "Directory to write the archive to",
			},
		},
	}
}

func (b CSVBackupCommand) Before(c *cli.Context) error {
	return flags.Validate([]string{"source", "destination"}, c)
}

func (b CSVBackupCommand) Action(c *cli.Context) error {
	archiver := factory.BuildCSVArchiver(c.GlobalBool("debug"))

	result, err := archiver.Archive(c.String("source"), c.String("destination"))
	if err != nil {
		return redCliError(err)
	}

	if !result.Created {
		fmt.Fprintln(c.App.Writer, noCSVDirectoryMessage)
		return nil
	}

	fmt.Fprintf(c.App.Writer, csvBackupCreatedMessage+"\n", result.Path)
	return nil
}
