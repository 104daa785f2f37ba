package command

import (
	"github.com/marketfeed/influx-backup/backup"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"github.com/urfave/cli"
)

var _ = Describe("influx-backup", func() {
	Describe("exitError", func() {
		It("returns nil when the backup succeeded", func() {
			Expect(exitError(nil)).To(BeNil())
		})

		It("exits with the external command's exit code and no message", func() {
			err := exitError(backup.NewCommandFailedError(5, errors.New("boom")))

			exitCoder, ok := err.(cli.ExitCoder)
			Expect(ok).To(BeTrue())
			Expect(exitCoder.ExitCode()).To(Equal(5))
			Expect(exitCoder.Error()).To(BeEmpty())
		})

		It("keeps exit code 1 from the external command silent", func() {
			err := exitError(errors.Wrap(backup.NewCommandFailedError(1, nil), "wrapped"))

			exitCoder := err.(cli.ExitCoder)
			Expect(exitCoder.ExitCode()).To(Equal(1))
			Expect(exitCoder.Error()).To(BeEmpty())
		})

		It("reports any other error in red with exit code 1", func() {
			err := exitError(errors.New("could not build"))

			exitCoder := err.(cli.ExitCoder)
			Expect(exitCoder.ExitCode()).To(Equal(1))
			Expect(exitCoder.Error()).To(ContainSubstring("could not build"))
		})
	})

	Describe("commands", func() {
		It("names the influx backup command after its container and destination", func() {
			command := NewInfluxBackupCommand().Cli()

			Expect(command.Name).To(Equal("influx"))
			Expect(command.Usage).To(ContainSubstring("influxdb"))
			Expect(command.Usage).To(ContainSubstring("./backups"))
		})

		It("defaults the csv command to the data_csv and backups directories", func() {
			command := NewCSVBackupCommand().Cli()

			Expect(command.Name).To(Equal("csv"))
			Expect(command.Flags).To(ContainElement(cli.StringFlag{
				Name:   "source, s",
				Value:  "data_csv",
				EnvVar: "CSV_SOURCE_DIR",
				Usage:  "Directory of CSV files to archive",
			}))
		})
	})
})
