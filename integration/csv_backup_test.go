package integration

import (
	"archive/zip"
	"os"
	"path/filepath"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
	"github.com/onsi/gomega/gexec"
)

var _ = Describe("csv backup", func() {
	var (
		workspace   string
		session     *gexec.Session
		archiveName string
	)

	BeforeEach(func() {
		workspace = GinkgoT().TempDir()
		archiveName = "csv_backup_" + time.Now().Format("20060102") + ".zip"
	})

	Context("when the CSV directory exists", func() {
		BeforeEach(func() {
			Expect(os.MkdirAll(filepath.Join(workspace, "data_csv", "BANKNIFTY"), 0755)).To(Succeed())
			Expect(os.WriteFile(filepath.Join(workspace, "data_csv", "BANKNIFTY", "atm.csv"), []byte("ts,iv\n"), 0644)).To(Succeed())
		})

		It("archives it into the backups directory", func() {
			session = binary.Run(workspace, []string{}, "csv")

			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out).To(gbytes.Say("CSV backup created at backups/" + archiveName))

			reader, err := zip.OpenReader(filepath.Join(workspace, "backups", archiveName))
			Expect(err).NotTo(HaveOccurred())
			defer reader.Close()
			Expect(reader.File).To(HaveLen(1))
			Expect(reader.File[0].Name).To(Equal("BANKNIFTY/atm.csv"))
		})

		It("honours the BACKUP_DIR variable", func() {
			session = binary.Run(workspace, []string{"BACKUP_DIR=archives"}, "csv")

			Expect(session.ExitCode()).To(Equal(0))
			Expect(filepath.Join(workspace, "archives", archiveName)).To(BeAnExistingFile())
		})

		It("honours the --destination flag", func() {
			session = binary.Run(workspace, []string{}, "csv", "--destination", "elsewhere")

			Expect(session.ExitCode()).To(Equal(0))
			Expect(filepath.Join(workspace, "elsewhere", archiveName)).To(BeAnExistingFile())
		})
	})

	Context("when the CSV directory does not exist", func() {
		It("says so and succeeds", func() {
			session = binary.Run(workspace, []string{}, "csv")

			Expect(session.ExitCode()).To(Equal(0))
			Expect(session.Out).To(gbytes.Say("No CSV directory found to backup."))
			Expect(filepath.Join(workspace, "backups")).NotTo(BeADirectory())
		})
	})

	Context("when a directory flag is empty", func() {
		It("fails with a usage error", func() {
			session = binary.Run(workspace, []string{}, "csv", "--source", "")

			Expect(session.ExitCode()).To(Equal(1))
			Expect(session.Err).To(gbytes.Say("--source flag must not be empty."))
		})
	})
})
