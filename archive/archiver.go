package archive

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/clock"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	"github.com/dustin/go-humanize"
	"github.com/marketfeed/influx-backup/backup"
	"github.com/marketfeed/influx-backup/writer"
	"github.com/pkg/errors"
)

const (
	DefaultSourceDir      = "data_csv"
	DefaultDestinationDir = "backups"

	logTag = "csv-backup"
)

type Result struct {
	Created bool
	Path    string
	Size    int64
}

type Archiver struct {
	fs     boshsys.FileSystem
	clock  clock.Clock
	logger backup.Logger
}

func NewArchiver(fs boshsys.FileSystem, clock clock.Clock, logger backup.Logger) Archiver {
	return Archiver{fs: fs, clock: clock, logger: logger}
}

func ArchiveName(clock clock.Clock) string {
	return "csv_backup_" + clock.Now().Format("20060102") + ".zip"
}

// Archive zips every regular file under srcDir into a dated archive in
// destDir. A missing srcDir is not an error; the returned Result is simply
// not Created.
func (a Archiver) Archive(srcDir, destDir string) (Result, error) {
	if !a.fs.FileExists(srcDir) {
		a.logger.Info(logTag, "Source directory '%s' does not exist", srcDir)
		return Result{}, nil
	}

	if err := a.fs.MkdirAll(destDir, 0755); err != nil {
		return Result{}, errors.Wrapf(err, "failed creating backup directory '%s'", destDir)
	}

	archivePath := filepath.Join(destDir, ArchiveName(a.clock))
	a.logger.Debug(logTag, "Writing '%s' from '%s'", archivePath, srcDir)

	file, err := a.fs.OpenFile(archivePath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed creating archive '%s'", archivePath)
	}

	writeErr := a.writeArchive(file, srcDir, archivePath)
	closeErr := file.Close()
	if writeErr != nil {
		return Result{}, writeErr
	}
	if closeErr != nil {
		return Result{}, errors.Wrapf(closeErr, "failed closing archive '%s'", archivePath)
	}

	info, err := a.fs.Stat(archivePath)
	if err != nil {
		return Result{}, errors.Wrapf(err, "failed reading archive '%s'", archivePath)
	}

	a.logger.Info(logTag, "Wrote '%s' (%s)", archivePath, humanize.Bytes(uint64(info.Size())))
	return Result{Created: true, Path: archivePath, Size: info.Size()}, nil
}

type entry struct {
	path string
	name string
	info os.FileInfo
}

func (a Archiver) writeArchive(w io.Writer, srcDir, archivePath string) error {
	entries, totalSize, err := a.findFiles(srcDir, archivePath)
	if err != nil {
		return errors.Wrapf(err, "failed archiving '%s'", srcDir)
	}

	a.logger.Info(logTag, "Archiving %d files (%s) from '%s'", len(entries), humanize.Bytes(uint64(totalSize)), srcDir)

	zipWriter := zip.NewWriter(w)
	progress := writer.NewLogPercentageWriter(nil, a.logger, totalSize, logTag, "Archived %d%%")

	for _, e := range entries {
		if err := a.addFile(zipWriter, progress, e); err != nil {
			return errors.Wrapf(err, "failed adding '%s' to archive", e.path)
		}
	}

	return errors.Wrap(zipWriter.Close(), "failed finalising archive")
}

func (a Archiver) findFiles(srcDir, archivePath string) ([]entry, int64, error) {
	absArchivePath, err := filepath.Abs(archivePath)
	if err != nil {
		return nil, 0, err
	}

	var entries []entry
	var totalSize int64

	err = a.fs.Walk(srcDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if absPath, err := filepath.Abs(path); err == nil && absPath == absArchivePath {
			return nil
		}

		relPath, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}

		entries = append(entries, entry{path: path, name: filepath.ToSlash(relPath), info: info})
		totalSize += info.Size()
		return nil
	})

	return entries, totalSize, err
}

func (a Archiver) addFile(zipWriter *zip.Writer, progress *writer.LogPercentageWriter, e entry) error {
	header, err := zip.FileInfoHeader(e.info)
	if err != nil {
		return err
	}
	header.Name = e.name
	header.Method = zip.Deflate

	zipEntry, err := zipWriter.CreateHeader(header)
	if err != nil {
		return err
	}

	contents, err := a.fs.ReadFile(e.path)
	if err != nil {
		return err
	}

	progress.Writer = zipEntry
	if _, err := progress.Write(contents); err != nil {
		return err
	}

	a.logger.Debug(logTag, "Added '%s'", e.name)
	return nil
}
