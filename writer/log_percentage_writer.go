package writer

import (
	"io"

	"github.com/marketfeed/influx-backup/backup"
)

// LogPercentageWriter logs every five percent of totalSize written. Writer can
// be swapped between writes so that progress spans several destinations.
type LogPercentageWriter struct {
	Writer              io.Writer
	bytesWritten        int64
	logger              backup.Logger
	totalSize           int64
	tag                 string
	message             string
	lastLogPercentage   int64
	percentageIncrement int64
}

func NewLogPercentageWriter(writer io.Writer, logger backup.Logger, totalSize int64, tag, message string) *LogPercentageWriter {
	return &LogPercentageWriter{
		Writer:              writer,
		logger:              logger,
		totalSize:           totalSize,
		tag:                 tag,
		message:             message,
		percentageIncrement: 5,
	}
}

func (l *LogPercentageWriter) Write(b []byte) (int, error) {
	n, err := l.Writer.Write(b)
	if err != nil {
		return n, err
	}

	l.bytesWritten += int64(n)
	if l.totalSize <= 0 {
		return n, nil
	}

	percentageWrittenSoFar := (100 * l.bytesWritten) / l.totalSize
	if percentageWrittenSoFar > 100 {
		percentageWrittenSoFar = 100
	}

	if percentageWrittenSoFar >= l.lastLogPercentage+l.percentageIncrement {
		l.logger.Info(l.tag, l.message, percentageWrittenSoFar)
		l.lastLogPercentage = percentageWrittenSoFar - percentageWrittenSoFar%l.percentageIncrement
	}

	return n, nil
}

func (l *LogPercentageWriter) BytesWritten() int64 {
	return l.bytesWritten
}
