package main

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.New(w)
	logger.SetPrefix("domino")
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.DateTime)

	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	logger.SetLevel(lvl)
	return logger
}
