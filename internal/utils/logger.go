package utils

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	logger     *logrus.Logger
	loggerOnce sync.Once
)

// GetLogger returns the shared application logger.
func GetLogger() *logrus.Logger {
	loggerOnce.Do(func() {
		logger = logrus.New()

		// Log level from environment, default info
		level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
		if err != nil {
			level = logrus.InfoLevel
		}
		logger.SetLevel(level)

		logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
		logger.SetOutput(os.Stdout)
	})

	return logger
}
