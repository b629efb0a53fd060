package services

import "github.com/sirupsen/logrus"

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogLevel adjusts the level of the services logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}
