package database

import "github.com/sirupsen/logrus"

// SetLogLevel adjusts the level of the database logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}
