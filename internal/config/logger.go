package config

import "github.com/sirupsen/logrus"

// SetLogLevel adjusts the level of the config logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}
