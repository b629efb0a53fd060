package controllers

import "github.com/sirupsen/logrus"

// SetLogLevel adjusts the level of the controllers logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}
