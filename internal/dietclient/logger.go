package dietclient

import "github.com/sirupsen/logrus"

// SetLogLevel adjusts the level of the dietclient logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}
