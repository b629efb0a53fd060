package nutrition

import "github.com/sirupsen/logrus"

// SetLogLevel adjusts the level of the nutrition logger
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}
