package nutrition

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetLogLevel(t *testing.T) {
	defer SetLogLevel(logrus.InfoLevel)

	SetLogLevel(logrus.ErrorLevel)

	assert.Equal(t, logrus.ErrorLevel, log.GetLevel())
}
