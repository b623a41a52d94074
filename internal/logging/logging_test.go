package logging

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })
	var buf bytes.Buffer

	Setup("debug", &buf)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	Setup("loud", &buf)
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	assert.Contains(t, buf.String(), `Unknown LOG_LEVEL \"loud\"`)
}
