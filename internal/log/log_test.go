package log

import (
	"bytes"
	"errors"
	"testing"

	"github.com/apex/log"
	"github.com/stretchr/testify/assert"
)

func TestCustomHandler(t *testing.T) {
	var buf bytes.Buffer
	logger := &log.Logger{Handler: &CustomHandler{Writer: &buf}, Level: log.DebugLevel}

	logger.WithField("provider", "{X}").WithError(errors.New("boom")).Debug("lookup failed")

	assert.Regexp(t, `^\d{4}-\d\d-\d\d \d\d:\d\d:\d\d D lookup failed error=boom provider=\{X\}\n$`, buf.String())
}

func TestInitLoggerLevel(t *testing.T) {
	tests := []struct {
		env  string
		want log.Level
	}{
		{"", log.ErrorLevel},
		{"debug", log.DebugLevel},
		{"WARN", log.WarnLevel},
		{"nonsense", log.ErrorLevel},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv("LSPENUM_LOG", tt.env)
			InitLogger()
			assert.Equal(t, tt.want, log.Log.(*log.Logger).Level)
		})
	}
}
