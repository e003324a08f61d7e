//go:build !windows

package winsock

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartupUnsupported(t *testing.T) {
	s, err := Startup()
	assert.Nil(t, s)
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func TestSessionCloseIsIdempotent(t *testing.T) {
	s := &Session{}
	assert.NoError(t, s.Close())
	assert.True(t, s.closed)
	assert.NoError(t, s.Close())

	var nilSession *Session
	assert.NoError(t, nilSession.Close())
}
