package cmd

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"frisbii-transform-mcp/internal/app"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, ExitCodeError, getExitCode(errors.New("boom")))
	assert.Equal(t, ExitCodeAuthRequired, getExitCode(app.ErrNoCredentials))
	assert.Equal(t, ExitCodeAuthRequired, getExitCode(fmt.Errorf("failed to initialize application: %w", app.ErrNoCredentials)))
}

func TestSetVersion(t *testing.T) {
	old := GetVersion()
	defer SetVersion(old)

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", GetVersion())
}
