package core_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/named-data/extremum/core"
	"github.com/stretchr/testify/assert"
)

func TestLoggerLevels(t *testing.T) {
	defer core.InitializeLogger(os.Stderr)
	defer core.ResetConfig()

	var buf bytes.Buffer
	core.ResetConfig()
	core.InitializeLogger(&buf)
	core.LogInfo("Demo", "value==", 7, " done")
	core.LogDebug("Demo", "hidden")
	assert.Contains(t, buf.String(), "[Demo] value==7 done")
	assert.NotContains(t, buf.String(), "hidden")

	buf.Reset()
	core.SetConfig("core.log_level", "TRACE")
	core.InitializeLogger(&buf)
	core.LogTrace("Demo", "traced ", errors.New("boom"))
	assert.Contains(t, buf.String(), "[Demo] traced boom")

	buf.Reset()
	core.SetConfig("core.log_level", "ERROR")
	core.InitializeLogger(&buf)
	core.LogWarn("Demo", "quiet")
	core.LogTrace("Demo", "quiet")
	core.LogError("Demo", "loud")
	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "[Demo] loud")
}
