package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makechair/text-analyzer/internal/logger"
)

func TestRootCmd_Commands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	for _, want := range []string{"analyze", "show", "watch", "history", "settings", "tui", "mcp", "version"} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_VerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestRootCmd_VerboseEnablesLogger(t *testing.T) {
	defer logger.SetVerbose(false)

	_, err := execute(t, "", "--verbose", "version")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestSetServices(t *testing.T) {
	cleanup, ts := installTestServices()
	defer cleanup()

	assert.Equal(t, ts.analysis, analysisService)
	assert.Equal(t, ts.settings, settingsService)
	assert.Equal(t, ts.watcher, fileWatcher)
	assert.NotNil(t, concordanceService)
	assert.NotNil(t, reportService)
}

func TestSetVersion(t *testing.T) {
	original := version
	defer func() { version = original }()

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)

	SetVersion("")
	assert.Equal(t, "1.2.3", version)
}
