package main

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdirTemp runs the test from an empty directory so logs/ never lands in the source tree
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() {
		log.SetOutput(os.Stderr)
		_ = os.Chdir(wd)
	})
}

func TestSetupLogging_DisabledByDefault(t *testing.T) {
	chdirTemp(t)

	logFile := setupLogging(false)
	assert.Nil(t, logFile, "no log file when debug=false")
	assert.Equal(t, io.Discard, log.Writer())

	_, err := os.Stat(logDir)
	assert.True(t, os.IsNotExist(err), "logs directory not created")
}

func TestSetupLogging_EnabledWithDebug(t *testing.T) {
	chdirTemp(t)

	logFile := setupLogging(true)
	require.NotNil(t, logFile)
	defer logFile.Close()

	logPath := filepath.Join(logDir, logFileName)
	_, err := os.Stat(logPath)
	require.NoError(t, err, "log file created")

	log.Println("Test log message")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.NotZero(t, info.Size(), "log file has content")
}

func TestSetupLogging_Rotation(t *testing.T) {
	chdirTemp(t)

	require.NoError(t, os.MkdirAll(logDir, 0755))
	logPath := filepath.Join(logDir, logFileName)

	// Just over the rotation threshold
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644))

	logFile := setupLogging(true)
	require.NotNil(t, logFile)
	defer logFile.Close()

	entries, err := os.ReadDir(logDir)
	require.NoError(t, err)

	rotatedFound := false
	for _, entry := range entries {
		if entry.Name() != logFileName && filepath.Ext(entry.Name()) == ".log" {
			rotatedFound = true
			break
		}
	}
	assert.True(t, rotatedFound, "rotated log file present")

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.LessOrEqual(t, info.Size(), int64(maxLogSize), "fresh log file after rotation")
}

func TestSetupLogging_NoStdoutStderr(t *testing.T) {
	chdirTemp(t)

	logFile := setupLogging(true)
	require.NotNil(t, logFile)
	defer logFile.Close()

	output := log.Writer()
	assert.NotEqual(t, os.Stdout, output)
	assert.NotEqual(t, os.Stderr, output)
}
