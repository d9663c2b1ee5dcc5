package main

import (
	"os"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestLoggerSetup(t *testing.T) {
	defer func() {
		log.SetOutput(os.Stderr)
		log.SetLevel(log.InfoLevel)
		log.SetFormatter(&log.TextFormatter{})
	}()

	out, err := Logger{Level: "debug"}.Setup()
	require.NoError(t, err)
	assert.Equal(t, os.Stdout, out)
	assert.Equal(t, log.DebugLevel, log.GetLevel())

	file := filepath.Join(t.TempDir(), "scoring.log")
	out, err = Logger{File: file, Level: "warn", JSON: true}.Setup()
	require.NoError(t, err)
	require.IsType(t, &lumberjack.Logger{}, out)
	defer out.(*lumberjack.Logger).Close()
	assert.Equal(t, log.WarnLevel, log.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)

	log.Warn("written")
	b, err := os.ReadFile(file)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"msg":"written"`)

	_, err = Logger{Level: "loud"}.Setup()
	assert.Error(t, err)
}
