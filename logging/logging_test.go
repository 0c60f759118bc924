package logging

import (
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewLogger_FileLevel(t *testing.T) {
	cfg := GenerateTestConfig(t)
	cfg.FileLevel = logrus.InfoLevel
	cfg.DisableConsole = true
	SetDefaultConfig(cfg)

	logger := NewLogger()
	logger.Debugf("debug line")
	logger.Infof("info line")

	data, err := os.ReadFile(filepath.Join(cfg.FileDir, defaultFileName))
	require.Nil(t, err)

	content := string(data)
	assert.True(t, strings.Contains(content, "info line"))
	assert.False(t, strings.Contains(content, "debug line"))
}

func TestMaxLevel(t *testing.T) {
	cfg := &Config{
		FileLevel:    logrus.DebugLevel,
		ConsoleLevel: logrus.WarnLevel,
	}
	assert.Equal(t, logrus.WarnLevel, maxLevel(cfg))

	cfg.FileDir = "logs"
	assert.Equal(t, logrus.DebugLevel, maxLevel(cfg))

	cfg.DisableConsole = true
	cfg.FileDir = ""
	assert.Equal(t, logrus.PanicLevel, maxLevel(cfg))
}

func TestDefault_Shared(t *testing.T) {
	SetDefaultConfig(GenerateTestConfig(t))
	assert.Same(t, Default(), Default())
}
