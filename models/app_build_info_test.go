package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_EmptyValuesAreNotAvailable(t *testing.T) {
	info := NewAppBuildInfo("", " ", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}

func TestAppBuildInfo_ZeroValue(t *testing.T) {
	var info AppBuildInfo

	assert.Equal(t, "N/A", info.BuildVersion())
}

func TestAppBuildInfo_Print(t *testing.T) {
	var buf bytes.Buffer
	NewAppBuildInfo("1.0.0", "2026-10-01", "abc123").Print(&buf)

	assert.Equal(t, "Build version: 1.0.0\nBuild date: 2026-10-01\nBuild commit: abc123\n", buf.String())
}
