package runtimelog

import (
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_WritesToStateDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cleanup := Configure("cloudguard-test")
	log.Printf("section resolved")
	cleanup()

	path := filepath.Join(home, ".local", "state", "cloudguard", "cloudguard-test.log")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "section resolved"))
}

func TestPath(t *testing.T) {
	t.Setenv("HOME", "/home/forecaster")

	got, err := Path("cloudguard")
	require.NoError(t, err)
	assert.Equal(t, "/home/forecaster/.local/state/cloudguard/cloudguard.log", got)
}
