package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateCommand(t *testing.T) {
	good := writeFile(t, "camera.json", `{"distance": 10, "perspective": false, "target": [0, 0, 0]}`)
	out, err := execute(t, "validate", "camera", good)
	require.NoError(t, err)
	assert.Contains(t, out, "valid camera")

	bad := writeFile(t, "point.yaml", "x: 1\n")
	_, err = execute(t, "validate", "point", bad)
	assert.ErrorContains(t, err, "y: is required")

	_, err = execute(t, "validate", "mesh", bad)
	assert.ErrorContains(t, err, "unknown document kind")
}

func TestCrosshairCommand(t *testing.T) {
	cfg := writeFile(t, "panel.yaml", `
cameraState:
  distance: 100
  perspective: false
showCrosshair: true
`)
	out, err := execute(t, "crosshair", "-o", "json", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, `"z": 1000`)
	assert.Contains(t, out, `"z": 1001`)
}

func TestReplayCommand(t *testing.T) {
	script := writeFile(t, "script.yaml", `
steps:
  - key: c
`)
	out, err := execute(t, "replay", script)
	require.NoError(t, err)
	assert.Contains(t, out, "drawing: camera")
}
