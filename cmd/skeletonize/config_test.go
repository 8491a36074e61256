package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeFile(t, "cfg.yaml", `
threshold: 90
invert: true
bands: 6
padding: 20
timeout: 1m30s
lang: de
`)
	fc, err := loadConfig(path)
	require.NoError(t, err)

	require.NotNil(t, fc.Threshold)
	assert.EqualValues(t, 90, *fc.Threshold)
	require.NotNil(t, fc.Invert)
	assert.True(t, *fc.Invert)
	assert.Equal(t, 6, *fc.Bands)
	assert.Equal(t, 20, *fc.Padding)
	assert.Equal(t, 90*time.Second, *fc.Timeout)
	assert.Equal(t, "de", *fc.Lang)
	assert.Nil(t, fc.Workers)
	assert.Nil(t, fc.Scale)
}

func TestLoadConfig_Empty(t *testing.T) {
	fc, err := loadConfig(writeFile(t, "empty.yaml", ""))
	require.NoError(t, err)
	assert.Equal(t, fileConfig{}, *fc)
}

func TestLoadConfig_Errors(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	_, err = loadConfig(writeFile(t, "bad.yaml", "bands: [1, 2\n"))
	assert.ErrorContains(t, err, "parse config")

	_, err = loadConfig(writeFile(t, "unknown.yaml", "bandz: 4\n"))
	assert.ErrorContains(t, err, "parse config")
}

func TestParseFlags_ConfigAndOverride(t *testing.T) {
	path := writeFile(t, "cfg.yaml", "bands: 6\npadding: 20\ninvert: true\n")

	var stderr bytes.Buffer
	cfg, err := parseFlags([]string{"-input", "x.png", "-config", path, "-bands", "3"}, &stderr)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.bands, "explicit flag must win over the file")
	assert.Equal(t, 20, cfg.padding)
	assert.True(t, cfg.invert)
	assert.EqualValues(t, 128, cfg.threshold, "unset keys keep flag defaults")
}

func TestParseFlags_ConfigValidated(t *testing.T) {
	path := writeFile(t, "cfg.yaml", "scale: 0\n")

	var stderr bytes.Buffer
	_, err := parseFlags([]string{"-input", "x.png", "-config", path}, &stderr)
	assert.ErrorIs(t, err, ErrInvalidScale)
}

func TestRun_WritesPoints(t *testing.T) {
	in := writePNG(t, strokeImage())
	dir := t.TempDir()
	points := filepath.Join(dir, "points.yaml")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"-input", in,
		"-output", filepath.Join(dir, "out.png"),
		"-points", points,
		"-invert",
	}, &stdout, &stderr)
	require.NoError(t, err)

	data, err := os.ReadFile(points)
	require.NoError(t, err)

	var report pointsReport
	require.NoError(t, yaml.Unmarshal(data, &report))
	assert.Equal(t, in, report.Source)
	assert.Equal(t, 21, report.Rows)
	assert.Equal(t, 21, report.Cols)
	assert.Equal(t, 1, report.Components)
	assert.NotEmpty(t, report.Endpoints)
}
