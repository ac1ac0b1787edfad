package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	conf, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig, conf)
}

func TestLoad_YAMLOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_addr: \":9090\"\ndata_dir: /srv/data\n"), 0644))

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", conf.HTTPAddr)
	assert.Equal(t, "/srv/data", conf.DataDir)
	assert.Equal(t, DefaultConfig.KafkaHost, conf.KafkaHost)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_addr: \":9090\"\n"), 0644))
	t.Setenv("AIQUERY_HTTP_ADDR", ":7070")

	conf, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", conf.HTTPAddr)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	conf, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig, conf)
}

func TestLoad_BadYAMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("http_addr: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
