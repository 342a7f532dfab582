package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.Interval())
	assert.Equal(t, "https://api.atmos.ag/stats/api/overall-stats", cfg.Endpoints.AtmosStats)
	assert.Equal(t, DefaultTokenAddress, cfg.TokenAddress)
}

func TestLoad_Files(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		content  string
		interval time.Duration
		addr     string
	}{
		{
			name:     "json",
			file:     "config.json",
			content:  `{"refresh_interval": "10s", "server": {"listen_addr": ":9090"}}`,
			interval: 10 * time.Second,
			addr:     ":9090",
		},
		{
			name:     "yaml",
			file:     "config.yaml",
			content:  "refresh_interval: 1m\nserver:\n  listen_addr: 127.0.0.1:7070\n",
			interval: time.Minute,
			addr:     "127.0.0.1:7070",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.interval, cfg.Interval())
			assert.Equal(t, tt.addr, cfg.Server.ListenAddr)
			// unspecified fields keep their defaults
			assert.Equal(t, Default().Endpoints, cfg.Endpoints)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("COSMO_LISTEN_ADDR", ":6060")
	t.Setenv("COSMO_LOG_FILE", "")
	t.Setenv("COSMO_REFRESH_INTERVAL", "5s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":6060", cfg.Server.ListenAddr)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, 5*time.Second, cfg.Interval())
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.json", "{not json"))
	assert.Error(t, err)
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "zero interval", mutate: func(c *Config) { c.RefreshInterval = "0s" }, wantErr: true},
		{name: "garbage interval", mutate: func(c *Config) { c.RefreshInterval = "soon" }, wantErr: true},
		{name: "relative endpoint", mutate: func(c *Config) { c.Endpoints.TokenList = "/tokenlist" }, wantErr: true},
		{name: "ftp endpoint", mutate: func(c *Config) { c.Endpoints.AtmosStats = "ftp://api.atmos.ag/stats" }, wantErr: true},
		{name: "empty listen addr", mutate: func(c *Config) { c.Server.ListenAddr = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
