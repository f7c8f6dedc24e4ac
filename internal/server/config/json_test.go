package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJson_OverridesFromFile(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"endpoint_addr_grpc": ":7005",
		"database_dsn": "postgres://json/db",
		"secret_key": "json-secret",
		"token_ttl": "45m",
		"bcrypt_cost": 11
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	os.Args = []string{"cmd", "-c", path}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, c.EndpointAddrGRPC, ":7005")
	assert.Equal(t, c.DatabaseDSN, "postgres://json/db")
	assert.Equal(t, c.SecretKey, "json-secret")
	assert.Equal(t, c.TokenTTL, 45*time.Minute)
	assert.Equal(t, c.BcryptCost, 11)
}

func TestParseJson_NoFlagIsNoop(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}

	var c Config
	c.LoadDefaults()
	parseJson(&c)

	assert.Equal(t, c.EndpointAddrGRPC, ":50051")
	assert.Equal(t, c.TokenTTL, 2*time.Hour)
}

func TestParseJson_BadFilePanics(t *testing.T) {
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", filepath.Join(t.TempDir(), "missing.json")}

	var c Config
	c.LoadDefaults()
	assert.Panics(t, func() { parseJson(&c) })
}
