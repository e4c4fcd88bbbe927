package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
account:
  id: "107423"
  passphrase: secret
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "107423", cfg.Account.ID)
	assert.Equal(t, "https://api-parcel.bpost.be/services/shm", cfg.API.URL)
	assert.Equal(t, 30*time.Second, cfg.API.Timeout)
	assert.Equal(t, "http://pudo.bpost.be/Locator", cfg.Locator.URL)
}

func TestLoadExpandsEnvironment(t *testing.T) {
	t.Setenv("BPOST_PASSPHRASE", "from-env")
	path := writeConfig(t, `
account:
  id: "107423"
  passphrase: ${BPOST_PASSPHRASE}
api:
  timeout: 5s
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Account.Passphrase)
	assert.Equal(t, 5*time.Second, cfg.API.Timeout)
}

func TestLoadRejectsMissingCredentials(t *testing.T) {
	path := writeConfig(t, `
account:
  id: "107423"
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "account.passphrase is required")
}
