package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_MissingVersion(t *testing.T) {
	clearEnvVars(t)

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION is not set")
}

func TestValidateEnv_VersionMismatch(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvEnvSchemaVersion, "0.9")

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENV_SCHEMA_VERSION mismatch")
	assert.Contains(t, err.Error(), "expected 1.0, got 0.9")
}

func TestValidateEnv_MissingRequired(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvEnvSchemaVersion, ExpectedEnvSchemaVersion)

	err := ValidateEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing required environment variables")
	assert.Contains(t, err.Error(), EnvAdminAPIKey)
}

func TestValidateEnv_AllSet(t *testing.T) {
	clearEnvVars(t)
	t.Setenv(EnvEnvSchemaVersion, ExpectedEnvSchemaVersion)
	t.Setenv(EnvAdminAPIKey, "secret")

	assert.NoError(t, ValidateEnv())
}

func TestValidateEnvWithWarnings(t *testing.T) {
	t.Run("insecure defaults and unreadable catalog", func(t *testing.T) {
		clearEnvVars(t)
		t.Setenv(EnvEnvSchemaVersion, ExpectedEnvSchemaVersion)
		t.Setenv(EnvAdminAPIKey, ExampleAdminAPIKey)
		t.Setenv(EnvItemsPath, filepath.Join(t.TempDir(), "missing.json"))

		warnings, err := ValidateEnvWithWarnings()
		require.NoError(t, err, "Should not error even with warnings")
		require.Len(t, warnings, 2)
		assert.Contains(t, warnings[0], EnvAdminAPIKey)
		assert.Contains(t, warnings[1], EnvItemsPath)
	})

	t.Run("critical failure", func(t *testing.T) {
		clearEnvVars(t)

		warnings, err := ValidateEnvWithWarnings()
		assert.Error(t, err)
		assert.Nil(t, warnings)
	})
}
