package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_FullFile(t *testing.T) {
	path := writeFile(t, DefaultFileName, `
driver: odbc
database: "*LOCAL"
username: qsecofr
password: secret
ipc: /tmp/xmlsp
ctl: "*sbmjob"
xslib: XMLSERVICE
verbose: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "odbc", cfg.Driver)
	assert.Equal(t, "*LOCAL", cfg.Database)
	assert.Equal(t, "qsecofr", cfg.Username)
	assert.Equal(t, "secret", cfg.Password)
	assert.Equal(t, "/tmp/xmlsp", cfg.IPC)
	assert.Equal(t, "*sbmjob", cfg.CTL)
	assert.Equal(t, "XMLSERVICE", cfg.XSLib)
	assert.True(t, cfg.Verbose)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeFile(t, DefaultFileName, "driver: [unterminated")

	_, err := Load(path)

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrConfigNotFound)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, &FileConfig{}, cfg)
}

func TestInvocation_Defaults(t *testing.T) {
	inv := (&FileConfig{}).Invocation()

	assert.Equal(t, "*LOCAL", inv.Database)
	assert.Equal(t, "*NA", inv.IPC)
	assert.Equal(t, "*here", inv.CTL)
	assert.Equal(t, "QXMLSERV", inv.XSLib)
	assert.False(t, inv.Verbose)
	assert.Nil(t, inv.ExistingConnection)
}

func TestDriverName_Default(t *testing.T) {
	assert.Equal(t, "odbc", (&FileConfig{}).DriverName())
	assert.Equal(t, "oracle", (&FileConfig{Driver: "oracle"}).DriverName())
}

func TestApplyEnv_OverridesFileValues(t *testing.T) {
	t.Setenv(EnvDriver, "pgx")
	t.Setenv(EnvDatabase, "postgres://localhost/xml")
	t.Setenv(EnvUsername, "envuser")
	t.Setenv(EnvPassword, "envpass")
	t.Setenv(EnvXSLib, "ENVLIB")

	cfg := &FileConfig{Driver: "odbc", Database: "*LOCAL", Username: "fileuser", XSLib: "QXMLSERV"}
	cfg.ApplyEnv()

	assert.Equal(t, "pgx", cfg.Driver)
	assert.Equal(t, "postgres://localhost/xml", cfg.Database)
	assert.Equal(t, "envuser", cfg.Username)
	assert.Equal(t, "envpass", cfg.Password)
	assert.Equal(t, "ENVLIB", cfg.XSLib)
}

func TestApplyEnv_EmptyVariablesIgnored(t *testing.T) {
	t.Setenv(EnvUsername, "")

	cfg := &FileConfig{Username: "fileuser"}
	cfg.ApplyEnv()

	assert.Equal(t, "fileuser", cfg.Username)
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv(EnvPassword, "")
	require.NoError(t, os.Unsetenv(EnvPassword))
	path := writeFile(t, DefaultEnvFile, "# credentials\nXMLSP_PASSWORD=\"from-dotenv\"\n")

	require.NoError(t, LoadEnvFile(path))

	assert.Equal(t, "from-dotenv", os.Getenv(EnvPassword))
}

func TestLoadEnvFile_DoesNotOverrideEnvironment(t *testing.T) {
	t.Setenv(EnvUsername, "already-set")
	path := writeFile(t, DefaultEnvFile, "XMLSP_USERNAME=from-dotenv\n")

	require.NoError(t, LoadEnvFile(path))

	assert.Equal(t, "already-set", os.Getenv(EnvUsername))
}

func TestLoadEnvFile_MissingIsIgnored(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), ".env")))
	assert.NoError(t, LoadEnvFile(""))
}
