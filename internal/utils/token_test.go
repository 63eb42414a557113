package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateToken_Unique(t *testing.T) {
	a, b := GenerateToken(), GenerateToken()

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
}

func TestReadTokenFile_TrimsLineEndings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte(" tok en \r\n\n"), 0o600))

	token, err := ReadTokenFile(path)

	require.NoError(t, err)
	assert.Equal(t, " tok en ", token)
}

func TestReadTokenFile_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, os.WriteFile(path, []byte("\n"), 0o600))

	_, err := ReadTokenFile(path)

	require.ErrorIs(t, err, ErrEmptyToken)
}

func TestReadTokenFile_Missing(t *testing.T) {
	_, err := ReadTokenFile(filepath.Join(t.TempDir(), "token"))

	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestProvisionToken_Configured(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf-keeper", "token")

	token, err := ProvisionToken("secret", path)

	require.NoError(t, err)
	assert.Equal(t, "secret", token)
	stored, err := ReadTokenFile(path)
	require.NoError(t, err)
	assert.Equal(t, "secret", stored)
}

func TestProvisionToken_ReusesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token")
	require.NoError(t, WriteTokenFile(path, "existing"))

	token, err := ProvisionToken("", path)

	require.NoError(t, err)
	assert.Equal(t, "existing", token)
}

func TestProvisionToken_Generates(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "conf-keeper")
	path := filepath.Join(dir, "token")

	token, err := ProvisionToken("", path)

	require.NoError(t, err)
	assert.NotEmpty(t, token)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dirInfo, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	again, err := ProvisionToken("", path)
	require.NoError(t, err)
	assert.Equal(t, token, again)
}

func TestProvisionToken_NoSource(t *testing.T) {
	_, err := ProvisionToken("", "")
	require.Error(t, err)
}
