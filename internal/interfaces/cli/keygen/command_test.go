package keygen

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warden-inc/warden/internal/infrastructure/auth"
)

func TestWriteKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "key.pem")
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	require.NoError(t, writeKey(cmd, path, 2048, false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	key, err := auth.LoadRSAPrivateKey(path)
	require.NoError(t, err)
	assert.Equal(t, 2048, key.N.BitLen())

	assert.Error(t, writeKey(cmd, path, 2048, false), "existing file is kept without --force")
	assert.NoError(t, writeKey(cmd, path, 2048, true))
}

func TestWriteKey_Stdout(t *testing.T) {
	var out bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	require.NoError(t, writeKey(cmd, "-", 2048, false))
	_, err := auth.LoadRSAPrivateKey(out.String())
	assert.NoError(t, err)
}

func TestWriteKey_RejectsSmallKeys(t *testing.T) {
	cmd := &cobra.Command{}
	assert.Error(t, writeKey(cmd, filepath.Join(t.TempDir(), "key.pem"), 1024, false))
}
