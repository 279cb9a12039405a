package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedAdminCmd(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "vms.sqlite")

	args := []string{
		"--db", dbPath,
		"--username", "admin",
		"--email", "admin@example.org",
		"--password", "changeme123",
	}

	cmd := newSeedAdminCmd()
	cmd.SetArgs(args)
	var out bytes.Buffer
	cmd.SetOut(&out)

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `created admin "admin"`)

	// Running the same seed again conflicts on the username.
	cmd = newSeedAdminCmd()
	cmd.SetArgs(args)
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
}

func TestSeedAdminCmd_MissingFlags(t *testing.T) {
	cmd := newSeedAdminCmd()
	cmd.SetArgs([]string{"--db", filepath.Join(t.TempDir(), "vms.sqlite")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}
